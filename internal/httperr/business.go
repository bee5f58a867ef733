package httperr

import "errors"

type Kind int

const (
	KindValidation Kind = iota + 1
	KindConflict
	KindNotFound
	KindForbidden
	KindInvalidState
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindInvalidState:
		return "invalid_state"
	case KindUnauthorized:
		return "unauthorized"
	}
	return "unknown"
}

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func ErrBusiness(kind Kind, code, message string) error {
	return BusinessError{Kind: kind, Code: code, Message: message}
}

func ErrValidation(code, message string) error {
	return ErrBusiness(KindValidation, code, message)
}

func ErrConflict(code, message string) error {
	return ErrBusiness(KindConflict, code, message)
}

func ErrNotFound(code, message string) error {
	return ErrBusiness(KindNotFound, code, message)
}

func ErrForbidden(code, message string) error {
	return ErrBusiness(KindForbidden, code, message)
}

func ErrInvalidState(code, message string) error {
	return ErrBusiness(KindInvalidState, code, message)
}

func ErrUnauthorized(code, message string) error {
	return ErrBusiness(KindUnauthorized, code, message)
}

// KindOf returns 0 for errors that are not business errors.
func KindOf(err error) Kind {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return 0
}
