package shift

import (
	"time"

	"github.com/BruksfildServices01/shift-scheduler/internal/httperr"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
	"github.com/BruksfildServices01/shift-scheduler/internal/timezone"
)

// ===============================
// Shift State
// ===============================

type State string

const (
	StateUnstarted State = "unstarted"
	StateCheckedIn State = "checked_in"
	StateCompleted State = "completed"
)

// MinimumWorkDuration is how long a worker must stay checked in for a
// check-out to complete the shift.
const MinimumWorkDuration = 8 * time.Hour

// StateOf derives the lifecycle state from the stored fields. A shift
// force-completed by an administrator is Completed even without timestamps.
func StateOf(s *models.Shift) State {
	switch {
	case s.Completed:
		return StateCompleted
	case s.Checkin != nil:
		return StateCheckedIn
	default:
		return StateUnstarted
	}
}

// ===============================
// Errors
// ===============================

var (
	ErrShiftIDEmpty = httperr.ErrValidation("shift_id_empty", "shiftId is empty")
	ErrUserIDEmpty  = httperr.ErrValidation("user_id_empty", "userId is empty")

	ErrNotFound = httperr.ErrNotFound("shift_not_found", "This shift does not exist")

	ErrNotOwner = httperr.ErrForbidden("not_shift_owner", "This shift does not belong to you")

	ErrNotShiftDay        = httperr.ErrInvalidState("not_shift_day", "You can only check in on the day of your shift")
	ErrAlreadyCheckedIn   = httperr.ErrInvalidState("already_checked_in", "This shift has already been checked in")
	ErrAlreadyCheckedOut  = httperr.ErrInvalidState("already_checked_out", "This shift has already been checked out")
	ErrNotCheckedIn       = httperr.ErrInvalidState("not_checked_in", "You must check in before you can check out")
	ErrInsufficientLength = httperr.ErrInvalidState("insufficient_duration", "You must work at least 8 hours to complete a shift")
)

// ===============================
// Validations
// ===============================

// CanCheckIn runs the check-in guards in order: ownership, shift day, state.
// now must already be in the configured shift timezone.
func CanCheckIn(s *models.Shift, actorID uint, now time.Time) error {
	if s.UserID != actorID {
		return ErrNotOwner
	}

	if !timezone.SameDay(s.ShiftDate, now) {
		return ErrNotShiftDay
	}

	if StateOf(s) != StateUnstarted {
		return ErrAlreadyCheckedIn
	}

	return nil
}

// CanCheckOut runs the check-out guards in order: ownership, completion,
// check-in present, minimum duration.
func CanCheckOut(s *models.Shift, actorID uint, now time.Time) error {
	if s.UserID != actorID {
		return ErrNotOwner
	}

	if s.Completed {
		return ErrAlreadyCheckedOut
	}

	if s.Checkin == nil {
		return ErrNotCheckedIn
	}

	if Worked(s, now) < MinimumWorkDuration {
		return ErrInsufficientLength
	}

	return nil
}

// Worked is the time elapsed since check-in, zero before check-in.
func Worked(s *models.Shift, now time.Time) time.Duration {
	if s.Checkin == nil {
		return 0
	}
	return now.Sub(*s.Checkin)
}
