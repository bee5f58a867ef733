package shift

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/shift-scheduler/internal/domain/shift"
	"github.com/BruksfildServices01/shift-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateShiftInput struct {
	Name      string
	ShiftDate time.Time
	ShiftTime models.ShiftTime
	UserID    uint

	// ActorID is recorded in the audit trail only.
	ActorID uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateShift struct {
	repo  domain.Repository
	users user.Directory
	audit Auditor
}

func NewCreateShift(
	repo domain.Repository,
	users user.Directory,
	audit Auditor,
) *CreateShift {
	return &CreateShift{
		repo:  repo,
		users: users,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateShift) Execute(
	ctx context.Context,
	in CreateShiftInput,
) (*models.Shift, error) {

	s, err := domain.New(in.Name, in.ShiftDate, in.ShiftTime, in.UserID)
	if err != nil {
		return nil, err
	}

	// The duplicate rule is keyed on (name, date) only; the assignee is ignored.
	existing, err := uc.repo.FindShiftByNameAndDate(ctx, s.Name, s.ShiftDate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate(s.Name, s.ShiftDate)
	}

	if _, err := uc.users.FindByID(ctx, s.UserID); err != nil {
		return nil, err
	}

	// A concurrent create can still win the race; the unique index turns
	// that into the same conflict error.
	if err := uc.repo.CreateShift(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(shiftEvent("shift_created", in.ActorID, s.ID, map[string]any{
		"user_id":    s.UserID,
		"shift_date": s.ShiftDate.Format("2006-01-02"),
		"shift_time": s.ShiftTime,
	}))

	return s, nil
}
