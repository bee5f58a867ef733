package shift

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/shift-scheduler/internal/domain/shift"
	"github.com/BruksfildServices01/shift-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

type CheckOut struct {
	repo  domain.Repository
	audit Auditor
	now   func() time.Time
}

func NewCheckOut(
	repo domain.Repository,
	audit Auditor,
	now func() time.Time,
) *CheckOut {
	return &CheckOut{
		repo:  repo,
		audit: audit,
		now:   now,
	}
}

// Execute completes the shift when at least eight hours have passed since
// check-in. A rejected attempt writes nothing: no provisional checkout is stored.
func (uc *CheckOut) Execute(
	ctx context.Context,
	shiftID uint,
	actor user.Actor,
) (*models.Shift, error) {

	if shiftID == 0 {
		return nil, domain.ErrShiftIDEmpty
	}

	s, err := uc.repo.GetShift(ctx, shiftID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	if err := domain.CheckOut(s, actor.ID, now); err != nil {
		return nil, err
	}

	changed, err := uc.repo.MarkCompleted(ctx, s.ID, actor.ID, now)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, domain.ErrAlreadyCheckedOut
	}

	uc.audit.Dispatch(shiftEvent("shift_checked_out", actor.ID, s.ID, map[string]any{
		"worked_minutes": int(now.Sub(*s.Checkin) / time.Minute),
	}))

	return s, nil
}
