package shift

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/shift-scheduler/internal/domain/shift"
	"github.com/BruksfildServices01/shift-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

type CheckIn struct {
	repo  domain.Repository
	audit Auditor
	now   func() time.Time
}

// NewCheckIn takes the clock that decides "today"; it must return times in
// the configured shift timezone.
func NewCheckIn(
	repo domain.Repository,
	audit Auditor,
	now func() time.Time,
) *CheckIn {
	return &CheckIn{
		repo:  repo,
		audit: audit,
		now:   now,
	}
}

func (uc *CheckIn) Execute(
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
	if err := domain.CheckIn(s, actor.ID, now); err != nil {
		return nil, err
	}

	changed, err := uc.repo.MarkCheckedIn(ctx, s.ID, actor.ID, now)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, domain.ErrAlreadyCheckedIn
	}

	uc.audit.Dispatch(shiftEvent("shift_checked_in", actor.ID, s.ID, nil))

	return s, nil
}
