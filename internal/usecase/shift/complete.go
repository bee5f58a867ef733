package shift

import (
	"context"

	domain "github.com/BruksfildServices01/shift-scheduler/internal/domain/shift"
	"github.com/BruksfildServices01/shift-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

// CompleteShift is the administrative override. It does not check ownership
// or duration; callers gate it by role.
type CompleteShift struct {
	repo  domain.Repository
	audit Auditor
}

func NewCompleteShift(
	repo domain.Repository,
	audit Auditor,
) *CompleteShift {
	return &CompleteShift{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CompleteShift) Execute(
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

	changed, err := uc.repo.ForceComplete(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, domain.ErrNotFound
	}

	domain.ForceComplete(s)

	uc.audit.Dispatch(shiftEvent("shift_force_completed", actor.ID, s.ID, nil))

	return s, nil
}
