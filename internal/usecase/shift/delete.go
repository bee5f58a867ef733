package shift

import (
	"context"

	domain "github.com/BruksfildServices01/shift-scheduler/internal/domain/shift"
	"github.com/BruksfildServices01/shift-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

type DeleteShift struct {
	repo  domain.Repository
	audit Auditor
}

func NewDeleteShift(
	repo domain.Repository,
	audit Auditor,
) *DeleteShift {
	return &DeleteShift{
		repo:  repo,
		audit: audit,
	}
}

// Execute returns the shift as it was before deletion.
func (uc *DeleteShift) Execute(
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

	if err := uc.repo.DeleteShift(ctx, s.ID); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(shiftEvent("shift_deleted", actor.ID, s.ID, map[string]any{
		"name":       s.Name,
		"shift_date": s.ShiftDate.Format("2006-01-02"),
	}))

	return s, nil
}
