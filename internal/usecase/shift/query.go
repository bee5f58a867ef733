package shift

import (
	"context"

	domain "github.com/BruksfildServices01/shift-scheduler/internal/domain/shift"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

type ListShifts struct {
	repo domain.Repository
}

func NewListShifts(repo domain.Repository) *ListShifts {
	return &ListShifts{repo: repo}
}

func (uc *ListShifts) Execute(ctx context.Context) ([]models.Shift, error) {
	return uc.repo.ListShifts(ctx)
}

type GetShift struct {
	repo domain.Repository
}

func NewGetShift(repo domain.Repository) *GetShift {
	return &GetShift{repo: repo}
}

func (uc *GetShift) Execute(ctx context.Context, shiftID uint) (*models.Shift, error) {
	if shiftID == 0 {
		return nil, domain.ErrShiftIDEmpty
	}
	return uc.repo.GetShift(ctx, shiftID)
}

// ListShiftsByUser is a plain filter: an unknown user yields an empty list.
type ListShiftsByUser struct {
	repo domain.Repository
}

func NewListShiftsByUser(repo domain.Repository) *ListShiftsByUser {
	return &ListShiftsByUser{repo: repo}
}

func (uc *ListShiftsByUser) Execute(ctx context.Context, userID uint) ([]models.Shift, error) {
	if userID == 0 {
		return nil, domain.ErrUserIDEmpty
	}

	shifts, err := uc.repo.ListShiftsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if shifts == nil {
		shifts = []models.Shift{}
	}
	return shifts, nil
}
