package shift

import (
	"context"
	"time"

	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

type Repository interface {
	// -------- Queries --------
	ListShifts(ctx context.Context) ([]models.Shift, error)

	// GetShift returns ErrNotFound when no row matches.
	GetShift(ctx context.Context, id uint) (*models.Shift, error)

	ListShiftsByUser(ctx context.Context, userID uint) ([]models.Shift, error)

	// FindShiftByNameAndDate returns nil, nil when no row matches.
	FindShiftByNameAndDate(
		ctx context.Context,
		name string,
		date time.Time,
	) (*models.Shift, error)

	// -------- Create / delete --------

	// CreateShift returns ErrDuplicate when (name, shift_date) is taken.
	CreateShift(ctx context.Context, s *models.Shift) error

	DeleteShift(ctx context.Context, id uint) error

	// -------- Conditional state changes --------
	// Each reports whether a row was changed. false means the guard in the
	// WHERE clause no longer held when the write ran.

	// MarkCheckedIn sets checkin where checkin IS NULL AND completed = false.
	MarkCheckedIn(
		ctx context.Context,
		id uint,
		userID uint,
		at time.Time,
	) (bool, error)

	// MarkCompleted sets checkout and completed where completed = false
	// AND checkin IS NOT NULL.
	MarkCompleted(
		ctx context.Context,
		id uint,
		userID uint,
		at time.Time,
	) (bool, error)

	// ForceComplete sets completed = true regardless of timestamps.
	ForceComplete(ctx context.Context, id uint) (bool, error)
}
