package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/shift-scheduler/internal/domain/shift"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

type ShiftGormRepository struct {
	db *gorm.DB
}

func NewShiftGormRepository(db *gorm.DB) *ShiftGormRepository {
	return &ShiftGormRepository{db: db}
}

// --------------------------------------------------
// Queries
// --------------------------------------------------

func (r *ShiftGormRepository) ListShifts(ctx context.Context) ([]models.Shift, error) {
	var shifts []models.Shift
	if err := r.db.WithContext(ctx).
		Order("shift_date ASC, id ASC").
		Find(&shifts).Error; err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	return shifts, nil
}

func (r *ShiftGormRepository) GetShift(ctx context.Context, id uint) (*models.Shift, error) {
	var s models.Shift
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get shift %d: %w", id, err)
	}
	return &s, nil
}

func (r *ShiftGormRepository) ListShiftsByUser(ctx context.Context, userID uint) ([]models.Shift, error) {
	shifts := []models.Shift{}
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("shift_date ASC, id ASC").
		Find(&shifts).Error; err != nil {
		return nil, fmt.Errorf("list shifts for user %d: %w", userID, err)
	}
	return shifts, nil
}

func (r *ShiftGormRepository) FindShiftByNameAndDate(
	ctx context.Context,
	name string,
	date time.Time,
) (*models.Shift, error) {

	var s models.Shift
	err := r.db.WithContext(ctx).
		Where("name = ? AND shift_date = ?", name, date).
		Take(&s).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find shift by name and date: %w", err)
	}
	return &s, nil
}

// --------------------------------------------------
// Create / delete
// --------------------------------------------------

func (r *ShiftGormRepository) CreateShift(ctx context.Context, s *models.Shift) error {
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(s).Error

	if isUniqueViolation(err) {
		return domain.ErrDuplicate(s.Name, s.ShiftDate)
	}
	if err != nil {
		return fmt.Errorf("create shift: %w", err)
	}
	return nil
}

func (r *ShiftGormRepository) DeleteShift(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Shift{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete shift %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Conditional state changes
// --------------------------------------------------

func (r *ShiftGormRepository) MarkCheckedIn(
	ctx context.Context,
	id uint,
	userID uint,
	at time.Time,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Shift{}).
		Where("id = ? AND user_id = ? AND checkin IS NULL AND completed = ?", id, userID, false).
		Updates(map[string]any{"checkin": at})

	if res.Error != nil {
		return false, fmt.Errorf("check in shift %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *ShiftGormRepository) MarkCompleted(
	ctx context.Context,
	id uint,
	userID uint,
	at time.Time,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Shift{}).
		Where("id = ? AND user_id = ? AND checkin IS NOT NULL AND completed = ?", id, userID, false).
		Updates(map[string]any{"checkout": at, "completed": true})

	if res.Error != nil {
		return false, fmt.Errorf("check out shift %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *ShiftGormRepository) ForceComplete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Shift{}).
		Where("id = ?", id).
		Updates(map[string]any{"completed": true})

	if res.Error != nil {
		return false, fmt.Errorf("complete shift %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Compile-time check
var _ domain.Repository = (*ShiftGormRepository)(nil)
