package shift

import (
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/shift-scheduler/internal/httperr"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// New builds an unstarted shift. date is normalized to midnight UTC.
func New(name string, date time.Time, shiftTime models.ShiftTime, userID uint) (*models.Shift, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, httperr.ErrValidation("name_empty", "name is empty")
	}
	if date.IsZero() {
		return nil, httperr.ErrValidation("shift_date_empty", "shiftDate is empty")
	}
	if !shiftTime.Valid() {
		return nil, httperr.ErrValidation("invalid_shift_time", "shiftTime must be one of MORNING, AFTERNOON, NIGHT")
	}
	if userID == 0 {
		return nil, ErrUserIDEmpty
	}

	return &models.Shift{
		Name:      name,
		ShiftDate: DateOnly(date),
		ShiftTime: shiftTime,
		UserID:    userID,
	}, nil
}

func CheckIn(s *models.Shift, actorID uint, now time.Time) error {
	if err := CanCheckIn(s, actorID, now); err != nil {
		return err
	}

	s.Checkin = &now
	return nil
}

func CheckOut(s *models.Shift, actorID uint, now time.Time) error {
	if err := CanCheckOut(s, actorID, now); err != nil {
		return err
	}

	s.Checkout = &now
	s.Completed = true
	return nil
}

// ForceComplete is the administrative override; it ignores duration.
func ForceComplete(s *models.Shift) {
	s.Completed = true
}

// DateOnly drops the clock and zone, keeping the calendar date as written.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ErrDuplicate reports an existing shift with the same name on the same day.
func ErrDuplicate(name string, date time.Time) error {
	return httperr.ErrConflict(
		"shift_already_exists",
		fmt.Sprintf("This shift %q already exists on %s", name, HumanDate(date)),
	)
}

// HumanDate formats a date as "January 2nd 2006".
func HumanDate(t time.Time) string {
	return fmt.Sprintf("%s %d%s %d", t.Month(), t.Day(), ordinalSuffix(t.Day()), t.Year())
}

func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}
