package models

import (
	"fmt"
	"strings"
	"time"
)

// ShiftTime is the day-part a shift belongs to.
type ShiftTime string

const (
	ShiftTimeMorning   ShiftTime = "MORNING"
	ShiftTimeAfternoon ShiftTime = "AFTERNOON"
	ShiftTimeNight     ShiftTime = "NIGHT"
)

func (t ShiftTime) Valid() bool {
	switch t {
	case ShiftTimeMorning, ShiftTimeAfternoon, ShiftTimeNight:
		return true
	}
	return false
}

func ParseShiftTime(s string) (ShiftTime, error) {
	t := ShiftTime(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown shift time %q", s)
	}
	return t, nil
}

type Shift struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string    `gorm:"size:100;not null;uniqueIndex:idx_shift_name_date" json:"name"`
	ShiftDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_shift_name_date" json:"shiftDate"`
	ShiftTime ShiftTime `gorm:"size:20;not null" json:"shiftTime"`

	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Checkin   *time.Time `json:"checkin"`
	Checkout  *time.Time `json:"checkout"`
	Completed bool       `gorm:"not null;default:false" json:"completed"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
