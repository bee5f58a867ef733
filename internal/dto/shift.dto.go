package dto

import (
	"time"

	"github.com/BruksfildServices01/shift-scheduler/internal/models"
	"github.com/BruksfildServices01/shift-scheduler/internal/timezone"
)

type ShiftDTO struct {
	ID        uint             `json:"id"`
	Name      string           `json:"name"`
	ShiftDate string           `json:"shiftDate"`
	ShiftTime models.ShiftTime `json:"shiftTime"`
	UserID    uint             `json:"userId"`
	Checkin   *time.Time       `json:"checkin"`
	Checkout  *time.Time       `json:"checkout"`
	Completed bool             `json:"completed"`
}

func FromShift(s *models.Shift) ShiftDTO {
	return ShiftDTO{
		ID:        s.ID,
		Name:      s.Name,
		ShiftDate: timezone.FormatDate(s.ShiftDate),
		ShiftTime: s.ShiftTime,
		UserID:    s.UserID,
		Checkin:   s.Checkin,
		Checkout:  s.Checkout,
		Completed: s.Completed,
	}
}

func FromShifts(shifts []models.Shift) []ShiftDTO {
	out := make([]ShiftDTO, 0, len(shifts))
	for i := range shifts {
		out = append(out, FromShift(&shifts[i]))
	}
	return out
}

type UserDTO struct {
	ID       uint        `json:"id"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	IsActive bool        `json:"isActive"`
	Role     models.Role `json:"role"`
}

func FromUser(u *models.User) UserDTO {
	return UserDTO{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		IsActive: u.IsActive,
		Role:     u.Role,
	}
}

func FromUsers(users []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for i := range users {
		out = append(out, FromUser(&users[i]))
	}
	return out
}
