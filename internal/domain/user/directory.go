package user

import (
	"context"

	"github.com/BruksfildServices01/shift-scheduler/internal/httperr"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

var (
	ErrNotFound = httperr.ErrNotFound("user_not_found", "This user does not exist")

	ErrIDEmpty          = httperr.ErrValidation("user_id_empty", "userId is empty")
	ErrNameEmpty        = httperr.ErrValidation("name_empty", "name is empty")
	ErrCannotDeleteSelf = httperr.ErrInvalidState("cannot_delete_self", "You cannot delete your own account")
)

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID   uint
	Role models.Role
}

func (a Actor) HasRole(roles ...models.Role) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}

// Directory resolves users. FindByID and FindByEmail return ErrNotFound when
// no user matches.
type Directory interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
}

// Changes holds the profile fields an administrator may edit. Nil fields are
// left untouched.
type Changes struct {
	Name     *string
	Role     *models.Role
	IsActive *bool
}

func (c Changes) Empty() bool {
	return c.Name == nil && c.Role == nil && c.IsActive == nil
}

// Store is the full user repository. Update and Delete return ErrNotFound
// when no user matches.
type Store interface {
	Directory

	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id uint, changes Changes) (*models.User, error)

	// Delete removes the user together with the shifts assigned to them.
	Delete(ctx context.Context, id uint) error
}
