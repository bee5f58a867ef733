package user

import (
	"context"

	domain "github.com/BruksfildServices01/shift-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

type DeleteUser struct {
	store domain.Store
	audit Auditor
}

func NewDeleteUser(
	store domain.Store,
	audit Auditor,
) *DeleteUser {
	return &DeleteUser{
		store: store,
		audit: audit,
	}
}

// Execute returns the user as it was before deletion. The user's shifts go
// with it.
func (uc *DeleteUser) Execute(
	ctx context.Context,
	userID uint,
	actor domain.Actor,
) (*models.User, error) {

	if userID == 0 {
		return nil, domain.ErrIDEmpty
	}
	if userID == actor.ID {
		return nil, domain.ErrCannotDeleteSelf
	}

	u, err := uc.store.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := uc.store.Delete(ctx, u.ID); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(userEvent("user_deleted", actor.ID, u.ID, map[string]any{
		"email": u.Email,
	}))

	return u, nil
}
