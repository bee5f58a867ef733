package user

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/shift-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/shift-scheduler/internal/httperr"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

type UpdateUser struct {
	store domain.Store
	audit Auditor
}

func NewUpdateUser(
	store domain.Store,
	audit Auditor,
) *UpdateUser {
	return &UpdateUser{
		store: store,
		audit: audit,
	}
}

func (uc *UpdateUser) Execute(
	ctx context.Context,
	userID uint,
	changes domain.Changes,
	actor domain.Actor,
) (*models.User, error) {

	if userID == 0 {
		return nil, domain.ErrIDEmpty
	}

	if changes.Name != nil {
		name := strings.TrimSpace(*changes.Name)
		if name == "" {
			return nil, domain.ErrNameEmpty
		}
		changes.Name = &name
	}

	if changes.Role != nil && !changes.Role.Valid() {
		return nil, httperr.ErrValidation("invalid_role", "role must be one of WORKER, MANAGER, ADMIN")
	}

	u, err := uc.store.Update(ctx, userID, changes)
	if err != nil {
		return nil, err
	}

	meta := map[string]any{}
	if changes.Name != nil {
		meta["name"] = u.Name
	}
	if changes.Role != nil {
		meta["role"] = u.Role
	}
	if changes.IsActive != nil {
		meta["is_active"] = u.IsActive
	}
	uc.audit.Dispatch(userEvent("user_updated", actor.ID, u.ID, meta))

	return u, nil
}
