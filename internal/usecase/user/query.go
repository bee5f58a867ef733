package user

import (
	"context"

	domain "github.com/BruksfildServices01/shift-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

type ListUsers struct {
	store domain.Store
}

func NewListUsers(store domain.Store) *ListUsers {
	return &ListUsers{store: store}
}

func (uc *ListUsers) Execute(ctx context.Context) ([]models.User, error) {
	users, err := uc.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

type GetUser struct {
	store domain.Store
}

func NewGetUser(store domain.Store) *GetUser {
	return &GetUser{store: store}
}

func (uc *GetUser) Execute(ctx context.Context, userID uint) (*models.User, error) {
	if userID == 0 {
		return nil, domain.ErrIDEmpty
	}
	return uc.store.FindByID(ctx, userID)
}
