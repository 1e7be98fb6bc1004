package application

import (
	"context"

	"users-api/internal/apperr"
	"users-api/internal/domain/repository"
)

// DeleteUserByID removes a user. It fetches before deleting so an absent id
// yields a precise NotFound instead of a silent no-op.
type DeleteUserByID struct {
	repo repository.UserRepository
}

func NewDeleteUserByID(repo repository.UserRepository) *DeleteUserByID {
	return &DeleteUserByID{repo: repo}
}

func (uc *DeleteUserByID) Execute(ctx context.Context, id string) error {
	user, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.NotFound("User not found")
	}
	return uc.repo.Delete(ctx, id)
}
