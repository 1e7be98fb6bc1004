package application

import (
	"context"

	"users-api/internal/apperr"
	"users-api/internal/domain/repository"
	"users-api/pkg/timefmt"
)

// GetUserByID looks a user up by primary key.
type GetUserByID struct {
	repo repository.UserRepository
	fmtr *timefmt.Formatter
}

func NewGetUserByID(repo repository.UserRepository, fmtr *timefmt.Formatter) *GetUserByID {
	return &GetUserByID{repo: repo, fmtr: fmtr}
}

func (uc *GetUserByID) Execute(ctx context.Context, id string) (*UserResponse, error) {
	user, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}
	return toResponse(user, uc.fmtr), nil
}
