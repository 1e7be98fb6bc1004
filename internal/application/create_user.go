package application

import (
	"context"
	"errors"

	"users-api/internal/apperr"
	"users-api/internal/domain/entity"
	"users-api/internal/domain/repository"
	"users-api/pkg/timefmt"
)

// CreateUser persists a new user, enforcing email uniqueness.
type CreateUser struct {
	repo repository.UserRepository
	fmtr *timefmt.Formatter
}

func NewCreateUser(repo repository.UserRepository, fmtr *timefmt.Formatter) *CreateUser {
	return &CreateUser{repo: repo, fmtr: fmtr}
}

// Execute checks that no live record already holds the normalized email and
// persists a fresh entity. The store's unique constraint backs the check:
// a concurrent insert that slips past it still comes back as Conflict.
func (uc *CreateUser) Execute(ctx context.Context, in CreateUserInput) (*UserResponse, error) {
	existing, err := uc.repo.FindByEmail(ctx, entity.NormalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("Email already exists")
	}

	user := entity.New(in.Name, in.Email)
	saved, err := uc.repo.Create(ctx, user)
	if errors.Is(err, repository.ErrDuplicateEmail) {
		return nil, apperr.Conflict("Email already exists")
	}
	if err != nil {
		return nil, err
	}
	return toResponse(saved, uc.fmtr), nil
}
