package application

import (
	"context"
	"errors"

	"users-api/internal/apperr"
	"users-api/internal/domain/repository"
	"users-api/pkg/timefmt"
)

// UpdateUser applies a partial update, re-checking email uniqueness when the
// email actually changes.
type UpdateUser struct {
	repo repository.UserRepository
	fmtr *timefmt.Formatter
}

func NewUpdateUser(repo repository.UserRepository, fmtr *timefmt.Formatter) *UpdateUser {
	return &UpdateUser{repo: repo, fmtr: fmtr}
}

func (uc *UpdateUser) Execute(ctx context.Context, id string, in UpdateUserInput) (*UserResponse, error) {
	user, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}

	// Setting the email to its current value is always allowed.
	if in.Email != nil && *in.Email != user.Email {
		existing, err := uc.repo.FindByEmail(ctx, *in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperr.Conflict("Email already exists")
		}
	}

	updated, err := uc.repo.Update(ctx, id, repository.UpdateUserData{Name: in.Name, Email: in.Email})
	if errors.Is(err, repository.ErrDuplicateEmail) {
		return nil, apperr.Conflict("Email already exists")
	}
	if err != nil {
		return nil, err
	}
	return toResponse(updated, uc.fmtr), nil
}
