package application

import (
	"context"

	"users-api/internal/domain/repository"
	"users-api/pkg/timefmt"
)

// ListUsers returns every user in the repository's stable order.
type ListUsers struct {
	repo repository.UserRepository
	fmtr *timefmt.Formatter
}

func NewListUsers(repo repository.UserRepository, fmtr *timefmt.Formatter) *ListUsers {
	return &ListUsers{repo: repo, fmtr: fmtr}
}

func (uc *ListUsers) Execute(ctx context.Context) ([]*UserResponse, error) {
	users, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toResponseList(users, uc.fmtr), nil
}
