package repository

import (
	"context"
	"errors"

	"users-api/internal/domain/entity"
)

// ErrDuplicateEmail is returned by adapters when the store's unique
// constraint on email rejects a write. It is the safety net for the window
// between a use case's existence check and the write itself.
var ErrDuplicateEmail = errors.New("email already taken")

// UpdateUserData carries the partial fields of an update. Nil means
// "leave unchanged".
type UpdateUserData struct {
	Name  *string
	Email *string
}

// UserRepository is the persistence port the use cases depend on.
// Lookups return (nil, nil) when no record matches; absence is not an error.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, id string, data UpdateUserData) (*entity.User, error)
	Delete(ctx context.Context, id string) error
}
