package application

import (
	"context"

	"users-api/internal/domain/entity"
	"users-api/internal/domain/repository"
)

// mockUserRepository implements repository.UserRepository with overridable
// function fields. Unset lookups behave as "absent"; unset writes succeed.
type mockUserRepository struct {
	CreateFunc      func(ctx context.Context, u *entity.User) (*entity.User, error)
	FindByIDFunc    func(ctx context.Context, id string) (*entity.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	FindAllFunc     func(ctx context.Context) ([]*entity.User, error)
	UpdateFunc      func(ctx context.Context, id string, data repository.UpdateUserData) (*entity.User, error)
	DeleteFunc      func(ctx context.Context, id string) error
}

func (m *mockUserRepository) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return u, nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, id string, data repository.UpdateUserData) (*entity.User, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, data)
	}
	return nil, nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
