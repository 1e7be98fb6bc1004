package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"users-api/internal/apperr"
	"users-api/internal/domain/entity"
)

func TestGetUserByID(t *testing.T) {
	t.Parallel()

	t.Run("maps the found user to a DTO", func(t *testing.T) {
		t.Parallel()

		user := storedUser()
		repo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id string) (*entity.User, error) {
				assert.Equal(t, user.ID, id)
				return user, nil
			},
		}

		uc := NewGetUserByID(repo, testFormatter(t))
		res, err := uc.Execute(context.Background(), user.ID)
		require.NoError(t, err)

		assert.Equal(t, user.ID, res.ID)
		assert.Equal(t, user.Name, res.Name)
		assert.Equal(t, user.Email, res.Email)
		assert.Equal(t, "2024-01-15T09:30:00.000-03:00", res.CreatedAt)
	})

	t.Run("not found when absent", func(t *testing.T) {
		t.Parallel()

		uc := NewGetUserByID(&mockUserRepository{}, testFormatter(t))
		_, err := uc.Execute(context.Background(), "missing-id")

		ae, ok := apperr.As(err)
		require.True(t, ok)
		assert.Equal(t, apperr.KindNotFound, ae.Kind)
		assert.Equal(t, "User not found", ae.Message)
	})

	t.Run("infrastructure errors propagate unmodified", func(t *testing.T) {
		t.Parallel()

		storeErr := errors.New("connection refused")
		repo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id string) (*entity.User, error) {
				return nil, storeErr
			},
		}

		uc := NewGetUserByID(repo, testFormatter(t))
		_, err := uc.Execute(context.Background(), "any")
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestListUsers(t *testing.T) {
	t.Parallel()

	t.Run("maps every user", func(t *testing.T) {
		t.Parallel()

		createdAt := time.Date(2024, 1, 15, 12, 30, 0, 0, time.UTC)
		repo := &mockUserRepository{
			FindAllFunc: func(ctx context.Context) ([]*entity.User, error) {
				return []*entity.User{
					{ID: "id-1", Name: "John Doe", Email: "john@x.com", CreatedAt: createdAt},
					{ID: "id-2", Name: "Jane Doe", Email: "jane@x.com", CreatedAt: createdAt},
				}, nil
			},
		}

		uc := NewListUsers(repo, testFormatter(t))
		res, err := uc.Execute(context.Background())
		require.NoError(t, err)

		require.Len(t, res, 2)
		assert.Equal(t, "id-1", res[0].ID)
		assert.Equal(t, "id-2", res[1].ID)
		assert.Equal(t, "2024-01-15T09:30:00.000-03:00", res[0].CreatedAt)
	})

	t.Run("empty store yields an empty list", func(t *testing.T) {
		t.Parallel()

		uc := NewListUsers(&mockUserRepository{}, testFormatter(t))
		res, err := uc.Execute(context.Background())
		require.NoError(t, err)

		assert.NotNil(t, res)
		assert.Empty(t, res)
	})
}

func TestDeleteUserByID(t *testing.T) {
	t.Parallel()

	t.Run("deletes an existing user", func(t *testing.T) {
		t.Parallel()

		user := storedUser()
		var deletedID string
		repo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id string) (*entity.User, error) {
				return user, nil
			},
			DeleteFunc: func(ctx context.Context, id string) error {
				deletedID = id
				return nil
			},
		}

		uc := NewDeleteUserByID(repo)
		err := uc.Execute(context.Background(), user.ID)
		require.NoError(t, err)

		assert.Equal(t, user.ID, deletedID)
	})

	t.Run("not found is stable across repeated deletes", func(t *testing.T) {
		t.Parallel()

		deleteCalls := 0
		repo := &mockUserRepository{
			DeleteFunc: func(ctx context.Context, id string) error {
				deleteCalls++
				return nil
			},
		}

		uc := NewDeleteUserByID(repo)
		for i := 0; i < 2; i++ {
			err := uc.Execute(context.Background(), "missing-id")
			ae, ok := apperr.As(err)
			require.True(t, ok)
			assert.Equal(t, apperr.KindNotFound, ae.Kind)
		}
		assert.Zero(t, deleteCalls, "absent ids must never reach the repository delete")
	})

	t.Run("delete errors propagate", func(t *testing.T) {
		t.Parallel()

		storeErr := errors.New("connection refused")
		repo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id string) (*entity.User, error) {
				return storedUser(), nil
			},
			DeleteFunc: func(ctx context.Context, id string) error {
				return storeErr
			},
		}

		uc := NewDeleteUserByID(repo)
		assert.ErrorIs(t, uc.Execute(context.Background(), "any"), storeErr)
	})
}
