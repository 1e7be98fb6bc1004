package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"users-api/internal/domain/entity"
	"users-api/internal/domain/repository"
)

// Postgres unique_violation
const uniqueViolationCode = "23505"

// UserRepository is the pgx adapter for the user repository port.
// The users table lives in its own schema (app.users, see db/migrations).
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO app.users (id, name, email, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, created_at
	`, u.ID, u.Name, u.Email, u.CreatedAt)

	saved, err := scanUser(row)
	if err != nil {
		return nil, translateUnique(err)
	}
	return saved, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, email, created_at
		FROM app.users
		WHERE id = $1
	`, id)

	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return u, err
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, email, created_at
		FROM app.users
		WHERE email = $1
	`, email)

	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return u, err
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, email, created_at
		FROM app.users
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*entity.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) Update(ctx context.Context, id string, data repository.UpdateUserData) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE app.users
		SET name = COALESCE($2, name), email = COALESCE($3, email)
		WHERE id = $1
		RETURNING id, name, email, created_at
	`, id, data.Name, data.Email)

	u, err := scanUser(row)
	if err != nil {
		return nil, translateUnique(err)
	}
	return u, nil
}

// Delete is idempotent: removing an absent id is not an error.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM app.users WHERE id = $1`, id)
	return err
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt); err != nil {
		return nil, err
	}
	return u, nil
}

// translateUnique maps the store's unique-constraint violation onto the
// port's sentinel so use cases can turn concurrent duplicates into Conflict.
func translateUnique(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return repository.ErrDuplicateEmail
	}
	return err
}

var _ repository.UserRepository = (*UserRepository)(nil)
