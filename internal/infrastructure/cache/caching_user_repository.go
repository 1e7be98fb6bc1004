// Package cache decorates the user repository with Redis read caching.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"users-api/internal/domain/entity"
	"users-api/internal/domain/repository"
)

// CachingUserRepository wraps a UserRepository and serves FindByID and
// FindAll from Redis when possible. FindByEmail always goes to the store:
// the uniqueness checks in the use cases must not read stale data.
// Every write invalidates the affected entries. All cache operations are
// best effort; a missing or failing Redis degrades to pass-through.
type CachingUserRepository struct {
	inner     repository.UserRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingUserRepository decorates inner with Redis caching.
// A zero ttl defaults to 1 minute; an empty namespace defaults to "users".
func NewCachingUserRepository(rdb *redis.Client, ttl time.Duration, inner repository.UserRepository, namespace string) *CachingUserRepository {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if namespace == "" {
		namespace = "users"
	}
	return &CachingUserRepository{inner: inner, rdb: rdb, ttl: ttl, namespace: namespace}
}

func (c *CachingUserRepository) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	saved, err := c.inner.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, c.listKey())
	return saved, nil
}

func (c *CachingUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.idKey(id)
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var u entity.User
		if err := json.Unmarshal(b, &u); err == nil {
			return &u, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	u, err := c.inner.FindByID(ctx, id)
	if err != nil || u == nil {
		return u, err
	}

	if b, err := json.Marshal(u); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return u, nil
}

func (c *CachingUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return c.inner.FindByEmail(ctx, email)
}

func (c *CachingUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	if c.rdb == nil {
		return c.inner.FindAll(ctx)
	}

	key := c.listKey()
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var users []*entity.User
		if err := json.Unmarshal(b, &users); err == nil {
			return users, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	users, err := c.inner.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(users); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return users, nil
}

func (c *CachingUserRepository) Update(ctx context.Context, id string, data repository.UpdateUserData) (*entity.User, error) {
	updated, err := c.inner.Update(ctx, id, data)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, c.idKey(id), c.listKey())
	return updated, nil
}

func (c *CachingUserRepository) Delete(ctx context.Context, id string) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, c.idKey(id), c.listKey())
	return nil
}

func (c *CachingUserRepository) idKey(id string) string {
	return c.namespace + ":id:" + id
}

func (c *CachingUserRepository) listKey() string {
	return c.namespace + ":all"
}

func (c *CachingUserRepository) invalidate(ctx context.Context, keys ...string) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, keys...).Err()
}

var _ repository.UserRepository = (*CachingUserRepository)(nil)
