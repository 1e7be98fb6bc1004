package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolConfigPingTimeout(t *testing.T) {
	t.Parallel()

	assert.Equal(t, defaultPingTimeout, PoolConfig{}.pingTimeout())
	assert.Equal(t, defaultPingTimeout, PoolConfig{PingTimeout: -time.Second}.pingTimeout())
	assert.Equal(t, 2*time.Second, PoolConfig{PingTimeout: 2 * time.Second}.pingTimeout())
}

func TestNewPoolRejectsInvalidDSN(t *testing.T) {
	t.Parallel()

	pool, err := NewPool(context.Background(), PoolConfig{DSN: "://not-a-dsn"})
	require.Error(t, err)
	assert.Nil(t, pool)
}
