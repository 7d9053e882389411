package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis implements the three commands the token store issues.
// Any other command panics through the nil embedded interface.
type fakeRedis struct {
	redis.Cmdable

	values map[string]string
	err    error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.values[key] = value.(string)
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.values[k]; ok {
			delete(f.values, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisTokenStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	s := NewRedisTokenStore(client, "qodefly_token")

	_, ok, err := s.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Save(ctx, "tok1"))
	assert.Equal(t, "tok1", client.values["qodefly_token"])

	token, ok, err := s.Load(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok1", token)

	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))

	_, ok, err = s.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisTokenStore_Errors(t *testing.T) {
	ctx := context.Background()
	connErr := errors.New("connection refused")
	s := NewRedisTokenStore(&fakeRedis{values: map[string]string{}, err: connErr}, "k")

	_, _, err := s.Load(ctx)
	assert.ErrorIs(t, err, connErr)
	assert.ErrorIs(t, s.Save(ctx, "tok"), connErr)
	assert.ErrorIs(t, s.Clear(ctx), connErr)
}
