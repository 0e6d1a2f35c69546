package preference_test

import (
	"context"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alquimiadental/site/core/preference"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := preference.NewMemory("")
	v, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, s.Save(ctx, "en"))
	v, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "en", v)

	require.NoError(t, s.Save(ctx, "es"))
	v, _ = s.Load(ctx)
	assert.Equal(t, "es", v)
}

func TestNewRedisRequiresClientID(t *testing.T) {
	t.Parallel()

	_, err := preference.NewRedis(goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1"}), "")
	assert.ErrorIs(t, err, preference.ErrClientIDRequired)
}

func TestRedisKey(t *testing.T) {
	t.Parallel()

	client := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()

	s, err := preference.NewRedis(client, "device-1")
	require.NoError(t, err)
	assert.Equal(t, "site:device-1:preferredLang", s.Key())

	s, err = preference.NewRedis(client, "device-1", preference.WithPrefix("alquimia"))
	require.NoError(t, err)
	assert.Equal(t, "alquimia:device-1:preferredLang", s.Key())
}

func TestRedisLoadError(t *testing.T) {
	t.Parallel()

	client := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer client.Close()

	s, err := preference.NewRedis(client, "device-1")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err = s.Load(ctx)
	assert.Error(t, err)
}

func TestRedisRoundTrip(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	opts, err := goredis.ParseURL(url)
	require.NoError(t, err)
	client := goredis.NewClient(opts)
	defer client.Close()

	ctx := context.Background()
	s, err := preference.NewRedis(client, "test-"+t.Name(), preference.WithTTL(time.Minute))
	require.NoError(t, err)
	defer client.Del(ctx, s.Key())

	v, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, s.Save(ctx, "en"))
	v, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "en", v)
}
