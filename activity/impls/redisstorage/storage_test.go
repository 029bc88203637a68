// nolint
package redisstorage

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libexercises/activity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRedis(t *testing.T) *redis.Client {
	dsn := os.Getenv("REDIS_URL")
	if dsn == "" {
		dsn = "redis://:@127.0.0.1:6379" // redis://<user>:<password>@<host>:<port>/<db_number>
	}

	opts, err := redis.ParseURL(dsn)
	require.Nil(t, err)

	cli := redis.NewClient(opts)

	ctx, cf := context.WithTimeout(context.Background(), 3*time.Second)
	defer cf()

	if err = cli.Ping(ctx).Err(); err != nil {
		_ = cli.Close()

		t.Skipf("redis not available: %v", err)
	}

	t.Cleanup(func() {
		_ = cli.Close()
	})

	return cli
}

func TestRedisStorage(t *testing.T) {
	cli := initRedis(t)
	ctx := context.Background()

	cli.Del(ctx, "ut:activities")

	stg := NewRedisStorage("ut", cli, nil)

	at := time.Date(2021, 3, 1, 8, 0, 0, 0, time.UTC)

	ids, err := stg.Add(ctx,
		activity.Activity{Type: "Ride", StartDateLocal: at.Add(time.Hour), ElapsedTime: time.Hour},
		activity.Activity{ID: 3, Type: "Run", StartDateLocal: at, Distance: 5})
	require.Nil(t, err)
	require.Len(t, ids, 2)
	assert.EqualValues(t, 3, ids[1])

	_, err = stg.Add(ctx, activity.Activity{Type: "Walk"}, activity.Activity{ID: 3})
	assert.True(t, errors.Is(err, commerr.ErrAlreadyExists))

	f, err := stg.All(ctx)
	require.Nil(t, err)
	require.Len(t, f, 2)
	assert.EqualValues(t, 3, f[0].ID)
	assert.Equal(t, "Ride", f[1].Type)

	a, err := stg.Get(ctx, 3)
	require.Nil(t, err)
	assert.EqualValues(t, 5, a.Distance)

	err = stg.Remove(ctx, 3)
	assert.Nil(t, err)

	_, err = stg.Get(ctx, 3)
	assert.True(t, errors.Is(err, commerr.ErrNotFound))

	err = stg.Remove(ctx, 3)
	assert.True(t, errors.Is(err, commerr.ErrNotFound))

	cli.Del(ctx, "ut:activities")
}

func TestRedisStorageRepeatedIDInBatch(t *testing.T) {
	cli := initRedis(t)
	ctx := context.Background()

	cli.Del(ctx, "ut-dup:activities")
	defer cli.Del(ctx, "ut-dup:activities")

	stg := NewRedisStorage("ut-dup", cli, nil)

	ids, err := stg.Add(ctx, activity.Activity{ID: 7, Type: "Ride"}, activity.Activity{ID: 7, Type: "Run"})
	assert.True(t, errors.Is(err, commerr.ErrAlreadyExists))
	assert.Nil(t, ids)

	f, err := stg.All(ctx)
	require.Nil(t, err)
	assert.Empty(t, f)

	n, err := addActivitiesScript.Run(ctx, cli, []string{"ut-dup:activities"}, "8", "{}", "8", "{}").Int()
	require.Nil(t, err)
	assert.EqualValues(t, 0, n)

	exists, err := cli.Exists(ctx, "ut-dup:activities").Result()
	require.Nil(t, err)
	assert.EqualValues(t, 0, exists)
}
