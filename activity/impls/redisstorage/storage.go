package redisstorage

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/go-redis/redis/v8"
	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libexercises/activity"
)

// NewRedisStorage keeps the activity log in one redis hash: id -> json activity.
func NewRedisStorage(preKey string, redisCli *redis.Client, logger l.Wrapper) activity.Storage {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "redisActivityStorage"))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	return &redisStorageImpl{
		logger:   logger,
		preKey:   preKey,
		redisCli: redisCli,
	}
}

type redisStorageImpl struct {
	logger   l.Wrapper
	preKey   string
	redisCli *redis.Client
}

func (impl *redisStorageImpl) activitiesKey() string {
	if impl.preKey == "" {
		return "activities"
	}

	return impl.preKey + ":activities"
}

func (impl *redisStorageImpl) Add(ctx context.Context, activities ...activity.Activity) (ids []uint64, err error) {
	if len(activities) == 0 {
		return
	}

	if err = activity.CheckIDs(activities, nil); err != nil {
		return nil, err
	}

	ids = make([]uint64, 0, len(activities))
	args := make([]interface{}, 0, len(activities)*2)

	for _, a := range activities {
		if a.ID == 0 {
			a.ID = snowflake.ID()
		}

		var d []byte

		d, err = json.Marshal(a)
		if err != nil {
			return nil, err
		}

		ids = append(ids, a.ID)
		args = append(args, strconv.FormatUint(a.ID, 10), string(d))
	}

	added, err := addActivitiesScript.Run(ctx, impl.redisCli, []string{impl.activitiesKey()}, args...).Int()
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err)).Error("add activities failed")

		return nil, err
	}

	if added == 0 {
		return nil, commerr.ErrAlreadyExists
	}

	return
}

func (impl *redisStorageImpl) Get(ctx context.Context, id uint64) (a activity.Activity, err error) {
	d, err := impl.redisCli.HGet(ctx, impl.activitiesKey(), strconv.FormatUint(id, 10)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = commerr.ErrNotFound
		}

		return
	}

	err = json.Unmarshal(d, &a)

	return
}

func (impl *redisStorageImpl) All(ctx context.Context) (activity.Frame, error) {
	m, err := impl.redisCli.HGetAll(ctx, impl.activitiesKey()).Result()
	if err != nil {
		return nil, err
	}

	f := make(activity.Frame, 0, len(m))

	for id, d := range m {
		var a activity.Activity

		if err = json.Unmarshal([]byte(d), &a); err != nil {
			impl.logger.WithFields(l.ErrorField(err), l.StringField("id", id)).Error("bad activity data")

			return nil, err
		}

		f = append(f, a)
	}

	return activity.SortFrame(f), nil
}

func (impl *redisStorageImpl) Remove(ctx context.Context, id uint64) error {
	n, err := impl.redisCli.HDel(ctx, impl.activitiesKey(), strconv.FormatUint(id, 10)).Result()
	if err != nil {
		return err
	}

	if n == 0 {
		return commerr.ErrNotFound
	}

	return nil
}
