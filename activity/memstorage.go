package activity

import (
	"context"
	"sync"

	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/commerr"
)

func NewMemStorage() Storage {
	return &memStorageImpl{
		activities: make(map[uint64]Activity),
	}
}

type memStorageImpl struct {
	lock       sync.RWMutex
	activities map[uint64]Activity
}

func (impl *memStorageImpl) Add(_ context.Context, activities ...Activity) (ids []uint64, err error) {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	err = CheckIDs(activities, func(id uint64) bool {
		_, ok := impl.activities[id]

		return ok
	})
	if err != nil {
		return
	}

	ids = make([]uint64, 0, len(activities))

	for _, a := range activities {
		if a.ID == 0 {
			a.ID = snowflake.ID()
		}

		impl.activities[a.ID] = a
		ids = append(ids, a.ID)
	}

	return
}

func (impl *memStorageImpl) Get(_ context.Context, id uint64) (a Activity, err error) {
	impl.lock.RLock()
	defer impl.lock.RUnlock()

	a, ok := impl.activities[id]
	if !ok {
		err = commerr.ErrNotFound
	}

	return
}

func (impl *memStorageImpl) All(_ context.Context) (Frame, error) {
	impl.lock.RLock()
	defer impl.lock.RUnlock()

	f := make(Frame, 0, len(impl.activities))
	for _, a := range impl.activities {
		f = append(f, a)
	}

	return SortFrame(f), nil
}

func (impl *memStorageImpl) Remove(_ context.Context, id uint64) error {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	if _, ok := impl.activities[id]; !ok {
		return commerr.ErrNotFound
	}

	delete(impl.activities, id)

	return nil
}
