package fmstorage

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/pathutils"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/mwf"
	"github.com/sgostarter/libexercises/activity"
)

const activitiesFile = "activities.json"

// NewFMStorage keeps the activity log in memory and mirrors every change to
// root/activities.json.
func NewFMStorage(root string, storage stg.FileStorage, logger l.Wrapper) activity.Storage {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "fmActivityStorage"))

	if storage == nil {
		if err := pathutils.MustDirExists(root); err != nil {
			logger.WithFields(l.ErrorField(err), l.StringField("root", root)).Error("create data root failed")
		}

		storage = rawfs.NewFSStorage("")
	}

	return &fmStorageImpl{
		logger: logger,
		d: mwf.NewMemWithFile[map[uint64]activity.Activity, mwf.Serial, mwf.Lock](
			make(map[uint64]activity.Activity), &mwf.JSONSerial{}, &sync.RWMutex{},
			filepath.Join(root, activitiesFile), storage),
	}
}

type fmStorageImpl struct {
	logger l.Wrapper
	d      *mwf.MemWithFile[map[uint64]activity.Activity, mwf.Serial, mwf.Lock]
}

func (impl *fmStorageImpl) Add(_ context.Context, activities ...activity.Activity) (ids []uint64, err error) {
	err = impl.d.Change(func(oldM map[uint64]activity.Activity) (newM map[uint64]activity.Activity, err error) {
		newM = oldM
		if newM == nil {
			newM = make(map[uint64]activity.Activity)
		}

		err = activity.CheckIDs(activities, func(id uint64) bool {
			_, ok := newM[id]

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

			newM[a.ID] = a
			ids = append(ids, a.ID)
		}

		return
	})
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err)).Error("add activities failed")
	}

	return
}

func (impl *fmStorageImpl) Get(_ context.Context, id uint64) (a activity.Activity, err error) {
	impl.d.Read(func(m map[uint64]activity.Activity) {
		var ok bool

		a, ok = m[id]
		if !ok {
			err = commerr.ErrNotFound
		}
	})

	return
}

func (impl *fmStorageImpl) All(_ context.Context) (f activity.Frame, err error) {
	impl.d.Read(func(m map[uint64]activity.Activity) {
		f = make(activity.Frame, 0, len(m))

		for _, a := range m {
			f = append(f, a)
		}
	})

	return activity.SortFrame(f), nil
}

func (impl *fmStorageImpl) Remove(_ context.Context, id uint64) error {
	return impl.d.Change(func(oldM map[uint64]activity.Activity) (newM map[uint64]activity.Activity, err error) {
		newM = oldM

		if _, ok := newM[id]; !ok {
			err = commerr.ErrNotFound

			return
		}

		delete(newM, id)

		return
	})
}
