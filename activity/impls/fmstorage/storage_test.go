package fmstorage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libexercises/activity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFMStorage(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	at := time.Date(2021, 3, 1, 8, 0, 0, 0, time.UTC)

	stg := NewFMStorage(root, nil, nil)

	ids, err := stg.Add(ctx,
		activity.Activity{Type: "Ride", StartDateLocal: at.Add(time.Hour), ElapsedTime: time.Hour, Distance: 20},
		activity.Activity{ID: 9, Type: "Run", StartDateLocal: at, ElapsedTime: time.Hour / 2, Distance: 5})
	require.Nil(t, err)
	require.Len(t, ids, 2)

	_, err = stg.Add(ctx, activity.Activity{ID: 9})
	assert.True(t, errors.Is(err, commerr.ErrAlreadyExists))

	reopened := NewFMStorage(root, nil, nil)

	f, err := reopened.All(ctx)
	require.Nil(t, err)
	require.Len(t, f, 2)
	assert.EqualValues(t, 9, f[0].ID)
	assert.Equal(t, "Ride", f[1].Type)
	assert.True(t, f[1].StartDateLocal.Equal(at.Add(time.Hour)))
	assert.Equal(t, time.Hour, f[1].ElapsedTime)

	err = reopened.Remove(ctx, 9)
	require.Nil(t, err)

	_, err = reopened.Get(ctx, 9)
	assert.True(t, errors.Is(err, commerr.ErrNotFound))

	a, err := reopened.Get(ctx, ids[0])
	require.Nil(t, err)
	assert.EqualValues(t, 20, a.Distance)

	err = reopened.Remove(ctx, 9)
	assert.True(t, errors.Is(err, commerr.ErrNotFound))
}

func TestFMStorageRepeatedIDInBatch(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	at := time.Date(2021, 3, 1, 8, 0, 0, 0, time.UTC)

	stg := NewFMStorage(root, nil, nil)

	ids, err := stg.Add(ctx,
		activity.Activity{ID: 7, Type: "Ride", StartDateLocal: at},
		activity.Activity{ID: 7, Type: "Run", StartDateLocal: at.Add(time.Hour)})
	assert.True(t, errors.Is(err, commerr.ErrAlreadyExists))
	assert.Nil(t, ids)

	f, err := NewFMStorage(root, nil, nil).All(ctx)
	require.Nil(t, err)
	assert.Empty(t, f)
}

func TestFMStorageRootNotCreatable(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.Nil(t, os.WriteFile(blocker, []byte("x"), 0600))

	stg := NewFMStorage(filepath.Join(blocker, "data"), nil, nil)

	_, err := stg.Add(context.Background(), activity.Activity{ID: 1, Type: "Ride", ElapsedTime: time.Hour})
	assert.NotNil(t, err)
}
