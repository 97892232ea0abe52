package lock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betenlace/errors"
)

var day = time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

func TestKey(t *testing.T) {
	assert.Equal(t, "ingest:lock:3:2024-03-15", Key(3, day))
}

func TestLocalLocker_SerializesSameKey(t *testing.T) {
	locker := NewLocalLocker()

	release, err := locker.Acquire(context.Background(), 1, day)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = locker.Acquire(ctx, 1, day)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeLockTimeout))

	release()
	release()

	release2, err := locker.Acquire(context.Background(), 1, day)
	require.NoError(t, err)
	release2()
}

func TestLocalLocker_DifferentKeysIndependent(t *testing.T) {
	locker := NewLocalLocker()

	r1, err := locker.Acquire(context.Background(), 1, day)
	require.NoError(t, err)
	defer r1()

	r2, err := locker.Acquire(context.Background(), 2, day)
	require.NoError(t, err)
	defer r2()

	r3, err := locker.Acquire(context.Background(), 1, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	defer r3()
}
