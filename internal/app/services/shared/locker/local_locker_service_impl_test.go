package locker

import (
	"context"
	"errors"
	"patient-service/internal/pkg/exceptions"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLockService_TryLockAndUnlock(t *testing.T) {
	ctx := context.Background()
	lockerService := NewLocalLockService()

	acquired, lockValue, err := lockerService.TryLock(ctx, "patients:document", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)
	assert.NotEmpty(t, lockValue)

	acquired, _, err = lockerService.TryLock(ctx, "patients:document", time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired, "second TryLock should not acquire a held lock")

	err = lockerService.Unlock(ctx, "patients:document", "someone-else")
	assert.True(t, errors.Is(err, exceptions.ErrInternal))

	require.NoError(t, lockerService.Unlock(ctx, "patients:document", lockValue))

	acquired, _, err = lockerService.TryLock(ctx, "patients:document", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired, "lock should be free after Unlock")
}

func TestLocalLockService_Expiration(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	lockerService := &localLockService{
		held:  make(map[string]heldLock),
		clock: func() time.Time { return now },
	}

	acquired, _, err := lockerService.TryLock(ctx, "k", time.Second)
	require.NoError(t, err)
	require.True(t, acquired)

	now = now.Add(2 * time.Second)

	acquired, _, err = lockerService.TryLock(ctx, "k", time.Second)
	require.NoError(t, err)
	assert.True(t, acquired, "expired lock should be taken over")
}

func TestLocalLockService_UnlockMissingKey(t *testing.T) {
	lockerService := NewLocalLockService()
	assert.NoError(t, lockerService.Unlock(context.Background(), "missing", "value"))
}

func TestAcquire_WaitsForRelease(t *testing.T) {
	ctx := context.Background()
	lockerService := NewLocalLockService()

	first, err := Acquire(ctx, lockerService, "k", time.Minute, time.Millisecond)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(1)
	acquiredCh := make(chan string, 1)
	go func() {
		defer wg.Done()
		second, err := Acquire(ctx, lockerService, "k", time.Minute, time.Millisecond)
		assert.NoError(t, err)
		acquiredCh <- second
	}()

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, lockerService.Unlock(ctx, "k", first))

	wg.Wait()
	assert.NotEqual(t, first, <-acquiredCh)
}

func TestAcquire_ContextDeadline(t *testing.T) {
	lockerService := NewLocalLockService()
	_, err := Acquire(context.Background(), lockerService, "k", time.Minute, time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = Acquire(ctx, lockerService, "k", time.Minute, time.Millisecond)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, 504, customErr.StatusCode)
}
