package locker

import (
	"context"
	"patient-service/internal/app/contracts"
	"patient-service/internal/pkg/exceptions"
	"time"
)

const DefaultRetryInterval = 20 * time.Millisecond

// Acquire polls TryLock until the lock is taken or ctx is done. It returns
// the lock value to pass to Unlock.
func Acquire(ctx context.Context, lockerService contracts.LockerService, key string, expiration, retryInterval time.Duration) (string, error) {
	if retryInterval <= 0 {
		retryInterval = DefaultRetryInterval
	}

	ticker := time.NewTicker(retryInterval)
	defer ticker.Stop()

	for {
		acquired, lockValue, err := lockerService.TryLock(ctx, key, expiration)
		if err != nil {
			return "", err
		}
		if acquired {
			return lockValue, nil
		}

		select {
		case <-ctx.Done():
			return "", exceptions.ErrLockNotAcquired(ctx.Err(), key)
		case <-ticker.C:
		}
	}
}
