package locker

import (
	"context"
	"patient-service/internal/app/contracts"
	"patient-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/google/uuid"
)

type heldLock struct {
	value     string
	expiresAt time.Time
}

type localLockService struct {
	mu    sync.Mutex
	held  map[string]heldLock
	clock func() time.Time
}

// NewLocalLockService returns an in-process locker with the same semantics as
// the Redis one, including expiration.
func NewLocalLockService() contracts.LockerService {
	return &localLockService{
		held:  make(map[string]heldLock),
		clock: time.Now,
	}
}

func (s *localLockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	if lock, ok := s.held[key]; ok && now.Before(lock.expiresAt) {
		return false, "", nil
	}

	lockValue := uuid.NewString()
	s.held[key] = heldLock{value: lockValue, expiresAt: now.Add(expiration)}
	return true, lockValue, nil
}

func (s *localLockService) Unlock(ctx context.Context, key, lockValue string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.held[key]
	if !ok {
		return nil
	}
	if lock.value != lockValue {
		return exceptions.ErrLockNotOwned(nil, key)
	}
	delete(s.held, key)
	return nil
}
