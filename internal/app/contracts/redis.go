package contracts

import (
	"context"
	"time"
)

// CompareAndDeleteResult reports what CompareAndDelete found under the key.
type CompareAndDeleteResult int

const (
	KeyMissing CompareAndDeleteResult = iota
	KeyDeleted
	KeyHeldByOther
)

type RedisRepository interface {
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	// CompareAndDelete removes key in one step, only while it still holds value.
	CompareAndDelete(ctx context.Context, key string, value interface{}) (CompareAndDeleteResult, error)
}
