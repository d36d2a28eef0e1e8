package redis

import (
	"context"
	"patient-service/internal/app/contracts"
	"patient-service/internal/pkg/exceptions"

	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// returns 1 when deleted, 0 when the key is gone, -1 when another value holds it
var compareAndDeleteScript = redis.NewScript(`
local current = redis.call("get", KEYS[1])
if not current then
	return 0
end
if current == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return -1
`)

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) contracts.RedisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return false, exceptions.ErrCannotMarshalJSON(err)
	}

	acquired, err := r.client.SetNX(ctx, key, jsonValue, exp).Result()
	if err != nil {
		return false, exceptions.ErrRedisSet(err)
	}
	return acquired, nil
}

func (r *redisRepository) CompareAndDelete(ctx context.Context, key string, value interface{}) (contracts.CompareAndDeleteResult, error) {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return contracts.KeyMissing, exceptions.ErrCannotMarshalJSON(err)
	}

	status, err := compareAndDeleteScript.Run(ctx, r.client, []string{key}, string(jsonValue)).Int64()
	if err != nil {
		return contracts.KeyMissing, exceptions.ErrRedisDelete(err)
	}

	switch {
	case status > 0:
		return contracts.KeyDeleted, nil
	case status < 0:
		return contracts.KeyHeldByOther, nil
	default:
		return contracts.KeyMissing, nil
	}
}
