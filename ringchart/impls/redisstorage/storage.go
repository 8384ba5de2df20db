package redisstorage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libringchart/segment"
)

// NewRedisStorage stores each key as a json string. expiration 0 keeps keys forever.
func NewRedisStorage(redisCli *redis.Client, redisKeyPre string, expiration time.Duration) *RedisStorage {
	return &RedisStorage{
		redisCli:    redisCli,
		redisKeyPre: redisKeyPre,
		expiration:  expiration,
	}
}

type RedisStorage struct {
	redisCli    *redis.Client
	redisKeyPre string
	expiration  time.Duration
}

func (impl *RedisStorage) redisKey(key string) string {
	if impl.redisKeyPre == "" {
		return "ringchart:" + key
	}

	return impl.redisKeyPre + ":ringchart:" + key
}

func (impl *RedisStorage) Load(ctx context.Context, key string) (ds []segment.DataPoint, err error) {
	d, err := impl.redisCli.Get(ctx, impl.redisKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = commerr.ErrNotFound
		}

		return
	}

	err = json.Unmarshal(d, &ds)

	return
}

func (impl *RedisStorage) Save(ctx context.Context, key string, ds []segment.DataPoint) error {
	if ds == nil {
		ds = []segment.DataPoint{}
	}

	d, err := json.Marshal(ds)
	if err != nil {
		return err
	}

	return impl.redisCli.Set(ctx, impl.redisKey(key), d, impl.expiration).Err()
}

func (impl *RedisStorage) Del(ctx context.Context, key string) error {
	return impl.redisCli.Del(ctx, impl.redisKey(key)).Err()
}
