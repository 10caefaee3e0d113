package guard

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "agserv:submit:"

// RedisSubmissionGuard marca uma submissão por ttl com SETNX; uma segunda
// submissão idêntica dentro da janela é recusada.
type RedisSubmissionGuard struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisSubmissionGuard(rdb *redis.Client, ttl time.Duration) *RedisSubmissionGuard {
	return &RedisSubmissionGuard{rdb: rdb, ttl: ttl}
}

// NewRedisClient abre o cliente a partir de uma URL redis://.
func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opts), nil
}

// Acquire devolve false quando a mesma chave já foi usada dentro do ttl.
func (g *RedisSubmissionGuard) Acquire(ctx context.Context, key string) (bool, error) {
	return g.rdb.SetNX(ctx, keyPrefix+key, 1, g.ttl).Result()
}

func (g *RedisSubmissionGuard) Release(ctx context.Context, key string) error {
	return g.rdb.Del(ctx, keyPrefix+key).Err()
}

// NoopSubmissionGuard aceita tudo; usado sem REDIS_URL.
type NoopSubmissionGuard struct{}

func (NoopSubmissionGuard) Acquire(context.Context, string) (bool, error) { return true, nil }

func (NoopSubmissionGuard) Release(context.Context, string) error { return nil }
