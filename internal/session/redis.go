package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each session as a JSON document under prefix:id with a
// TTL that is refreshed on every write.  Updates are serialized per process;
// a session is only ever driven by the one visitor holding its id.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
	mu     sync.Mutex
}

// NewRedisStore binds a store to a connected client.
func NewRedisStore(rdb *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (r *RedisStore) key(id string) string {
	return r.prefix + ":" + id
}

func (r *RedisStore) Create(ctx context.Context, s *Session) error {
	return r.save(ctx, s)
}

func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	bs, err := r.rdb.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get seat session: %w", err)
	}
	s, err := decode(bs)
	if err != nil {
		return nil, fmt.Errorf("decode seat session: %w", err)
	}
	return s, nil
}

func (r *RedisStore) Update(ctx context.Context, id string, fn func(*Session) error) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(s); err != nil {
		return nil, err
	}
	if err := r.save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.rdb.Del(ctx, r.key(id)).Err(); err != nil {
		return fmt.Errorf("delete seat session: %w", err)
	}
	return nil
}

func (r *RedisStore) save(ctx context.Context, s *Session) error {
	payload, err := encode(s)
	if err != nil {
		return fmt.Errorf("encode seat session: %w", err)
	}
	if err := r.rdb.Set(ctx, r.key(s.ID), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("save seat session: %w", err)
	}
	return nil
}
