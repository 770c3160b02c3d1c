package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyPrefix = "idempotency:payment:"

// idempotencyEntry is the stored value. Result stays nil while the first
// request is still running.
type idempotencyEntry struct {
	Fingerprint string                 `json:"fingerprint"`
	Result      *InitiatePaymentResult `json:"result,omitempty"`
}

// RedisIdempotencyStore keeps idempotency keys in Redis with a TTL.
type RedisIdempotencyStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisIdempotencyStore(rdb *redis.Client, ttl time.Duration) *RedisIdempotencyStore {
	return &RedisIdempotencyStore{rdb: rdb, ttl: ttl}
}

func (s *RedisIdempotencyStore) Reserve(ctx context.Context, key, fingerprint string) (*InitiatePaymentResult, bool, error) {
	k := idempotencyPrefix + key
	pending, err := json.Marshal(idempotencyEntry{Fingerprint: fingerprint})
	if err != nil {
		return nil, false, err
	}
	ok, err := s.rdb.SetNX(ctx, k, pending, s.ttl).Result()
	if err != nil {
		return nil, false, err
	}
	if ok {
		return nil, true, nil
	}

	raw, err := s.rdb.Get(ctx, k).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		// expired between SETNX and GET; the caller may retry
		return nil, false, nil
	case err != nil:
		return nil, false, err
	}
	return decodeIdempotencyEntry(raw, fingerprint)
}

func decodeIdempotencyEntry(raw []byte, fingerprint string) (*InitiatePaymentResult, bool, error) {
	var entry idempotencyEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, false, err
	}
	if entry.Fingerprint != fingerprint {
		return nil, false, ErrIdempotencyKeyReused
	}
	return entry.Result, false, nil
}

func (s *RedisIdempotencyStore) Complete(ctx context.Context, key, fingerprint string, res *InitiatePaymentResult) error {
	raw, err := json.Marshal(idempotencyEntry{Fingerprint: fingerprint, Result: res})
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, idempotencyPrefix+key, raw, s.ttl).Err()
}

func (s *RedisIdempotencyStore) Release(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, idempotencyPrefix+key).Err()
}
