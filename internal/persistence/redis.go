package persistence

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/osse101/SlotBot_Go/internal/domain"
)

// RedisOptions configures the redis snapshot store.
type RedisOptions struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// RedisStore keeps balances and claim dates in two hashes.
type RedisStore struct {
	client      *redis.Client
	balancesKey string
	claimsKey   string
}

// NewRedisStore connects and pings the server.
func NewRedisStore(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf(ErrMsgRedisConnectFmt, domain.ErrPersistence, opts.Addr, err)
	}

	return NewRedisStoreFromClient(client, opts.KeyPrefix), nil
}

// NewRedisStoreFromClient wraps an existing client. The store takes
// ownership and closes it on Close.
func NewRedisStoreFromClient(client *redis.Client, keyPrefix string) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = DefaultRedisKeyPrefix
	}
	return &RedisStore{
		client:      client,
		balancesKey: keyPrefix + RedisKeyBalances,
		claimsKey:   keyPrefix + RedisKeyDailyClaims,
	}
}

// Load reads both hashes. Missing keys read as empty.
func (s *RedisStore) Load(ctx context.Context) (Snapshot, error) {
	rawBalances, err := s.client.HGetAll(ctx, s.balancesKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return Snapshot{}, fmt.Errorf(ErrMsgRedisLoadFmt, domain.ErrPersistence, s.balancesKey, err)
	}

	claims, err := s.client.HGetAll(ctx, s.claimsKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return Snapshot{}, fmt.Errorf(ErrMsgRedisLoadFmt, domain.ErrPersistence, s.claimsKey, err)
	}

	snap := Snapshot{
		Balances:    make(map[string]int64, len(rawBalances)),
		DailyClaims: claims,
	}
	for id, raw := range rawBalances {
		balance, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Snapshot{}, fmt.Errorf(ErrMsgRedisBadBalanceFmt, domain.ErrMalformedSnapshot, raw, id)
		}
		snap.Balances[id] = balance
	}
	return snap.Normalize(), nil
}

// Save replaces both hashes in one MULTI/EXEC.
func (s *RedisStore) Save(ctx context.Context, snap Snapshot) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.balancesKey, s.claimsKey)

		if len(snap.Balances) > 0 {
			fields := make(map[string]any, len(snap.Balances))
			for id, balance := range snap.Balances {
				fields[id] = balance
			}
			pipe.HSet(ctx, s.balancesKey, fields)
		}

		if len(snap.DailyClaims) > 0 {
			fields := make(map[string]any, len(snap.DailyClaims))
			for id, date := range snap.DailyClaims {
				fields[id] = date
			}
			pipe.HSet(ctx, s.claimsKey, fields)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf(ErrMsgRedisSaveFmt, domain.ErrPersistence, err)
	}
	return nil
}

// Close closes the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
