package planstore

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vastuplan/vastuplan/pkg/errors"
)

const (
	redisKeyPrefix = "vastuplan:plan:"
	redisIndexKey  = "vastuplan:plans"
)

// RedisStore keeps records in Redis, one key per record plus a sorted
// set indexed by creation time for listing and pruning.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to the given Redis address and verifies the
// connection with a ping.
func NewRedisStore(ctx context.Context, addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrap(errors.ErrCodeStoreRead, err, "connecting to redis at %s", addr)
	}
	return &RedisStore{client: client}, nil
}

// Put stores the record and adds it to the time index.
func (s *RedisStore) Put(ctx context.Context, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreWrite, err, "encoding record %s", rec.ID)
	}
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, redisKeyPrefix+rec.ID, data, 0)
	pipe.ZAdd(ctx, redisIndexKey, redis.Z{
		Score:  float64(rec.CreatedAt.Unix()),
		Member: rec.ID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(errors.ErrCodeStoreWrite, err, "storing record %s", rec.ID)
	}
	return nil
}

// Get retrieves a record by ID.
func (s *RedisStore) Get(ctx context.Context, id string) (Record, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, errors.Wrap(errors.ErrCodeStoreRead, err, "reading record %s", id)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// List returns up to limit records, newest first.
func (s *RedisStore) List(ctx context.Context, limit int) ([]Record, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}
	ids, err := s.client.ZRevRange(ctx, redisIndexKey, 0, stop).Result()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreRead, err, "listing records")
	}

	out := make([]Record, 0, len(ids))
	for _, id := range ids {
		rec, err := s.Get(ctx, id)
		if err == ErrNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// Prune removes records created before cutoff and returns their
// artifact filenames.
func (s *RedisStore) Prune(ctx context.Context, cutoff time.Time) ([]string, error) {
	max := strconv.FormatInt(cutoff.Unix()-1, 10)
	ids, err := s.client.ZRangeByScore(ctx, redisIndexKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: max,
	}).Result()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreRead, err, "finding expired records")
	}

	var pruned []string
	for _, id := range ids {
		rec, err := s.Get(ctx, id)
		if err == nil {
			pruned = append(pruned, rec.Filename)
		}
		pipe := s.client.TxPipeline()
		pipe.Del(ctx, redisKeyPrefix+id)
		pipe.ZRem(ctx, redisIndexKey, id)
		if _, err := pipe.Exec(ctx); err != nil {
			return pruned, errors.Wrap(errors.ErrCodeStoreWrite, err, "removing record %s", id)
		}
	}
	return pruned, nil
}

// Close releases the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
