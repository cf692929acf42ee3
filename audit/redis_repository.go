// audit/redis_repository.go
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/thingsconsole/logging"
)

const DefaultRedisKey = "things:responses"

// RedisRepository keeps the log in a Redis list so it survives a console
// restart. The list head is the entry Entries would list first.
type RedisRepository struct {
	client   redis.Cmdable
	key      string
	order    Order
	capacity int
}

func NewRedisRepository(client redis.Cmdable, key string, order Order, capacity int) *RedisRepository {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisRepository{client: client, key: key, order: order, capacity: capacity}
}

func (r *RedisRepository) Append(ctx context.Context, entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal response entry: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if r.order == OldestFirst {
			pipe.RPush(ctx, r.key, data)
			if r.capacity > 0 {
				pipe.LTrim(ctx, r.key, int64(-r.capacity), -1)
			}
		} else {
			pipe.LPush(ctx, r.key, data)
			if r.capacity > 0 {
				pipe.LTrim(ctx, r.key, 0, int64(r.capacity-1))
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to persist response entry: %w", err)
	}
	return nil
}

func (r *RedisRepository) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("failed to clear response entries: %w", err)
	}
	logger.Debug("Persisted response log cleared", zap.String("key", r.key))
	return nil
}

// Load reads the persisted entries back, oldest first.
func (r *RedisRepository) Load(ctx context.Context) ([]Entry, error) {
	raw, err := r.client.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load response entries: %w", err)
	}

	entries := make([]Entry, 0, len(raw))
	for _, item := range raw {
		var entry Entry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			logger.Warn("Skipping unreadable response entry", zap.String("key", r.key), zap.Error(err))
			continue
		}
		entries = append(entries, entry)
	}
	if r.order == NewestFirst {
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
	}
	return entries, nil
}
