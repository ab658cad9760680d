package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"roam-backend/internal/domain/entities"
)

// RedisService caches the rank leaderboard and places-provider responses.
// When no Redis is reachable the service runs disabled (nil client): every
// read misses and every write is a no-op, so the backend works without a
// cache.
type RedisService struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisService connects to addr; an empty addr or a failed ping yields a
// disabled service rather than an error.
func NewRedisService(addr, password string, db int, logger *slog.Logger) *RedisService {
	if addr == "" {
		return &RedisService{logger: logger}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, cache disabled", "addr", addr, "error", err)
		return &RedisService{logger: logger}
	}

	logger.Info("connected to redis", "addr", addr)
	return &RedisService{client: client, logger: logger}
}

func topRanksKey(n int) string {
	return fmt.Sprintf("ranks:top:%d", n)
}

func (r *RedisService) GetTopRanks(ctx context.Context, n int) ([]*entities.RankEntry, bool) {
	if r == nil || r.client == nil {
		return nil, false
	}

	data, err := r.client.Get(ctx, topRanksKey(n)).Bytes()
	if err != nil {
		return nil, false
	}

	var ranks []*entities.RankEntry
	if err := json.Unmarshal(data, &ranks); err != nil {
		return nil, false
	}
	return ranks, true
}

func (r *RedisService) SetTopRanks(ctx context.Context, n int, ranks []*entities.RankEntry, ttl time.Duration) {
	if r == nil || r.client == nil {
		return
	}

	data, err := json.Marshal(ranks)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, topRanksKey(n), data, ttl).Err(); err != nil {
		r.logger.Warn("failed to cache top ranks", "error", err)
	}
}

// InvalidateTopRanks drops every cached leaderboard size. Called after an
// increment so readers do not see a stale board for longer than one miss.
func (r *RedisService) InvalidateTopRanks(ctx context.Context) {
	if r == nil || r.client == nil {
		return
	}

	iter := r.client.Scan(ctx, 0, "ranks:top:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			r.logger.Warn("failed to invalidate rank cache", "key", iter.Val(), "error", err)
		}
	}
}

func (r *RedisService) GetPlacesResponse(ctx context.Context, key string) (json.RawMessage, bool) {
	if r == nil || r.client == nil {
		return nil, false
	}

	data, err := r.client.Get(ctx, "places:"+key).Bytes()
	if err != nil {
		return nil, false
	}
	return json.RawMessage(data), true
}

func (r *RedisService) SetPlacesResponse(ctx context.Context, key string, body json.RawMessage, ttl time.Duration) {
	if r == nil || r.client == nil {
		return
	}
	if err := r.client.Set(ctx, "places:"+key, []byte(body), ttl).Err(); err != nil {
		r.logger.Warn("failed to cache places response", "error", err)
	}
}

func (r *RedisService) Close() error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.Close()
}
