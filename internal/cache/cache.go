package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pribylovaa/go-typing-arena/internal/models"

	"github.com/redis/go-redis/v9"
)

// LeaderboardCache — минимальный контракт кэша выдачи лидерборда.
// Кэш опционален: сервис обязан корректно работать и без него.
type LeaderboardCache interface {
	// Get возвращает сохранённую выдачу и признак её наличия в кэше.
	Get(ctx context.Context, gameMode, limit int) ([]models.GameResult, bool, error)
	// Set сохраняет выдачу с TTL.
	Set(ctx context.Context, gameMode, limit int, results []models.GameResult, ttl time.Duration) error
	// Invalidate сбрасывает все закэшированные выдачи режима
	// (вызывается после перезаписи лучшего результата).
	Invalidate(ctx context.Context, gameMode int) error
	// Close закрывает клиент Redis.
	Close() error
}

type redisCache struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "arena:lb:".
func NewRedisCache(redisURL, prefix string) (LeaderboardCache, error) {
	if prefix == "" {
		prefix = "arena:lb:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &redisCache{rdb: rdb, prefix: prefix}, nil
}

func (c *redisCache) key(gameMode, limit int) string {
	return fmt.Sprintf("%s%d:%d", c.prefix, gameMode, limit)
}

func (c *redisCache) modePattern(gameMode int) string {
	return fmt.Sprintf("%s%d:*", c.prefix, gameMode)
}

// Храним выдачу целиком как JSON-массив под ключом режим:лимит.
func (c *redisCache) Get(ctx context.Context, gameMode, limit int) ([]models.GameResult, bool, error) {
	raw, err := c.rdb.Get(ctx, c.key(gameMode, limit)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var results []models.GameResult
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, false, err
	}

	return results, true, nil
}

func (c *redisCache) Set(ctx context.Context, gameMode, limit int, results []models.GameResult, ttl time.Duration) error {
	raw, err := json.Marshal(results)
	if err != nil {
		return err
	}

	return c.rdb.Set(ctx, c.key(gameMode, limit), raw, ttl).Err()
}

func (c *redisCache) Invalidate(ctx context.Context, gameMode int) error {
	iter := c.rdb.Scan(ctx, 0, c.modePattern(gameMode), 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}

	return iter.Err()
}

func (c *redisCache) Close() error { return c.rdb.Close() }
