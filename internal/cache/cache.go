// cache — Redis-кэш счётчиков обогащения ленты (лайки/комментарии).
//
// Счётчики дёргаются по каждому элементу каждой подгруженной страницы, при
// этом устаревание на десятки секунд для них безвредно. Кэш сбрасывает пиковую
// нагрузку на community-сервис; промах или ошибка Redis просто приводят к
// обычному походу в апстрим.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/05Daul/miniblog/pkg/log"
)

// Counts реализует clients.CountsCache поверх Redis.
type Counts struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCounts создаёт кэш счётчиков. Fail-fast: недоступный Redis на старте —
// ошибка конфигурации, а не повод молча работать без кэша.
func NewCounts(addr string, ttl time.Duration) (*Counts, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &Counts{rdb: rdb, ttl: ttl}, nil
}

// Get возвращает значение и признак попадания. Любая ошибка Redis — промах.
func (c *Counts) Get(ctx context.Context, key string) (int64, bool) {
	v, err := c.rdb.Get(ctx, key).Int64()
	if err != nil {
		if err != redis.Nil {
			log.From(ctx).Warn("cache_get_failed",
				slog.String("key", key),
				slog.String("err", err.Error()),
			)
		}

		return 0, false
	}

	return v, true
}

// Set сохраняет значение с TTL кэша. Ошибки записи только логируются.
func (c *Counts) Set(ctx context.Context, key string, value int64) {
	if err := c.rdb.Set(ctx, key, value, c.ttl).Err(); err != nil {
		log.From(ctx).Warn("cache_set_failed",
			slog.String("key", key),
			slog.String("err", err.Error()),
		)
	}
}

// Close закрывает клиент Redis.
func (c *Counts) Close() error { return c.rdb.Close() }
