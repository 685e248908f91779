// Package cache эфемерный слой поверх Redis: снимки полей, списки
// бронирований пользователя и отзывы как best-effort fallback.
//
// Авторитетные данные живут на бэкенде. Кеш доступности никогда не
// патчится на месте - после любой мутации, способной его изменить, он
// инвалидируется, и следующее чтение идет на бэкенд. Потеря кеша - это
// не потеря данных, а лишний round-trip.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsObserver интерфейс для учета попаданий в кеш
type MetricsObserver interface {
	CacheHit(cache string)
	CacheMiss(cache string)
	CacheError(cache string)
}

// Cache обертка над redis-клиентом с TTL-политикой по типам данных
type Cache struct {
	rdb            *redis.Client
	fieldTTL       time.Duration
	reservationTTL time.Duration
	reviewTTL      time.Duration
	metrics        MetricsObserver
	log            Logger
}

// New создает Cache
func New(rdb *redis.Client, fieldTTL, reservationTTL, reviewTTL time.Duration, metrics MetricsObserver, log Logger) *Cache {
	return &Cache{
		rdb:            rdb,
		fieldTTL:       fieldTTL,
		reservationTTL: reservationTTL,
		reviewTTL:      reviewTTL,
		metrics:        metrics,
		log:            log,
	}
}

// get читает и десериализует значение по ключу
func (c *Cache) get(ctx context.Context, name, key string, out interface{}) error {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.observeMiss(name)
			return ErrCacheMiss
		}
		c.observeError(name)
		return fmt.Errorf("%w: get %s: %v", ErrInternal, key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.observeError(name)
		return fmt.Errorf("%w: unmarshal %s: %v", ErrInternal, key, err)
	}
	c.observeHit(name)
	return nil
}

// set сериализует и пишет значение с TTL
func (c *Cache) set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", ErrInternal, key, err)
	}
	if err := c.rdb.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrInternal, key, err)
	}
	return nil
}

func (c *Cache) del(ctx context.Context, keys ...string) error {
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%w: del %v: %v", ErrInternal, keys, err)
	}
	return nil
}

func (c *Cache) observeHit(name string) {
	if c.metrics != nil {
		c.metrics.CacheHit(name)
	}
}

func (c *Cache) observeMiss(name string) {
	if c.metrics != nil {
		c.metrics.CacheMiss(name)
	}
}

func (c *Cache) observeError(name string) {
	if c.metrics != nil {
		c.metrics.CacheError(name)
	}
}
