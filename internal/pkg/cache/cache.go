package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// FetchFunc — загрузка значения при промахе кэша.
type FetchFunc func(ctx context.Context) (any, error)

type entry struct {
	value     any
	expiresAt time.Time
}

// Cache — общий для процесса кэш с истечением по TTL.
// Записи не инвалидируются вручную: они устаревают и перезаписываются
// следующей успешной загрузкой по тому же ключу.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	group   singleflight.Group
	clock   Clock
}

func New() *Cache { return NewWithClock(NewRealClock()) }

// NewWithClock — конструктор для тестов: позволяет подставить фиксированные "часы".
func NewWithClock(clk Clock) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		clock:   clk,
	}
}

// GetOrFetch — возвращает живое значение из кэша либо загружает его
// через fetch. Параллельные запросы одного ключа схлопываются в одну
// загрузку (singleflight). Ошибки не кэшируются: неудачная загрузка
// оставляет слот пустым, следующий вызов попробует снова.
func (c *Cache) GetOrFetch(ctx context.Context, key string, ttl time.Duration, fetch FetchFunc) (any, error) {
	if v, ok := c.lookup(key); ok {
		return v, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// Повторная проверка: пока вызов ждал очередь singleflight,
		// значение мог записать предыдущий вызов.
		if v, ok := c.lookup(key); ok {
			return v, nil
		}
		v, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = entry{value: v, expiresAt: c.clock.Now().Add(ttl)}
		c.mu.Unlock()
		return v, nil
	})
	return v, err
}

func (c *Cache) lookup(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || c.clock.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

// Len — число записей, включая устаревшие.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
