package memory

import (
	"context"
	"log"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Кеш в памяти процесса поверх go-cache.
// Для локальной разработки и тестов; контракт тот же, что у Redis-адаптера.
type Cache struct {
	c      *gocache.Cache
	logger *log.Logger
}

func New(logger *log.Logger) *Cache {
	// janitor раз в минуту; записи без TTL живут до явного Del
	return &Cache{c: gocache.New(gocache.NoExpiration, time.Minute), logger: logger}
}

func (m *Cache) Ping(_ context.Context) error { return nil }

func (m *Cache) Close() {
	m.c.Flush()
	m.logger.Println("flushed")
}

func (m *Cache) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.c.Get(key)
	if !ok {
		m.logger.Printf("GET %q: miss", key)
		return nil, false, nil
	}
	b, ok := v.([]byte)
	if !ok {
		m.logger.Printf("GET %q: unexpected value type", key)
		return nil, false, nil
	}
	m.logger.Printf("GET %q: hit (%d bytes)", key, len(b))
	return b, true, nil
}

func (m *Cache) Set(_ context.Context, key string, val []byte, ttlSeconds int) error {
	ttl := gocache.NoExpiration
	if ttlSeconds > 0 {
		ttl = time.Duration(ttlSeconds) * time.Second
	}
	// копия: go-cache хранит ссылку, а вызывающий может переиспользовать буфер
	b := make([]byte, len(val))
	copy(b, val)
	m.c.Set(key, b, ttl)
	m.logger.Printf("SET %q ok (ttl=%s)", key, ttl)
	return nil
}

func (m *Cache) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		m.c.Delete(k)
	}
	m.logger.Printf("DEL %v ok", keys)
	return nil
}
