package domain

import "context"

// Ключи кеша — единое место, чтобы не расползались по коду.
func CacheKeyMovie(id MovieID) string { return "movie:" + id.String() }
func CacheKeyMovieList() string       { return "movies:list" }

// Простой k/v интерфейс. Реализации — Redis и in-memory.
// Get различает промах (ok=false) и пустое значение.
// ttlSeconds <= 0 — без истечения; записи живут до явной инвалидации.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte, ttlSeconds int) error
	Del(ctx context.Context, keys ...string) error
	Ping(context.Context) error
	Close()
}
