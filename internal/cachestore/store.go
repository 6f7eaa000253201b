// Package cachestore implements the cache-aside read/write discipline shared
// by every resource repository: reads are served from the cache when fresh,
// writes go to the backing store first and invalidate the affected keys only
// after the store has confirmed them. Cache entries are disposable copies;
// the backing store stays the single source of truth.
package cachestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

var (
	// ErrNotFound is returned when a record does not exist in the backing store.
	ErrNotFound = errors.New("record not found")
	// ErrBackingStore wraps failures of the backing store itself.
	ErrBackingStore = errors.New("backing store failure")
)

// Backing is the relational access a Store decorates. Implementations map
// their driver's not-found condition to ErrNotFound.
type Backing[T any] interface {
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id int64) (*T, error)
	Insert(ctx context.Context, rec *T) error
	Update(ctx context.Context, id int64, rec *T) error
	Delete(ctx context.Context, id int64) error
}

// Store decorates a Backing with cache-aside reads and write-path
// invalidation. A cache failure is never fatal: reads fall through to the
// backing store on any cache error, so an unreachable cache degrades
// throughput, not correctness.
type Store[T any] struct {
	resource string
	backing  Backing[T]
	cache    Cache
	ttl      time.Duration
	logger   *slog.Logger
}

// New creates a Store for one resource. The resource name seeds the cache
// key namespace and must be unique across stores sharing a cache.
func New[T any](resource string, backing Backing[T], cache Cache, ttl time.Duration, logger *slog.Logger) *Store[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store[T]{
		resource: resource,
		backing:  backing,
		cache:    cache,
		ttl:      ttl,
		logger:   logger,
	}
}

// GetAll returns every record of the resource, serving from the cache when a
// fresh "<resource>:all" entry exists.
func (s *Store[T]) GetAll(ctx context.Context) ([]T, error) {
	key := AllKey(s.resource)
	if b, ok := s.lookup(ctx, key); ok {
		var records []T
		if err := json.Unmarshal(b, &records); err == nil {
			return records, nil
		}
		s.logger.Warn("discarding undecodable cache entry", "key", key)
	}

	records, err := s.backing.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch all %s: %v", ErrBackingStore, s.resource, err)
	}
	s.populate(ctx, key, records)
	return records, nil
}

// GetByID returns a single record, serving from the cache when a fresh
// "<resource>:<id>" entry exists. Missing records yield ErrNotFound and are
// not cached.
func (s *Store[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	key := IDKey(s.resource, id)
	if b, ok := s.lookup(ctx, key); ok {
		var record T
		if err := json.Unmarshal(b, &record); err == nil {
			return &record, nil
		}
		s.logger.Warn("discarding undecodable cache entry", "key", key)
	}

	record, err := s.backing.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: fetch %s %d: %v", ErrBackingStore, s.resource, id, err)
	}
	s.populate(ctx, key, record)
	return record, nil
}

// Create inserts a record through the backing store and, only once the
// insert has succeeded, invalidates the collection key. Single-item keys are
// untouched: a new id cannot have a cache entry yet.
func (s *Store[T]) Create(ctx context.Context, rec *T) error {
	if err := s.backing.Insert(ctx, rec); err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrBackingStore, s.resource, err)
	}
	s.invalidate(ctx, AllKey(s.resource))
	return nil
}

// Update rewrites the record with the given id, then invalidates both the
// item key and the collection key. The record's identifier field must match
// id. On backing failure no cache key is touched; the cache still reflects
// the unchanged store state.
func (s *Store[T]) Update(ctx context.Context, id int64, rec *T) error {
	if err := s.backing.Update(ctx, id, rec); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: update %s %d: %v", ErrBackingStore, s.resource, id, err)
	}
	s.invalidate(ctx, IDKey(s.resource, id), AllKey(s.resource))
	return nil
}

// Delete removes the record with the given id, then invalidates both the
// item key and the collection key.
func (s *Store[T]) Delete(ctx context.Context, id int64) error {
	if err := s.backing.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: delete %s %d: %v", ErrBackingStore, s.resource, id, err)
	}
	s.invalidate(ctx, IDKey(s.resource, id), AllKey(s.resource))
	return nil
}

// lookup reads a key, treating every cache error as a forced miss.
func (s *Store[T]) lookup(ctx context.Context, key string) ([]byte, bool) {
	b, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			s.logger.Warn("cache read failed, falling through to store", "key", key, "error", err)
		}
		return nil, false
	}
	return b, true
}

// populate writes a freshly fetched value under key with the store TTL.
// Failures are logged and swallowed; the caller already holds fresh data.
func (s *Store[T]) populate(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		s.logger.Warn("cache encode failed", "key", key, "error", err)
		return
	}
	if err := s.cache.Set(ctx, key, b, s.ttl); err != nil {
		s.logger.Warn("cache write failed", "key", key, "error", err)
	}
}

// invalidate discards keys after a confirmed write. Invalidate, never
// refresh-in-place: the next read repopulates from the store.
func (s *Store[T]) invalidate(ctx context.Context, keys ...string) {
	if err := s.cache.Del(ctx, keys...); err != nil {
		s.logger.Warn("cache invalidation failed, stale entries may persist until TTL",
			"keys", keys, "error", err)
	}
}
