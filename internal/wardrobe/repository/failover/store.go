// Package failover composes the primary (SQLite) and fallback (plain file)
// stores into the durable adapter the wardrobe store writes through: reads
// and writes prefer the primary and degrade to the fallback on any primary
// failure.
package failover

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"wardrobe/internal/wardrobe/repository"
	"wardrobe/pkg/log"
)

// Store is the composed adapter. Besides plain key/value access it owns the
// one-time migration out of the legacy (file) location.
type Store interface {
	repository.Store
	// MigrateLegacy copies the value stored under key in the legacy location
	// into the primary store, then deletes the legacy copy. Idempotent: a
	// second call finds nothing and is a no-op.
	MigrateLegacy(ctx context.Context, key string) error
}

// Config sizes the read-through cache.
type Config struct {
	CacheSize int
	CacheTTL  time.Duration
}

type implStore struct {
	primary  repository.Store
	fallback repository.Store
	cache    *expirable.LRU[string, string]
	l        log.Logger
}

// New composes primary and fallback into a failover Store. The fallback
// doubles as the legacy location for MigrateLegacy.
func New(primary, fallback repository.Store, cfg Config, l log.Logger) Store {
	if primary == nil || fallback == nil {
		panic("wardrobe/repository/failover: primary and fallback are required")
	}
	size := cfg.CacheSize
	if size <= 0 {
		size = 64
	}
	return &implStore{
		primary:  primary,
		fallback: fallback,
		cache:    expirable.NewLRU[string, string](size, nil, cfg.CacheTTL),
		l:        l,
	}
}

// Get never surfaces an error: a key that cannot be read from either store
// is reported absent.
func (s *implStore) Get(ctx context.Context, key string) (string, bool, error) {
	if value, ok := s.cache.Get(key); ok {
		return value, true, nil
	}

	value, ok, err := s.primary.Get(ctx, key)
	if err != nil {
		s.l.Warnf(ctx, "failover.Get: primary failed for %q, trying fallback: %v", key, err)
		value, ok, err = s.fallback.Get(ctx, key)
		if err != nil {
			s.l.Errorf(ctx, "failover.Get: fallback failed for %q: %v", key, err)
			return "", false, nil
		}
	}
	if ok {
		s.cache.Add(key, value)
	}
	return value, ok, nil
}

// Set commits to the primary store, degrading to the fallback when the
// primary fails. Only a double failure is surfaced.
func (s *implStore) Set(ctx context.Context, key, value string) error {
	s.cache.Add(key, value)

	if err := s.primary.Set(ctx, key, value); err != nil {
		s.l.Warnf(ctx, "failover.Set: primary degraded for %q, writing fallback: %v", key, err)
		if fbErr := s.fallback.Set(ctx, key, value); fbErr != nil {
			s.cache.Remove(key)
			s.l.Errorf(ctx, "failover.Set: fallback failed for %q: %v", key, fbErr)
			return fmt.Errorf("%w: primary and fallback both failed", repository.ErrFailedToSet)
		}
	}
	return nil
}

func (s *implStore) Delete(ctx context.Context, key string) error {
	s.cache.Remove(key)

	if err := s.primary.Delete(ctx, key); err != nil {
		s.l.Warnf(ctx, "failover.Delete: primary degraded for %q, deleting from fallback: %v", key, err)
		if fbErr := s.fallback.Delete(ctx, key); fbErr != nil {
			s.l.Errorf(ctx, "failover.Delete: fallback failed for %q: %v", key, fbErr)
			return fmt.Errorf("%w: primary and fallback both failed", repository.ErrFailedToDelete)
		}
	}
	return nil
}

func (s *implStore) MigrateLegacy(ctx context.Context, key string) error {
	value, ok, err := s.fallback.Get(ctx, key)
	if err != nil {
		s.l.Errorf(ctx, "failover.MigrateLegacy: reading legacy %q: %v", key, err)
		return err
	}
	if !ok {
		return nil // nothing to migrate
	}

	if err := s.primary.Set(ctx, key, value); err != nil {
		s.l.Errorf(ctx, "failover.MigrateLegacy: writing primary %q: %v", key, err)
		return err
	}
	if err := s.fallback.Delete(ctx, key); err != nil {
		s.l.Errorf(ctx, "failover.MigrateLegacy: deleting legacy %q: %v", key, err)
		return err
	}
	s.cache.Add(key, value)
	s.l.Infof(ctx, "failover.MigrateLegacy: migrated %q from legacy storage", key)
	return nil
}

func (s *implStore) Close() error {
	if err := s.fallback.Close(); err != nil {
		return err
	}
	return s.primary.Close()
}
