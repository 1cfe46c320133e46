package failover

import (
	"context"
	"errors"
	"testing"
	"time"

	"wardrobe/internal/wardrobe/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeStore is an in-memory repository.Store whose operations can be forced
// to fail.
type fakeStore struct {
	data map[string]string
	fail bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}}
}

func (s *fakeStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.fail {
		return "", false, repository.ErrFailedToGet
	}
	value, ok := s.data[key]
	return value, ok, nil
}

func (s *fakeStore) Set(ctx context.Context, key, value string) error {
	if s.fail {
		return repository.ErrFailedToSet
	}
	s.data[key] = value
	return nil
}

func (s *fakeStore) Delete(ctx context.Context, key string) error {
	if s.fail {
		return repository.ErrFailedToDelete
	}
	delete(s.data, key)
	return nil
}

func (s *fakeStore) Close() error { return nil }

func newTestStore(primary, fallback *fakeStore) Store {
	return New(primary, fallback, Config{CacheSize: 8, CacheTTL: time.Minute}, &mockLogger{})
}

func TestGet(t *testing.T) {
	ctx := context.Background()

	t.Run("Prefers Primary", func(t *testing.T) {
		primary, fallback := newFakeStore(), newFakeStore()
		primary.data["k"] = "primary"
		fallback.data["k"] = "fallback"

		value, ok, err := newTestStore(primary, fallback).Get(ctx, "k")
		if err != nil || !ok || value != "primary" {
			t.Errorf("expected primary value, got %q ok=%v err=%v", value, ok, err)
		}
	})

	t.Run("Falls Back On Primary Failure", func(t *testing.T) {
		primary, fallback := newFakeStore(), newFakeStore()
		primary.fail = true
		fallback.data["k"] = "fallback"

		value, ok, err := newTestStore(primary, fallback).Get(ctx, "k")
		if err != nil || !ok || value != "fallback" {
			t.Errorf("expected fallback value, got %q ok=%v err=%v", value, ok, err)
		}
	})

	t.Run("Double Failure Reads As Absent", func(t *testing.T) {
		primary, fallback := newFakeStore(), newFakeStore()
		primary.fail = true
		fallback.fail = true

		value, ok, err := newTestStore(primary, fallback).Get(ctx, "k")
		if err != nil || ok || value != "" {
			t.Errorf("expected silent absent, got %q ok=%v err=%v", value, ok, err)
		}
	})

	t.Run("Caches Reads", func(t *testing.T) {
		primary, fallback := newFakeStore(), newFakeStore()
		primary.data["k"] = "v"
		store := newTestStore(primary, fallback)

		if _, ok, _ := store.Get(ctx, "k"); !ok {
			t.Fatal("expected hit")
		}
		// Even with both backends down, the cached value answers.
		primary.fail = true
		fallback.fail = true
		if value, ok, _ := store.Get(ctx, "k"); !ok || value != "v" {
			t.Errorf("expected cached value, got %q ok=%v", value, ok)
		}
	})
}

func TestSet(t *testing.T) {
	ctx := context.Background()

	t.Run("Writes Primary", func(t *testing.T) {
		primary, fallback := newFakeStore(), newFakeStore()
		if err := newTestStore(primary, fallback).Set(ctx, "k", "v"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if primary.data["k"] != "v" {
			t.Error("expected value in primary")
		}
		if _, ok := fallback.data["k"]; ok {
			t.Error("fallback must not be written when primary succeeds")
		}
	})

	t.Run("Degrades To Fallback", func(t *testing.T) {
		primary, fallback := newFakeStore(), newFakeStore()
		primary.fail = true

		if err := newTestStore(primary, fallback).Set(ctx, "k", "v"); err != nil {
			t.Fatalf("degraded write must not surface an error: %v", err)
		}
		if fallback.data["k"] != "v" {
			t.Error("expected value in fallback")
		}
	})

	t.Run("Double Failure Surfaces", func(t *testing.T) {
		primary, fallback := newFakeStore(), newFakeStore()
		primary.fail = true
		fallback.fail = true

		err := newTestStore(primary, fallback).Set(ctx, "k", "v")
		if !errors.Is(err, repository.ErrFailedToSet) {
			t.Errorf("expected ErrFailedToSet, got %v", err)
		}
	})
}

func TestMigrateLegacy(t *testing.T) {
	ctx := context.Background()

	t.Run("Copies Then Deletes Legacy", func(t *testing.T) {
		primary, fallback := newFakeStore(), newFakeStore()
		fallback.data["wardrobe-storage"] = `{"clothes":[]}`
		store := newTestStore(primary, fallback)

		if err := store.MigrateLegacy(ctx, "wardrobe-storage"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if primary.data["wardrobe-storage"] != `{"clothes":[]}` {
			t.Error("expected snapshot copied into primary")
		}
		if _, ok := fallback.data["wardrobe-storage"]; ok {
			t.Error("expected legacy copy deleted")
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		primary, fallback := newFakeStore(), newFakeStore()
		fallback.data["wardrobe-storage"] = "snapshot"
		store := newTestStore(primary, fallback)

		if err := store.MigrateLegacy(ctx, "wardrobe-storage"); err != nil {
			t.Fatalf("first call: %v", err)
		}
		primary.data["wardrobe-storage"] = "newer"
		if err := store.MigrateLegacy(ctx, "wardrobe-storage"); err != nil {
			t.Fatalf("second call: %v", err)
		}
		if primary.data["wardrobe-storage"] != "newer" {
			t.Error("second call must be a no-op")
		}
	})

	t.Run("Nothing To Migrate", func(t *testing.T) {
		store := newTestStore(newFakeStore(), newFakeStore())
		if err := store.MigrateLegacy(ctx, "wardrobe-storage"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
