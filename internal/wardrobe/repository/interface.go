package repository

import "context"

// Store is durable key-by-key text storage. Get reports absence through the
// bool, not through an error — not-found is a normal outcome.
//
//go:generate mockery --name Store
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
