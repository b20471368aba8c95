package repository

import "context"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=repository_test

// SettingsStore keeps opaque values under string keys.
type SettingsStore interface {
	// Get returns ErrNotFound when key has never been written.
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
