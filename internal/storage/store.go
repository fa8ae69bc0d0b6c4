// Package storage provides the key-value persistence layer the session
// service flushes its caches to: a MySQL-backed store and a file-backed
// store with the same contract.
package storage

import "context"

// Store persists opaque JSON payloads under fixed string keys. Load returns
// nil with no error when a key has never been saved.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}
