// Package storage provides the per-session key-value backends that hold cart snapshots.
package storage

import "context"

//go:generate mockgen -source internal/storage/storage.go -destination=internal/storage/storage_mock_test.go -package=storage

// KV stores opaque snapshots addressed by session and key. Get returns domain.ErrNotFound
// for a key that was never written.
type KV interface {
	Get(ctx context.Context, session, key string) ([]byte, error)
	Set(ctx context.Context, session, key string, value []byte) error
}

// SessionLister is implemented by backends that can report recently active sessions.
type SessionLister interface {
	RecentSessions(ctx context.Context, limit int) ([]string, error)
}

func compositeKey(session, key string) string {
	return session + ":" + key
}
