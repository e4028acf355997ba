package storage

import (
	"context"
	"fmt"
)

// OpenKV elige el backend: sin url, memoria; con url, Postgres migrado.
// closeFn nunca es nil si err == nil.
func OpenKV(ctx context.Context, url string) (kv KV, closeFn func() error, err error) {
	if url == "" {
		return NewMemoryKV(), func() error { return nil }, nil
	}
	db, err := Open(ctx, url)
	if err != nil {
		return nil, nil, err
	}
	if _, err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	return NewPostgresKV(db), db.Close, nil
}
