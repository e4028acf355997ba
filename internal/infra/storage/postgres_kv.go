package storage

import (
	"context"
	"database/sql"
	"errors"

	pq "github.com/lib/pq"
)

// PostgresKV guarda cada entrada como una fila de kv_entries (value JSONB).
type PostgresKV struct{ db *sql.DB }

func NewPostgresKV(db *sql.DB) *PostgresKV { return &PostgresKV{db: db} }

func (r *PostgresKV) Get(ctx context.Context, key string) ([]byte, error) {
	var v []byte
	err := r.db.QueryRowContext(ctx, `
SELECT value
  FROM kv_entries
 WHERE key = $1
`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return v, err
}

func (r *PostgresKV) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO kv_entries (key, value)
VALUES ($1, $2::jsonb)
ON CONFLICT (key) DO UPDATE SET
  value      = EXCLUDED.value,
  updated_at = now()
`, key, string(value))
	return err
}

func (r *PostgresKV) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM kv_entries WHERE key = $1`, key)
	return err
}

// GetMany: devuelve mapa key -> value sólo para las claves que existen.
func (r *PostgresKV) GetMany(ctx context.Context, keys []string) (map[string][]byte, error) {
	out := map[string][]byte{}
	if len(keys) == 0 {
		return out, nil
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT key, value
  FROM kv_entries
 WHERE key = ANY($1)
`, pq.Array(keys))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var k string
		var v []byte
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, rows.Err()
}
