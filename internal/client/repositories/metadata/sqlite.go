package metadata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/medmate/medmate/internal/dbx"
)

const (
	sqlGet    = `SELECT value FROM metadata WHERE key = ?`
	sqlUpsert = `INSERT INTO metadata (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	sqlDelete = `DELETE FROM metadata WHERE key = ?`
	sqlClear  = `DELETE FROM metadata`
	sqlList   = `SELECT key, value FROM metadata ORDER BY key`
)

// SQLiteRepository stores values in the metadata table created by the
// client migrations. It accepts a *sql.DB or a *sql.Tx.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	switch err := r.db.QueryRowContext(ctx, sqlGet, key).Scan(&value); {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("metadata get %q: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		// value is NOT NULL; an empty value is still a value.
		value = []byte{}
	}
	return r.exec(ctx, fmt.Sprintf("metadata set %q", key), sqlUpsert, key, value)
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	return r.exec(ctx, fmt.Sprintf("metadata delete %q", key), sqlDelete, key)
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	return r.exec(ctx, "metadata clear", sqlClear)
}

func (r *SQLiteRepository) List(ctx context.Context) (map[string][]byte, error) {
	rows, err := r.db.QueryContext(ctx, sqlList)
	if err != nil {
		return nil, fmt.Errorf("metadata list: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]byte)
	for rows.Next() {
		var (
			k string
			v []byte
		)
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("metadata list: scan: %w", err)
		}
		out[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("metadata list: %w", err)
	}
	return out, nil
}

func (r *SQLiteRepository) exec(ctx context.Context, op, query string, args ...any) error {
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
