// Package storage opens the snapshot store selected by configuration:
// a migrated SQLite database, a Redis client, or process memory.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/medmate/medmate/internal/client/config"
	"github.com/medmate/medmate/internal/client/migrations"
	"github.com/medmate/medmate/internal/client/repositories/metadata"
	"github.com/medmate/medmate/internal/filex"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	_ "modernc.org/sqlite"
)

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.Migrations)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// OpenSQLite opens dsn with the modernc driver and migrates it.
func OpenSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// A single connection keeps ":memory:" databases consistent and avoids
	// SQLITE_BUSY on the file.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Store is an opened metadata backend and the resource behind it.
type Store struct {
	Metadata metadata.Repository
	closeFn  func() error
}

// Close releases the underlying database or client.
func (s *Store) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}

// Open builds the metadata backend named by cfg.StorageBackend.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.StorageBackend {
	case config.StorageSQLite:
		dir, err := filex.EnsureDir(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		db, err := OpenSQLite(ctx, filepath.Join(dir, cfg.DatabaseFile))
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return &Store{Metadata: metadata.NewSQLiteRepository(db), closeFn: db.Close}, nil

	case config.StorageRedis:
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
		}
		return &Store{Metadata: metadata.NewRedisRepository(rdb, ""), closeFn: rdb.Close}, nil

	case config.StorageMemory:
		return &Store{Metadata: metadata.NewMemoryRepository()}, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
