package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Dialect selects the DDL and upsert syntax of a SQL backend.
type Dialect string

const (
	DialectMySQL    Dialect = "mysql"
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

var createTable = map[Dialect]string{
	DialectMySQL: `CREATE TABLE IF NOT EXISTS jukebox_blobs (
		name VARCHAR(64) NOT NULL PRIMARY KEY,
		data LONGBLOB NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`,
	DialectPostgres: `CREATE TABLE IF NOT EXISTS jukebox_blobs (
		name VARCHAR(64) PRIMARY KEY,
		data BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	DialectSQLite: `CREATE TABLE IF NOT EXISTS jukebox_blobs (
		name TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

var upsert = map[Dialect]string{
	DialectMySQL: `INSERT INTO jukebox_blobs (name, data) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE data = VALUES(data)`,
	DialectPostgres: `INSERT INTO jukebox_blobs (name, data) VALUES (?, ?)
		ON CONFLICT (name) DO UPDATE SET data = excluded.data, updated_at = now()`,
	DialectSQLite: `INSERT INTO jukebox_blobs (name, data) VALUES (?, ?)
		ON CONFLICT (name) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
}

// SQLStore keeps blobs in a single jukebox_blobs table.
type SQLStore struct {
	db      *sqlx.DB
	dialect Dialect
}

// NewSQLStore makes sure the blob table exists.
func NewSQLStore(ctx context.Context, db *sqlx.DB, dialect Dialect) (*SQLStore, error) {
	ddl, ok := createTable[dialect]
	if !ok {
		return nil, fmt.Errorf("unknown sql dialect %q", dialect)
	}
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return nil, fmt.Errorf("create jukebox_blobs: %w", err)
	}
	return &SQLStore{db: db, dialect: dialect}, nil
}

func (s *SQLStore) Load(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.db.GetContext(ctx, &data, s.db.Rebind(`SELECT data FROM jukebox_blobs WHERE name = ?`), key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAbsent
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SQLStore) Save(ctx context.Context, key string, data []byte) error {
	_, err := s.db.ExecContext(ctx, s.db.Rebind(upsert[s.dialect]), key, data)
	return err
}

func (s *SQLStore) Close() error { return s.db.Close() }
