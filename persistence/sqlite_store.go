package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore keeps blobs in a single-table SQLite file. Suited to a single
// instance deployment without redis.
type SQLiteStore struct {
	conn *sql.DB
}

// OpenSQLiteStore opens (and creates if needed) the database at path.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	s := &SQLiteStore{conn: conn}
	if err := s.init(); err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) init() error {
	const createTableSQL = `
	CREATE TABLE IF NOT EXISTS session_blobs (
		key TEXT PRIMARY KEY,
		blob BLOB NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := s.conn.Exec(createTableSQL); err != nil {
		return fmt.Errorf("create session_blobs: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

func (s *SQLiteStore) Load(ctx context.Context, key string) ([]byte, error) {
	var blob []byte
	err := s.conn.QueryRowContext(ctx, "SELECT blob FROM session_blobs WHERE key = ?", key).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite load %s: %w", key, err)
	}
	return blob, nil
}

func (s *SQLiteStore) Save(ctx context.Context, key string, blob []byte) error {
	_, err := s.conn.ExecContext(ctx, `
		INSERT INTO session_blobs (key, blob, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET blob = excluded.blob, updated_at = CURRENT_TIMESTAMP`,
		key, blob,
	)
	if err != nil {
		return fmt.Errorf("sqlite save %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if _, err := s.conn.ExecContext(ctx, "DELETE FROM session_blobs WHERE key = ?", key); err != nil {
		return fmt.Errorf("sqlite delete %s: %w", key, err)
	}
	return nil
}
