//go:build sqlite

// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hrstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps run records in a sqlite database file
type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

// NewSQLiteStore returns an uninitialized store on the database file at path
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func newSQLiteStore(path string) (Store, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}
	return NewSQLiteStore(path), nil
}

// Init opens the database and creates the runs table if needed
func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}

	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

// SaveRun inserts or replaces the run with rec.ID
func (s *SQLiteStore) SaveRun(ctx context.Context, rec RunRecord) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	payload, err := EncodeRun(rec)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO runs (id, name, schema_version, codec_version, payload)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			schema_version = excluded.schema_version,
			codec_version = excluded.codec_version,
			payload = excluded.payload
	`, rec.ID, rec.Name, rec.SchemaVersion, rec.CodecVersion, payload)
	return err
}

// GetRun returns the run with given id, and false if there is none
func (s *SQLiteStore) GetRun(ctx context.Context, id string) (RunRecord, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return RunRecord{}, false, err
	}

	var payload []byte
	err = db.QueryRowContext(ctx, `SELECT payload FROM runs WHERE id = ?`, id).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RunRecord{}, false, nil
		}
		return RunRecord{}, false, err
	}

	rec, err := DecodeRun(payload)
	if err != nil {
		return RunRecord{}, false, fmt.Errorf("decode run %s: %w", id, err)
	}
	return rec, true, nil
}

// ListRuns returns the ids of all stored runs, sorted
func (s *SQLiteStore) ListRuns(ctx context.Context) ([]string, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT id FROM runs ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// DeleteRun removes the run with given id, if present
func (s *SQLiteStore) DeleteRun(ctx context.Context, id string) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	return err
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, errNotInitialized
	}
	return s.db, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			schema_version INTEGER NOT NULL,
			codec_version INTEGER NOT NULL,
			payload BLOB NOT NULL
		);
	`)
	return err
}
