// Package storage persists game sessions across service restarts.
package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/awaisrafeeq/chesstutor/internal/engine"
)

// Key layout: one record per session under "session/<id>".
const sessionPrefix = "session/"

// SessionRecord is the stored form of one game session. FEN is the
// current position; History holds the records of the moves that
// produced it, so a restored session keeps its narrative.
type SessionRecord struct {
	ID        string              `json:"id"`
	FEN       string              `json:"fen"`
	History   []engine.MoveRecord `json:"history"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// Store wraps BadgerDB for session persistence.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the database in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// OpenDefault opens the database in the platform data directory.
func OpenDefault() (*Store, error) {
	dir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dir)
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// PutSession writes one session record, replacing any previous version.
func (s *Store) PutSession(rec SessionRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(sessionKey(rec.ID), data)
	})
}

// GetSession loads one session record. ok reports whether the id was
// stored at all.
func (s *Store) GetSession(id string) (SessionRecord, bool, error) {
	var rec SessionRecord
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey(id))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})

	return rec, found, err
}

// DeleteSession removes one session record. Unknown ids are not an
// error; the record is gone either way.
func (s *Store) DeleteSession(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(sessionKey(id))
	})
}

// ListSessions returns every stored session record.
func (s *Store) ListSessions() ([]SessionRecord, error) {
	var out []SessionRecord

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(sessionPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var rec SessionRecord
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return err
			}
			out = append(out, rec)
		}
		return nil
	})

	return out, err
}

func sessionKey(id string) []byte {
	return []byte(sessionPrefix + id)
}
