package storage

import (
	"chat-room/domain"
	chaterrors "chat-room/errors"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

const DefaultProfile = "default"

// SessionStore keeps a single PersistedSessionRecord per profile in BadgerDB.
// The record is fully overwritten on every Save and removed on Clear.
type SessionStore struct {
	db  *badger.DB
	log *slog.Logger
	key []byte
}

func NewSessionStore(db *badger.DB, log *slog.Logger, profile string) *SessionStore {
	if profile == "" {
		profile = DefaultProfile
	}
	return &SessionStore{
		db:  db,
		log: log,
		key: []byte(fmt.Sprintf("session:%s", profile)),
	}
}

func (s *SessionStore) Save(record domain.PersistedSessionRecord) error {
	value := encodeRecord(record)
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(s.key, value)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", chaterrors.ErrWriteFailure, err)
	}
	s.log.Debug("Session record saved",
		"key", string(s.key),
		"messages", len(record.Transcript))
	return nil
}

// Load returns the stored record, or nil when there is none.
func (s *SessionStore) Load() (*domain.PersistedSessionRecord, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(s.key)
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", chaterrors.ErrReadFailure, err)
	}

	record, err := decodeRecord(value)
	if err != nil {
		return nil, fmt.Errorf("%w: corrupted record %s: %v", chaterrors.ErrReadFailure, s.key, err)
	}
	return &record, nil
}

func (s *SessionStore) Clear() error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(s.key)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", chaterrors.ErrWriteFailure, err)
	}
	return nil
}
