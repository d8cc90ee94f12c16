// Package storage provides a durable key/value backend for the fund engine,
// backed by badger. The in-memory mock in sdk/ covers tests; this is what a
// deployment runs on.
package storage

import (
	"errors"

	"github.com/dgraph-io/badger/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
)

// BadgerState adapts a badger database to the engine's state interface. The
// interface is infallible by design, so storage errors are logged and treated
// as fatal: a half-written fund state is worse than a crash.
type BadgerState struct {
	db  *badger.DB
	log zerolog.Logger
}

// Open creates or reopens the database directory.
func Open(dir string, log zerolog.Logger) (*BadgerState, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &BadgerState{
		db:  db,
		log: log.With().Str("component", "storage").Logger(),
	}, nil
}

// Set writes one key, fatal on storage failure.
func (s *BadgerState) Set(key string, value string) {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		s.log.Fatal().Err(err).Str("key", key).Msg("badger set failed")
	}
}

// Get returns nil for absent keys, mirroring the mock state.
func (s *BadgerState) Get(key string) *string {
	var out *string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			v := string(val)
			out = &v
			return nil
		})
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		s.log.Fatal().Err(err).Str("key", key).Msg("badger get failed")
	}
	return out
}

// Delete drops one key, fatal on storage failure.
func (s *BadgerState) Delete(key string) {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		s.log.Fatal().Err(err).Str("key", key).Msg("badger delete failed")
	}
}

// Close syncs and shuts the database down, collecting both errors if both
// steps fail.
func (s *BadgerState) Close() error {
	var result *multierror.Error
	if err := s.db.Sync(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := s.db.Close(); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}
