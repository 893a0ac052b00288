// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package txstore

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/golang/snappy"
	"github.com/syndtr/goleveldb/leveldb"
)

// ErrNotFound is returned by Read when no record exists for the given tx_id.
var ErrNotFound = errors.New("transaction record not found")

// ErrAlreadyPresent is returned by Put when a record for tx_id already exists.
var ErrAlreadyPresent = errors.New("transaction record already present")

// Store is the durable, per-tx_id Transaction Record Store. Read never
// mutates. Put is not idempotent: a second Put for the same tx_id fails.
// Overwrite replaces an existing record in place, used for state
// transitions. Every operation is safe to call from multiple goroutines,
// but the engine only ever lets one goroutine touch a given tx_id's key at
// a time, since each tx_id belongs to exactly one client_id and client
// partitions are processed by a single goroutine at a time.
type Store struct {
	db  *leveldb.DB
	dir string
}

// Parameters configures where the store's data lives on disk.
type Parameters struct {
	Directory string
}

// Open purges any stale scratch directory left behind by a previous,
// aborted run and opens a fresh leveldb database in its place. Failure to
// purge or open is fatal to the caller: every run starts from a clean
// scratch namespace before any event is processed.
func Open(params Parameters) (*Store, error) {
	if err := os.RemoveAll(params.Directory); err != nil {
		return nil, fmt.Errorf("failed to purge scratch directory %q: %w", params.Directory, err)
	}
	if err := os.MkdirAll(params.Directory, 0700); err != nil {
		return nil, fmt.Errorf("failed to create scratch directory %q: %w", params.Directory, err)
	}
	db, err := leveldb.OpenFile(params.Directory, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open transaction record store: %w", err)
	}
	return &Store{db: db, dir: params.Directory}, nil
}

// Close closes the underlying database and removes the scratch directory.
// A failure here is reported to the caller but is not treated as fatal:
// the run itself already completed successfully by the time Close runs.
func (s *Store) Close() error {
	closeErr := s.db.Close()
	removeErr := os.RemoveAll(s.dir)
	return errors.Join(closeErr, removeErr)
}

func key(txID uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, txID)
	return b
}

// Read returns the current record for tx_id, or ErrNotFound if none exists.
func (s *Store) Read(txID uint32) (Record, error) {
	raw, err := s.db.Get(key(txID), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("failed to read transaction record %d: %w", txID, err)
	}
	return decode(raw)
}

// Put creates a new record. It fails with ErrAlreadyPresent if a record
// for the same tx_id already exists, which the Ledger uses to detect
// duplicate Deposit/Withdrawal events.
func (s *Store) Put(r Record) error {
	_, err := s.db.Get(key(r.TxID), nil)
	if err == nil {
		return ErrAlreadyPresent
	}
	if !errors.Is(err, leveldb.ErrNotFound) {
		return fmt.Errorf("failed to check transaction record %d: %w", r.TxID, err)
	}
	return s.write(r)
}

// Overwrite replaces an existing record (same tx_id) with a new one. It is
// used only for state transitions once the caller already holds a record.
func (s *Store) Overwrite(r Record) error {
	return s.write(r)
}

func (s *Store) write(r Record) error {
	raw, err := encode(r)
	if err != nil {
		return fmt.Errorf("failed to serialize transaction record %d: %w", r.TxID, err)
	}
	if err := s.db.Put(key(r.TxID), raw, nil); err != nil {
		return fmt.Errorf("failed to persist transaction record %d: %w", r.TxID, err)
	}
	return nil
}

// encode renders a record as a self-describing JSON document, then
// compresses it with snappy before it is written to the key-value store.
func encode(r Record) ([]byte, error) {
	doc, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return snappy.Encode(nil, doc), nil
}

func decode(raw []byte) (Record, error) {
	doc, err := snappy.Decode(nil, raw)
	if err != nil {
		return Record{}, fmt.Errorf("failed to decompress transaction record: %w", err)
	}
	var r Record
	if err := json.Unmarshal(doc, &r); err != nil {
		return Record{}, fmt.Errorf("failed to parse transaction record document: %w", err)
	}
	return r, nil
}
