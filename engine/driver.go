// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package engine implements the Batched Concurrent Driver: it reads
// payment events in fixed-size batches, partitions each batch by
// client, and runs one work unit per client in parallel, joining
// before the next batch is read.
package engine

import (
	"errors"
	"io"
	"sync"

	"github.com/fantom-foundation/ledger-engine/config"
	"github.com/fantom-foundation/ledger-engine/dispatch"
	"github.com/fantom-foundation/ledger-engine/ledger"
	"github.com/fantom-foundation/ledger-engine/ledgererr"
	"github.com/fantom-foundation/ledger-engine/logging"
	"github.com/fantom-foundation/ledger-engine/txstore"
)

// EventSource is a lazy sequence of parsed payment events. Read returns
// io.EOF once the source is exhausted. A recoverable *ledgererr.Error
// signals a per-row problem that should be logged and skipped without
// stopping the run; any other error is treated as fatal to the whole run.
type EventSource interface {
	Read() (dispatch.Event, error)
}

// entry is one client's registered ledger plus the mutex that
// synchronizes mutation of its account against the final reporting pass.
type entry struct {
	mu     sync.Mutex
	ledger *ledger.Ledger
}

// Driver owns the per-client ledger registry and the shared transaction
// record store, and drives a source of events through them in batches.
type Driver struct {
	store     *txstore.Store
	log       *logging.Log
	batchSize int

	registryMu sync.Mutex
	registry   map[uint16]*entry
}

// New creates a Driver backed by store, with the given batch size (or
// config.DefaultBatchSize if non-positive).
func New(store *txstore.Store, log *logging.Log, batchSize int) *Driver {
	if batchSize <= 0 {
		batchSize = config.DefaultBatchSize
	}
	return &Driver{
		store:     store,
		log:       log,
		batchSize: batchSize,
		registry:  make(map[uint16]*entry),
	}
}

// entryFor returns the registered entry for clientID, lazily creating
// one under the driver's exclusive access if it doesn't exist yet.
func (d *Driver) entryFor(clientID uint16) *entry {
	d.registryMu.Lock()
	defer d.registryMu.Unlock()
	e, ok := d.registry[clientID]
	if !ok {
		e = &entry{ledger: ledger.New(ledger.NewAccount(clientID), d.store)}
		d.registry[clientID] = e
	}
	return e
}

// Run drains source in fixed-size batches, partitioning each batch by
// client and applying one client's events at a time on its own
// goroutine, joining all of a batch's work units before reading the
// next. A non-recoverable error aborts the run; recoverable errors are
// logged and their event is dropped.
func (d *Driver) Run(source EventSource) error {
	for {
		batch, fatalReadErr, done := d.readBatch(source)
		if fatalReadErr != nil {
			return fatalReadErr
		}
		if len(batch) > 0 {
			if err := d.runBatch(batch); err != nil {
				return err
			}
		}
		if done {
			return nil
		}
	}
}

// readBatch pulls up to d.batchSize events from source, logging and
// skipping recoverable per-row errors. It returns the collected batch,
// a non-nil error only for a fatal read failure, and done=true once the
// source is exhausted.
func (d *Driver) readBatch(source EventSource) (batch []dispatch.Event, fatalErr error, done bool) {
	for len(batch) < d.batchSize {
		event, err := source.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return batch, nil, true
			}
			if ledgererr.IsRecoverable(err) {
				d.log.Printf("skipping malformed input row: %v", err)
				continue
			}
			return batch, err, true
		}
		batch = append(batch, event)
	}
	return batch, nil, false
}

// runBatch groups batch by client_id (stable order preserved within each
// group), runs one goroutine per client, and waits for all of them.
func (d *Driver) runBatch(batch []dispatch.Event) error {
	groups := partitionByClient(batch)

	var wg sync.WaitGroup
	errs := make([]error, len(groups))
	i := 0
	for clientID, events := range groups {
		wg.Add(1)
		go func(i int, clientID uint16, events []dispatch.Event) {
			defer wg.Done()
			errs[i] = d.runClientGroup(clientID, events)
		}(i, clientID, events)
		i++
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// runClientGroup applies events sequentially against one client's
// ledger, holding that client's mutex for the whole group. A
// non-recoverable outcome stops the group and is returned to the
// driver; recoverable outcomes are logged and the event is dropped.
func (d *Driver) runClientGroup(clientID uint16, events []dispatch.Event) error {
	e := d.entryFor(clientID)
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, event := range events {
		if err := dispatch.Apply(e.ledger, event); err != nil {
			if ledgererr.IsNonRecoverable(err) {
				return err
			}
			d.log.Printf("client %d: dropping event tx=%d kind=%v: %v",
				clientID, event.TxID, event.Kind, err)
		}
	}
	return nil
}

// partitionByClient groups batch by client_id, preserving each client's
// relative order of events (stable partition).
func partitionByClient(batch []dispatch.Event) map[uint16][]dispatch.Event {
	groups := make(map[uint16][]dispatch.Event)
	for _, event := range batch {
		groups[event.ClientID] = append(groups[event.ClientID], event)
	}
	return groups
}

// Snapshots returns a reporting snapshot of every client account
// registered so far, acquiring each client's mutex in turn so the
// result reflects a fully-applied view of every account.
func (d *Driver) Snapshots() []ledger.Snapshot {
	d.registryMu.Lock()
	entries := make([]*entry, 0, len(d.registry))
	for _, e := range d.registry {
		entries = append(entries, e)
	}
	d.registryMu.Unlock()

	snapshots := make([]ledger.Snapshot, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		snapshots = append(snapshots, e.ledger.Account().Snapshot())
		e.mu.Unlock()
	}
	return snapshots
}
