// Package store is the persistence boundary of the ledger. A Store holds
// the ordered transaction sequence and knows nothing about the operations
// performed on it; the engine and coordinator work on snapshots only.
package store

import (
	"context"
	"sync"

	"finledger/internal/domain"
)

// Store loads and replaces the full ledger snapshot. Implementations must
// preserve insertion order across load/save cycles.
type Store interface {
	Load(ctx context.Context) ([]domain.Transaction, error)
	Save(ctx context.Context, txs []domain.Transaction) error
}

// StorageError wraps a backend load/save failure.
type StorageError struct {
	Op  string // "load" or "save"
	Err error
}

func (e *StorageError) Error() string {
	return "storage " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error { return e.Err }

// Guarded serializes load-modify-save sequences on a Store so that each
// mutating request sees the previous one fully persisted. Reads go straight
// through.
type Guarded struct {
	mu sync.Mutex
	s  Store
}

func Guard(s Store) *Guarded {
	return &Guarded{s: s}
}

func (g *Guarded) Load(ctx context.Context) ([]domain.Transaction, error) {
	return g.s.Load(ctx)
}

// Mutate loads the current snapshot, applies fn and persists the result as
// one step. A failing fn leaves the store untouched and its error is
// returned verbatim, so typed ledger errors survive for the caller.
func (g *Guarded) Mutate(ctx context.Context, fn func([]domain.Transaction) ([]domain.Transaction, error)) ([]domain.Transaction, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	txs, err := g.s.Load(ctx)
	if err != nil {
		return nil, err
	}
	next, err := fn(txs)
	if err != nil {
		return nil, err
	}
	if err := g.s.Save(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}
