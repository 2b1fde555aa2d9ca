package store

import (
	"context"
	"slices"
	"sync"

	"finledger/internal/domain"
)

// Memory keeps the ledger in process memory. Used by tests and as the
// transient backend; everything is lost on exit.
type Memory struct {
	mu  sync.RWMutex
	txs []domain.Transaction
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(ctx context.Context) ([]domain.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.txs), nil
}

func (m *Memory) Save(ctx context.Context, txs []domain.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.txs = slices.Clone(txs)
	return nil
}
