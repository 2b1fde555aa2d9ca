package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"finledger/internal/domain"
)

func sample() []domain.Transaction {
	return []domain.Transaction{
		{
			ID:          1718447400000,
			Description: "Salary",
			Amount:      decimal.NewFromInt(1000),
			Type:        domain.Income,
			CreatedAt:   time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:          1718447400001,
			Description: "Rent, downtown",
			Amount:      decimal.NewFromFloat(400.25),
			Type:        domain.Expense,
			CreatedAt:   time.Date(2025, 6, 15, 10, 31, 0, 0, time.UTC),
		},
	}
}

func assertEqual(t *testing.T, got, want []domain.Transaction) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d transactions; want %d", len(got), len(want))
	}
	for i := range want {
		g, w := got[i], want[i]
		if g.ID != w.ID || g.Description != w.Description || g.Type != w.Type {
			t.Errorf("[%d] got %+v; want %+v", i, g, w)
		}
		if !g.Amount.Equal(w.Amount) {
			t.Errorf("[%d] amount = %s; want %s", i, g.Amount, w.Amount)
		}
		if !g.CreatedAt.Equal(w.CreatedAt) {
			t.Errorf("[%d] created_at = %s; want %s", i, g.CreatedAt, w.CreatedAt)
		}
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	txs, err := m.Load(ctx)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if len(txs) != 0 {
		t.Fatalf("fresh store not empty: %d", len(txs))
	}

	if err := m.Save(ctx, sample()); err != nil {
		t.Fatalf("save: %v", err)
	}
	txs, err = m.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	assertEqual(t, txs, sample())

	// loaded snapshot is a copy, mutating it must not reach the store
	txs[0].Description = "tampered"
	again, _ := m.Load(ctx)
	if again[0].Description != "Salary" {
		t.Fatalf("loaded snapshot aliases store state")
	}
}

func TestJSONFileRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ledger.json")
	s := NewJSONFile(path)

	txs, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load missing file: %v", err)
	}
	if len(txs) != 0 {
		t.Fatalf("missing file should read as empty ledger")
	}

	if err := s.Save(ctx, sample()); err != nil {
		t.Fatalf("save: %v", err)
	}
	txs, err = s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	assertEqual(t, txs, sample())
}

func TestJSONFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := NewJSONFile(path).Load(context.Background())
	var serr *StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("err = %v; want StorageError", err)
	}
	if serr.Op != "load" {
		t.Errorf("Op = %q; want load", serr.Op)
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if err := s.Save(ctx, sample()); err != nil {
		t.Fatalf("save: %v", err)
	}
	txs, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	assertEqual(t, txs, sample())

	// replace-all semantics: saving a shorter snapshot drops the rest
	if err := s.Save(ctx, sample()[:1]); err != nil {
		t.Fatalf("save shorter: %v", err)
	}
	txs, _ = s.Load(ctx)
	assertEqual(t, txs, sample()[:1])
}

func TestGuardedMutate(t *testing.T) {
	ctx := context.Background()
	g := Guard(NewMemory())

	next, err := g.Mutate(ctx, func(txs []domain.Transaction) ([]domain.Transaction, error) {
		return append(txs, sample()[0]), nil
	})
	if err != nil {
		t.Fatalf("mutate: %v", err)
	}
	if len(next) != 1 {
		t.Fatalf("mutate returned %d transactions; want 1", len(next))
	}

	persisted, _ := g.Load(ctx)
	assertEqual(t, persisted, next)
}

func TestGuardedMutateErrorLeavesStore(t *testing.T) {
	ctx := context.Background()
	g := Guard(NewMemory())
	if _, err := g.Mutate(ctx, func(txs []domain.Transaction) ([]domain.Transaction, error) {
		return append(txs, sample()[0]), nil
	}); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")
	_, err := g.Mutate(ctx, func(txs []domain.Transaction) ([]domain.Transaction, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v; want the fn error verbatim", err)
	}

	persisted, _ := g.Load(ctx)
	if len(persisted) != 1 {
		t.Fatalf("failed mutation changed the store: %d transactions", len(persisted))
	}
}
