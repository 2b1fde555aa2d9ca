package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"finledger/internal/domain"
)

// JSONFile persists the ledger as a JSON snapshot on disk. Saves are
// atomic: the snapshot is written to a temp file and renamed over the
// old one, so a crash mid-write never corrupts the ledger.
type JSONFile struct {
	path string
}

func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

func (s *JSONFile) Load(ctx context.Context) ([]domain.Transaction, error) {
	f, err := os.Open(s.path)
	if err != nil {
		// a ledger that was never written yet is empty, not broken
		if errors.Is(err, os.ErrNotExist) {
			return []domain.Transaction{}, nil
		}
		return nil, &StorageError{Op: "load", Err: err}
	}
	defer f.Close()

	var txs []domain.Transaction
	if err := json.NewDecoder(f).Decode(&txs); err != nil {
		return nil, &StorageError{Op: "load", Err: err}
	}
	return txs, nil
}

func (s *JSONFile) Save(ctx context.Context, txs []domain.Transaction) error {
	if txs == nil {
		txs = []domain.Transaction{}
	}

	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return &StorageError{Op: "save", Err: err}
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(txs); err != nil {
		f.Close()
		return &StorageError{Op: "save", Err: err}
	}
	if err := f.Close(); err != nil {
		return &StorageError{Op: "save", Err: err}
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	return nil
}
