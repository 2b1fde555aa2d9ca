package ledger

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"finledger/internal/domain"
)

// Input is the caller-supplied part of a new transaction.
type Input struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        domain.Type     `json:"type"`
}

// Patch holds the fields an update may change. Nil means leave as is.
type Patch struct {
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Type        *domain.Type     `json:"type"`
}

// Coordinator applies mutations to ledger snapshots. It never modifies a
// snapshot in place; every operation returns a fresh slice.
type Coordinator struct {
	now func() time.Time
}

func NewCoordinator() *Coordinator {
	return &Coordinator{now: time.Now}
}

// Add validates in, stamps a fresh id and creation time, and appends the
// new transaction. The snapshot is returned unchanged on failure.
func (c *Coordinator) Add(snapshot []domain.Transaction, in Input) ([]domain.Transaction, domain.Transaction, error) {
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return snapshot, domain.Transaction{}, &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if !in.Amount.IsPositive() {
		return snapshot, domain.Transaction{}, &ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}
	if !in.Type.Valid() {
		return snapshot, domain.Transaction{}, &ValidationError{Field: "type", Reason: "must be income or expense"}
	}

	now := c.now()
	tx := domain.Transaction{
		ID:          c.nextID(snapshot, now),
		Description: desc,
		Amount:      in.Amount,
		Type:        in.Type,
		CreatedAt:   now,
	}
	return append(slices.Clone(snapshot), tx), tx, nil
}

// nextID derives an id from the creation instant in milliseconds. If the
// derived id is already taken it is incremented until unique, so ids stay
// unique even under rapid successive creation and are never reused after
// a delete.
func (c *Coordinator) nextID(snapshot []domain.Transaction, now time.Time) int64 {
	id := now.UnixMilli()
	for idTaken(snapshot, id) {
		id++
	}
	return id
}

func idTaken(snapshot []domain.Transaction, id int64) bool {
	return slices.ContainsFunc(snapshot, func(tx domain.Transaction) bool {
		return tx.ID == id
	})
}

// Update merges the supplied fields into the transaction with the given id,
// re-validating each changed field under the same rules as Add. ID and
// CreatedAt are never altered.
func (c *Coordinator) Update(snapshot []domain.Transaction, id int64, patch Patch) ([]domain.Transaction, domain.Transaction, error) {
	i := slices.IndexFunc(snapshot, func(tx domain.Transaction) bool {
		return tx.ID == id
	})
	if i < 0 {
		return snapshot, domain.Transaction{}, &NotFoundError{ID: id}
	}

	tx := snapshot[i]
	if patch.Description != nil {
		desc := strings.TrimSpace(*patch.Description)
		if desc == "" {
			return snapshot, domain.Transaction{}, &ValidationError{Field: "description", Reason: "must not be empty"}
		}
		tx.Description = desc
	}
	if patch.Amount != nil {
		if !patch.Amount.IsPositive() {
			return snapshot, domain.Transaction{}, &ValidationError{Field: "amount", Reason: "must be greater than zero"}
		}
		tx.Amount = *patch.Amount
	}
	if patch.Type != nil {
		if !patch.Type.Valid() {
			return snapshot, domain.Transaction{}, &ValidationError{Field: "type", Reason: "must be income or expense"}
		}
		tx.Type = *patch.Type
	}

	out := slices.Clone(snapshot)
	out[i] = tx
	return out, tx, nil
}

// DeleteByID removes the transaction with the given id and returns both the
// new snapshot and the removed record.
func (c *Coordinator) DeleteByID(snapshot []domain.Transaction, id int64) ([]domain.Transaction, domain.Transaction, error) {
	i := slices.IndexFunc(snapshot, func(tx domain.Transaction) bool {
		return tx.ID == id
	})
	if i < 0 {
		return snapshot, domain.Transaction{}, &NotFoundError{ID: id}
	}
	return removeAt(snapshot, i), snapshot[i], nil
}

// DeleteByPosition removes the transaction at a 1-based position, the
// addressing mode used by position-oriented interfaces like the CLI menu.
func (c *Coordinator) DeleteByPosition(snapshot []domain.Transaction, pos int) ([]domain.Transaction, domain.Transaction, error) {
	if pos < 1 || pos > len(snapshot) {
		return snapshot, domain.Transaction{}, &OutOfRangeError{Index: pos, Length: len(snapshot)}
	}
	return removeAt(snapshot, pos-1), snapshot[pos-1], nil
}

func removeAt(snapshot []domain.Transaction, i int) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(snapshot)-1)
	out = append(out, snapshot[:i]...)
	return append(out, snapshot[i+1:]...)
}
