package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// amounts serialize as plain JSON numbers, matching the public API shape
	decimal.MarshalJSONWithoutQuotes = true
}

// Type is the direction of a transaction. The sign of a transaction is
// carried here, never by a negative amount.
type Type string

const (
	Income  Type = "income"
	Expense Type = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t Type) Valid() bool {
	return t == Income || t == Expense
}

// Transaction is a single income or expense entry in the ledger.
// ID and CreatedAt are stamped at creation and never change afterwards.
type Transaction struct {
	ID          int64           `db:"id" json:"id"`
	Description string          `db:"description" json:"description"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	Type        Type            `db:"type" json:"type"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
}
