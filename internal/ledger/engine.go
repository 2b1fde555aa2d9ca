package ledger

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"finledger/internal/domain"
)

// DefaultRecentLimit is used by adapters when the caller gives no usable limit.
const DefaultRecentLimit = 10

// Summary holds the type-partitioned totals of a snapshot.
type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Balance returns income minus expense over the snapshot. The fold is
// order-independent.
func Balance(txs []domain.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, tx := range txs {
		if tx.Type == domain.Income {
			balance = balance.Add(tx.Amount)
		} else {
			balance = balance.Sub(tx.Amount)
		}
	}
	return balance
}

// Totals sums amounts partitioned by type. Balance(txs) equals
// Totals(txs).Income - Totals(txs).Expense.
func Totals(txs []domain.Transaction) Summary {
	s := Summary{Income: decimal.Zero, Expense: decimal.Zero}
	for _, tx := range txs {
		if tx.Type == domain.Income {
			s.Income = s.Income.Add(tx.Amount)
		} else {
			s.Expense = s.Expense.Add(tx.Amount)
		}
	}
	return s
}

// Search returns the transactions whose description contains query,
// case-insensitively, preserving order. An empty query matches everything.
func Search(txs []domain.Transaction, query string) []domain.Transaction {
	query = strings.ToLower(query)
	result := []domain.Transaction{}
	for _, tx := range txs {
		if query == "" || strings.Contains(strings.ToLower(tx.Description), query) {
			result = append(result, tx)
		}
	}
	return result
}

// Recent returns the last limit transactions in original order.
func Recent(txs []domain.Transaction, limit int) []domain.Transaction {
	if limit <= 0 {
		return []domain.Transaction{}
	}
	if limit >= len(txs) {
		limit = len(txs)
	}
	return txs[len(txs)-limit:]
}

// FormatCurrency renders amount with the display symbol for the given
// currency code, fixed to two decimals. Supported codes are USD, EUR and
// INR; anything else falls back to the dollar symbol. Display only, never
// a conversion.
func FormatCurrency(amount decimal.Decimal, code string) string {
	switch code {
	case money.USD, money.EUR, money.INR:
	default:
		code = money.USD
	}
	return money.GetCurrency(code).Grapheme + amount.StringFixed(2)
}
