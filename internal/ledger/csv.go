package ledger

import (
	"strings"

	"finledger/internal/domain"
)

const csvHeader = "Date,Description,Amount,Type"

// ToCSV renders the snapshot as CSV in original order. Descriptions are
// always double-quoted so embedded commas survive; embedded quotes are
// doubled per RFC 4180. Dates are calendar days in UTC.
func ToCSV(txs []domain.Transaction) string {
	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteByte('\n')
	for _, tx := range txs {
		b.WriteString(tx.CreatedAt.UTC().Format("2006-01-02"))
		b.WriteString(`,"`)
		b.WriteString(strings.ReplaceAll(tx.Description, `"`, `""`))
		b.WriteString(`",`)
		b.WriteString(tx.Amount.StringFixed(2))
		b.WriteByte(',')
		b.WriteString(string(tx.Type))
		b.WriteByte('\n')
	}
	return b.String()
}
