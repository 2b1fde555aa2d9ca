package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"finledger/internal/domain"
	"finledger/internal/ledger"
)

type addCmd struct {
	description string
	amount      string
	txType      string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new income or expense transaction" }
func (*addCmd) Usage() string {
	return `finledger add -d <description> -a <amount> -t <income|expense>

  Appends a transaction to the ledger. The amount is a positive decimal;
  direction is carried by the type.
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.description, "d", "", "Transaction description.")
	f.StringVar(&p.amount, "a", "", "Positive decimal amount.")
	f.StringVar(&p.txType, "t", "", "Transaction type: income or expense.")
}

func (p *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := decimal.NewFromString(p.amount)
	if err != nil {
		return fail(fmt.Errorf("invalid amount %q: %w", p.amount, err))
	}

	a, err := openApp(ctx)
	if err != nil {
		return fail(err)
	}
	defer a.close()

	var created domain.Transaction
	_, err = a.store.Mutate(ctx, func(txs []domain.Transaction) ([]domain.Transaction, error) {
		next, tx, err := a.coord.Add(txs, ledger.Input{
			Description: p.description,
			Amount:      amount,
			Type:        domain.Type(p.txType),
		})
		created = tx
		return next, err
	})
	if err != nil {
		return fail(err)
	}

	fmt.Printf("added %s %s (%s) id=%d\n",
		created.Description, ledger.FormatCurrency(created.Amount, a.currency), created.Type, created.ID)
	return subcommands.ExitSuccess
}
