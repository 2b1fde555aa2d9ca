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

type updateCmd struct {
	id          int64
	description string
	amount      string
	txType      string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "change fields of an existing transaction" }
func (*updateCmd) Usage() string {
	return `finledger update -id <id> [-d <description>] [-a <amount>] [-t <income|expense>]

  Updates only the supplied fields. The id and creation time never change.
`
}

func (p *updateCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.id, "id", 0, "ID of the transaction to update.")
	f.StringVar(&p.description, "d", "", "New description.")
	f.StringVar(&p.amount, "a", "", "New positive decimal amount.")
	f.StringVar(&p.txType, "t", "", "New type: income or expense.")
}

func (p *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// only flags the user actually set become part of the patch
	var patch ledger.Patch
	var parseErr error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "d":
			patch.Description = &p.description
		case "a":
			amount, err := decimal.NewFromString(p.amount)
			if err != nil {
				parseErr = fmt.Errorf("invalid amount %q: %w", p.amount, err)
				return
			}
			patch.Amount = &amount
		case "t":
			typ := domain.Type(p.txType)
			patch.Type = &typ
		}
	})
	if parseErr != nil {
		return fail(parseErr)
	}
	if patch.Description == nil && patch.Amount == nil && patch.Type == nil {
		return fail(fmt.Errorf("nothing to update: pass at least one of -d, -a, -t"))
	}

	a, err := openApp(ctx)
	if err != nil {
		return fail(err)
	}
	defer a.close()

	var updated domain.Transaction
	_, err = a.store.Mutate(ctx, func(txs []domain.Transaction) ([]domain.Transaction, error) {
		next, tx, err := a.coord.Update(txs, p.id, patch)
		updated = tx
		return next, err
	})
	if err != nil {
		return fail(err)
	}

	fmt.Printf("updated %d: %s %s (%s)\n",
		updated.ID, updated.Description, ledger.FormatCurrency(updated.Amount, a.currency), updated.Type)
	return subcommands.ExitSuccess
}
