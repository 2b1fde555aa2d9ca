package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"finledger/internal/domain"
	"finledger/internal/ledger"
)

type deleteCmd struct {
	id  int64
	pos int
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove a transaction by id or position" }
func (*deleteCmd) Usage() string {
	return `finledger delete [-id <id> | -pos <position>]

  Removes one transaction, addressed either by its id or by its 1-based
  position as shown in list output.
`
}

func (p *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.id, "id", 0, "ID of the transaction to delete.")
	f.IntVar(&p.pos, "pos", 0, "1-based position of the transaction to delete.")
}

func (p *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if (p.id == 0) == (p.pos == 0) {
		return fail(fmt.Errorf("pass exactly one of -id or -pos"))
	}

	a, err := openApp(ctx)
	if err != nil {
		return fail(err)
	}
	defer a.close()

	var removed domain.Transaction
	_, err = a.store.Mutate(ctx, func(txs []domain.Transaction) ([]domain.Transaction, error) {
		var (
			next []domain.Transaction
			tx   domain.Transaction
			err  error
		)
		if p.id != 0 {
			next, tx, err = a.coord.DeleteByID(txs, p.id)
		} else {
			next, tx, err = a.coord.DeleteByPosition(txs, p.pos)
		}
		removed = tx
		return next, err
	})
	if err != nil {
		return fail(err)
	}

	fmt.Printf("deleted %d: %s %s (%s)\n",
		removed.ID, removed.Description, ledger.FormatCurrency(removed.Amount, a.currency), removed.Type)
	return subcommands.ExitSuccess
}
