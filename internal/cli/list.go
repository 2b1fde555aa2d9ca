package cli

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"finledger/internal/ledger"
)

type listCmd struct {
	query string
	limit int
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list transactions, optionally filtered" }
func (*listCmd) Usage() string {
	return `finledger list [-q <query>] [-n <limit>]

  Prints the ledger in insertion order. -q filters by case-insensitive
  substring match on the description; -n keeps only the last n entries.
`
}

func (p *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.query, "q", "", "Filter by description substring (case-insensitive).")
	f.IntVar(&p.limit, "n", 0, "Show only the last n transactions (0 shows all).")
}

func (p *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		return fail(err)
	}
	defer a.close()

	txs, err := a.store.Load(ctx)
	if err != nil {
		return fail(err)
	}

	txs = ledger.Search(txs, p.query)
	if p.limit > 0 {
		txs = ledger.Recent(txs, p.limit)
	}

	printTable(txs, a.currency)
	return subcommands.ExitSuccess
}
