package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"finledger/internal/ledger"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show income, expense and balance totals" }
func (*summaryCmd) Usage() string {
	return `finledger summary

  Prints the aggregate figures of the ledger.
`
}

func (*summaryCmd) SetFlags(*flag.FlagSet) {}

func (*summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		return fail(err)
	}
	defer a.close()

	txs, err := a.store.Load(ctx)
	if err != nil {
		return fail(err)
	}

	totals := ledger.Totals(txs)
	fmt.Printf("transactions: %d\n", len(txs))
	fmt.Printf("income:       %s\n", ledger.FormatCurrency(totals.Income, a.currency))
	fmt.Printf("expense:      %s\n", ledger.FormatCurrency(totals.Expense, a.currency))
	fmt.Printf("balance:      %s\n", ledger.FormatCurrency(totals.Income.Sub(totals.Expense), a.currency))
	return subcommands.ExitSuccess
}
