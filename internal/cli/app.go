// Package cli implements the command-line application over the ledger.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"

	"finledger/internal/config"
	"finledger/internal/domain"
	"finledger/internal/ledger"
	"finledger/internal/store"
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&listCmd{}, "ledger")
	c.Register(&addCmd{}, "ledger")
	c.Register(&updateCmd{}, "ledger")
	c.Register(&deleteCmd{}, "ledger")
	c.Register(&summaryCmd{}, "ledger")
	c.Register(&exportCmd{}, "ledger")
	c.Register(&menuCmd{}, "ledger")
}

// app bundles what every command needs: the guarded store, the mutation
// coordinator and the display currency.
type app struct {
	store    *store.Guarded
	coord    *ledger.Coordinator
	currency string
	cleanup  func()
}

func openApp(ctx context.Context) (*app, error) {
	cfg := config.Load()
	backend, cleanup, err := store.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &app{
		store:    store.Guard(backend),
		coord:    ledger.NewCoordinator(),
		currency: cfg.Currency,
		cleanup:  cleanup,
	}, nil
}

func (a *app) close() { a.cleanup() }

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, err)
	return subcommands.ExitFailure
}

// printTable renders transactions with 1-based positions, the addressing
// the delete -pos flag and the menu use.
func printTable(txs []domain.Transaction, currency string) {
	writeTable(os.Stdout, txs, currency)
}

func writeTable(out io.Writer, txs []domain.Transaction, currency string) {
	if len(txs) == 0 {
		fmt.Fprintln(out, "no transactions")
		return
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tID\tDATE\tDESCRIPTION\tAMOUNT\tTYPE")
	for i, tx := range txs {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\n",
			i+1, tx.ID, tx.CreatedAt.Format("2006-01-02"),
			tx.Description, ledger.FormatCurrency(tx.Amount, currency), tx.Type)
	}
	w.Flush()
}
