package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"finledger/internal/domain"
	"finledger/internal/ledger"
)

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "interactive menu over the ledger" }
func (*menuCmd) Usage() string {
	return `finledger menu

  Runs a numbered menu on the terminal. One prompt is active at a time;
  each choice completes fully before the menu is shown again.
`
}

func (*menuCmd) SetFlags(*flag.FlagSet) {}

func (*menuCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		return fail(err)
	}
	defer a.close()

	if err := runMenu(ctx, a, os.Stdin, os.Stdout); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

// runMenu is the sequential menu loop: read one choice, run it to
// completion, repeat. It returns when the user quits or input ends.
func runMenu(ctx context.Context, a *app, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, `
==== finledger ====
1) list transactions
2) add transaction
3) delete by position
4) search
5) recent
6) summary
0) quit
choose: `)
		choice, ok := readLine(sc)
		if !ok || choice == "0" {
			fmt.Fprintln(out, "bye")
			return nil
		}

		var err error
		switch choice {
		case "1":
			err = menuList(ctx, a, out)
		case "2":
			err = menuAdd(ctx, a, sc, out)
		case "3":
			err = menuDelete(ctx, a, sc, out)
		case "4":
			err = menuSearch(ctx, a, sc, out)
		case "5":
			err = menuRecent(ctx, a, sc, out)
		case "6":
			err = menuSummary(ctx, a, out)
		default:
			fmt.Fprintln(out, "unknown choice")
			continue
		}
		if err != nil {
			fmt.Fprintln(out, "error:", err)
		}
	}
}

func readLine(sc *bufio.Scanner) (string, bool) {
	if !sc.Scan() {
		return "", false
	}
	return sc.Text(), true
}

func prompt(sc *bufio.Scanner, out io.Writer, label string) (string, bool) {
	fmt.Fprint(out, label)
	return readLine(sc)
}

func menuList(ctx context.Context, a *app, out io.Writer) error {
	txs, err := a.store.Load(ctx)
	if err != nil {
		return err
	}
	writeTable(out, txs, a.currency)
	return nil
}

func menuAdd(ctx context.Context, a *app, sc *bufio.Scanner, out io.Writer) error {
	desc, ok := prompt(sc, out, "description: ")
	if !ok {
		return nil
	}
	amountStr, ok := prompt(sc, out, "amount: ")
	if !ok {
		return nil
	}
	typ, ok := prompt(sc, out, "type (income/expense): ")
	if !ok {
		return nil
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return fmt.Errorf("invalid amount %q", amountStr)
	}

	var created domain.Transaction
	_, err = a.store.Mutate(ctx, func(txs []domain.Transaction) ([]domain.Transaction, error) {
		next, tx, err := a.coord.Add(txs, ledger.Input{Description: desc, Amount: amount, Type: domain.Type(typ)})
		created = tx
		return next, err
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "added %s %s (%s)\n", created.Description, ledger.FormatCurrency(created.Amount, a.currency), created.Type)
	return nil
}

func menuDelete(ctx context.Context, a *app, sc *bufio.Scanner, out io.Writer) error {
	posStr, ok := prompt(sc, out, "position to delete: ")
	if !ok {
		return nil
	}
	pos, err := strconv.Atoi(posStr)
	if err != nil {
		return fmt.Errorf("invalid position %q", posStr)
	}

	var removed domain.Transaction
	_, err = a.store.Mutate(ctx, func(txs []domain.Transaction) ([]domain.Transaction, error) {
		next, tx, err := a.coord.DeleteByPosition(txs, pos)
		removed = tx
		return next, err
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "deleted %s %s (%s)\n", removed.Description, ledger.FormatCurrency(removed.Amount, a.currency), removed.Type)
	return nil
}

func menuSearch(ctx context.Context, a *app, sc *bufio.Scanner, out io.Writer) error {
	query, ok := prompt(sc, out, "search for: ")
	if !ok {
		return nil
	}
	txs, err := a.store.Load(ctx)
	if err != nil {
		return err
	}
	writeTable(out, ledger.Search(txs, query), a.currency)
	return nil
}

func menuRecent(ctx context.Context, a *app, sc *bufio.Scanner, out io.Writer) error {
	limitStr, ok := prompt(sc, out, "how many (default 10): ")
	if !ok {
		return nil
	}
	limit := ledger.DefaultRecentLimit
	if n, err := strconv.Atoi(limitStr); err == nil {
		limit = n
	}

	txs, err := a.store.Load(ctx)
	if err != nil {
		return err
	}
	writeTable(out, ledger.Recent(txs, limit), a.currency)
	return nil
}

func menuSummary(ctx context.Context, a *app, out io.Writer) error {
	txs, err := a.store.Load(ctx)
	if err != nil {
		return err
	}
	totals := ledger.Totals(txs)
	fmt.Fprintf(out, "transactions: %d\n", len(txs))
	fmt.Fprintf(out, "income:  %s\n", ledger.FormatCurrency(totals.Income, a.currency))
	fmt.Fprintf(out, "expense: %s\n", ledger.FormatCurrency(totals.Expense, a.currency))
	fmt.Fprintf(out, "balance: %s\n", ledger.FormatCurrency(totals.Income.Sub(totals.Expense), a.currency))
	return nil
}
