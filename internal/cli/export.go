package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"finledger/internal/ledger"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the ledger as CSV" }
func (*exportCmd) Usage() string {
	return `finledger export [-o <file>]

  Writes the ledger as CSV, to stdout unless -o names a file.
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "", "Output file (default stdout).")
}

func (p *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		return fail(err)
	}
	defer a.close()

	txs, err := a.store.Load(ctx)
	if err != nil {
		return fail(err)
	}

	out := ledger.ToCSV(txs)
	if p.output == "" {
		fmt.Print(out)
		return subcommands.ExitSuccess
	}

	if err := os.WriteFile(p.output, []byte(out), 0644); err != nil {
		return fail(err)
	}
	fmt.Printf("exported %d transactions to %s\n", len(txs), p.output)
	return subcommands.ExitSuccess
}
