package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bank"
	"github.com/etnz/bank/renderer"
	"github.com/google/subcommands"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	output string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "draw the transactions of the account" }
func (*chartCmd) Usage() string {
	return `bank chart [-o <file.png>]

  Refreshes the signed in account and draws its transactions as a PNG bar
  chart.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "transactions.png", "Path of the PNG file to write.")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx, cancel := commandContext(ctx)
	defer cancel()

	cl, err := newClient(bank.DashboardPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer cl.release()

	if err := cl.start(ctx); err != nil {
		return cl.exit(err)
	}
	acc := cl.app.State().Account
	if acc == nil {
		return cl.exit(errors.New("nobody is signed in"))
	}

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating chart file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := renderer.TransactionsChart(out, acc); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Chart of %d transactions saved to: %s\n", len(acc.Transactions), c.output)
	return subcommands.ExitSuccess
}
