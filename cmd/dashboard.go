package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bank"
	"github.com/google/subcommands"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show the balance and transactions of the account" }
func (*dashboardCmd) Usage() string {
	return `bank dashboard

  Refreshes the signed in account and shows its dashboard. Shows the login
  view when nobody is signed in.
`
}

func (*dashboardCmd) SetFlags(f *flag.FlagSet) {}

func (*dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return open(ctx, bank.DashboardPath)
}

type openCmd struct{}

func (*openCmd) Name() string     { return "open" }
func (*openCmd) Synopsis() string { return "show the view at a path" }
func (*openCmd) Usage() string {
	return `bank open <path>

  Shows the view at <path>, as the web client would when loading it.
`
}

func (*openCmd) SetFlags(f *flag.FlagSet) {}

func (*openCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: open requires exactly one path")
		return subcommands.ExitUsageError
	}
	return open(ctx, f.Arg(0))
}

// open starts a client at path and shows the resulting view.
func open(ctx context.Context, path string) subcommands.ExitStatus {
	ctx, cancel := commandContext(ctx)
	defer cancel()

	cl, err := newClient(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer cl.release()

	return cl.exit(cl.start(ctx))
}
