package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bank"
	"github.com/google/subcommands"
)

type loginCmd struct{}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "sign in with an existing account" }
func (*loginCmd) Usage() string {
	return `bank login <user>

  Fetches the account of <user>, saves it for the next runs and shows its
  dashboard.
`
}

func (*loginCmd) SetFlags(f *flag.FlagSet) {}

func (*loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: login requires exactly one user")
		return subcommands.ExitUsageError
	}
	ctx, cancel := commandContext(ctx)
	defer cancel()

	cl, err := newClient(bank.LoginPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer cl.release()

	if err := cl.start(ctx); err != nil {
		return cl.exit(err)
	}
	if err := cl.doc.SetFormValue(bank.LoginForm, "user", f.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error filling the login form: %v\n", err)
		return subcommands.ExitFailure
	}

	task, err := cl.app.Login(ctx)
	if err != nil {
		// the login view displays the error.
		return cl.exit(err)
	}
	return cl.exit(task.Wait())
}

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "forget the signed in account" }
func (*logoutCmd) Usage() string {
	return `bank logout

  Forgets the signed in account and its saved session.
`
}

func (*logoutCmd) SetFlags(f *flag.FlagSet) {}

func (*logoutCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx, cancel := commandContext(ctx)
	defer cancel()

	cl, err := newClient(bank.LoginPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer cl.release()

	if err := cl.start(ctx); err != nil {
		return cl.exit(err)
	}
	return cl.exit(cl.app.Logout(ctx).Wait())
}
