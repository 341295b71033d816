package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bank"
	"github.com/google/subcommands"
)

// registerCmd holds the flags for the 'register' subcommand, one per field
// of the registration form.
type registerCmd struct {
	user        string
	currency    string
	description string
	balance     string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create a new account and sign in" }
func (*registerCmd) Usage() string {
	return `bank register -user <user> [-currency <currency>] [-description <text>] [-balance <amount>]

  Creates a new account and shows its dashboard.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "user", "", "User name of the new account (required).")
	f.StringVar(&c.currency, "currency", "$", "Currency of the account.")
	f.StringVar(&c.description, "description", "", "Description of the account.")
	f.StringVar(&c.balance, "balance", "0", "Current balance of the account.")
}

// fields returns the registration form fields.
func (c *registerCmd) fields() map[string]string {
	return map[string]string{
		"user":        c.user,
		"currency":    c.currency,
		"description": c.description,
		"balance":     c.balance,
	}
}

func (c *registerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.user == "" {
		fmt.Fprintln(os.Stderr, "Error: -user is required")
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
	for name, value := range c.fields() {
		if err := cl.doc.SetFormValue(bank.RegisterForm, name, value); err != nil {
			fmt.Fprintf(os.Stderr, "Error filling the registration form: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	task, err := cl.app.Register(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return cl.exit(task.Wait())
}
