// Package cmd implements the CLI application of the bank client.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/etnz/bank"
	"github.com/etnz/bank/accounts"
	"github.com/etnz/bank/dom"
	"github.com/etnz/bank/renderer"
	"github.com/etnz/bank/storage"
	"github.com/google/subcommands"
)

// Commands are all the subcommands of the bank client.
var Commands = []subcommands.Command{
	&registerCmd{},
	&loginCmd{},
	&logoutCmd{},
	&dashboardCmd{},
	&openCmd{},
	&chartCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		group := "account"
		if cmd.Name() == "topic" {
			group = "help"
		}
		c.Register(cmd, group)
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var apiURL = flag.String("api", "", "Base URL of the account API (default $BANK_API_URL or "+accounts.DefaultBaseURL+")")
var storageDir = flag.String("storage-dir", "", "Folder of the saved session (default the system temporary folder)")
var redisURL = flag.String("redis", "", "URL of a Redis server keeping the saved session, replaces -storage-dir")
var format = flag.String("format", "markdown", "Output format: markdown, text or html")
var timeout = flag.Duration("timeout", 10*time.Second, "Timeout of a command, 0 for none")

// Formats are the values of the -format flag.
var Formats = []string{"markdown", "text", "html"}

// baseURL returns the account API URL, from the flag or the environment.
func baseURL() string {
	if *apiURL != "" {
		return *apiURL
	}
	if u := os.Getenv("BANK_API_URL"); u != "" {
		return u
	}
	return accounts.DefaultBaseURL
}

// client is a bank client running in the terminal.
type client struct {
	doc   *dom.Document
	app   *bank.App
	close func() error
}

// openStorage returns the storage of the saved session selected by the flags.
func openStorage() (bank.Storage, func() error, error) {
	if *redisURL == "" {
		return storage.Dir(*storageDir), func() error { return nil }, nil
	}
	r, err := storage.NewRedis(*redisURL)
	if err != nil {
		return nil, nil, err
	}
	return r, r.Close, nil
}

// newClient returns a client whose current location is path, on the saved session.
func newClient(path string) (*client, error) {
	s, closer, err := openStorage()
	if err != nil {
		return nil, err
	}
	doc := dom.Default()
	app := bank.New(doc, bank.NewMemoryHistory(path), s, accounts.New(baseURL()))
	return &client{doc: doc, app: app, close: closer}, nil
}

// release closes the storage, failures are only logged.
func (c *client) release() {
	if err := c.close(); err != nil {
		log.Printf("cannot close storage: %v", err)
	}
}

// start restores the saved session and renders the current location.
func (c *client) start(ctx context.Context) error {
	return c.app.Start(ctx).Wait()
}

// commandContext returns a context bounded by the -timeout flag.
func commandContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if *timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, *timeout)
}

// show prints the view mounted in the document, in the -format format.
func (c *client) show(w io.Writer) error {
	switch *format {
	case "html":
		if err := c.doc.Render(w); err != nil {
			return fmt.Errorf("cannot render document: %w", err)
		}
		fmt.Fprintln(w)
		return nil
	case "markdown", "text":
	default:
		return fmt.Errorf("unknown format %q, want one of %v", *format, Formats)
	}

	acc := c.app.State().Account
	if _, err := c.doc.Text(bank.Transactions); err == nil && acc != nil {
		if *format == "text" {
			renderer.DashboardText(w, acc)
			return nil
		}
		printMarkdown(w, renderer.DashboardMarkdown(acc))
		return nil
	}

	loginError, _ := c.doc.Text(bank.LoginError)
	md := renderer.LoginMarkdown(loginError)
	if *format == "text" {
		fmt.Fprint(w, md)
		return nil
	}
	printMarkdown(w, md)
	return nil
}

// exit shows the current view and returns the exit status of a command that
// ended with err.
func (c *client) exit(err error) subcommands.ExitStatus {
	if serr := c.show(os.Stdout); serr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", serr)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
