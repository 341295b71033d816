// Package accounts implements the HTTP client of the bank account API.
//
// Every failure is reported as an *Error, whatever its cause: the network,
// an unreadable or non JSON body, a non 2xx status or an "error" field sent
// by the server. Requests are attempted exactly once.
package accounts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/etnz/bank"
)

// DefaultBaseURL is the address of the account API when none is configured.
const DefaultBaseURL = "http://localhost:5000"

// collection is the path of the accounts resource.
const collection = "/api/accounts"

// Error is the uniform failure of the account API.
type Error struct {
	Message string
}

// Error returns the message unchanged, it is meant to be displayed.
func (e *Error) Error() string { return e.Message }

// errorf builds an *Error.
func errorf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// Client is an account API client.
type Client struct {
	base string
	http *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient makes the client send its requests through c. The transport
// of c is wrapped to log requests.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		hc := *c
		hc.Transport = logging(c.Transport)
		cl.http = &hc
	}
}

// New returns a client of the account API served at base, e.g.
// "http://localhost:5000".
func New(base string, opts ...Option) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	c := &Client{
		base: strings.TrimSuffix(base, "/"),
		http: &http.Client{Transport: logging(nil)},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// check that Client is what the bank client needs.
var _ bank.AccountClient = (*Client)(nil)

// CreateAccount registers a new account, form holds the registration fields.
func (c *Client) CreateAccount(ctx context.Context, form map[string]string) (*bank.Account, error) {
	body, err := json.Marshal(form)
	if err != nil {
		return nil, errorf("cannot encode account: %v", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+collection, bytes.NewReader(body))
	if err != nil {
		return nil, errorf("cannot create http request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.account(req)
}

// GetAccount fetches the account of user.
func (c *Client) GetAccount(ctx context.Context, user string) (*bank.Account, error) {
	addr := c.base + collection + "/" + url.PathEscape(user)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, errorf("cannot create http request: %v", err)
	}
	return c.account(req)
}

// account executes req and decodes the account in the response.
func (c *Client) account(req *http.Request) (*bank.Account, error) {
	data, err := jwdo(c.http, req)
	if err != nil {
		return nil, err
	}
	acc, err := bank.DecodeAccount(data)
	if err != nil {
		return nil, errorf("%v", err)
	}
	return acc, nil
}
