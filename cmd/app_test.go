package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/etnz/bank"
	"github.com/google/subcommands"
)

// serve starts an account API knowing alice1, and points the flags to it.
func serve(t *testing.T) {
	t.Helper()
	var mu sync.Mutex
	accounts := map[string][]byte{
		"alice1": []byte(`{"user":"alice1","description":"Checking","balance":100,"currency":"USD",` +
			`"transactions":[{"date":"2024-01-01","object":"Coffee","amount":-3.5}]}`),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/accounts/{user}", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		data, ok := accounts[r.PathValue("user")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "User not found"})
			return
		}
		w.Write(data)
	})
	mux.HandleFunc("POST /api/accounts", func(w http.ResponseWriter, r *http.Request) {
		var form map[string]string
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil || form["user"] == "" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"Missing required fields"}`))
			return
		}
		user := form["user"] + "1"
		data, _ := json.Marshal(map[string]any{
			"user": user, "description": form["description"],
			"balance": form["balance"], "currency": form["currency"], "transactions": []any{},
		})
		mu.Lock()
		accounts[user] = data
		mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		w.Write(data)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	set := func(p *string, v string) {
		old := *p
		*p = v
		t.Cleanup(func() { *p = old })
	}
	set(apiURL, server.URL)
	set(storageDir, t.TempDir())
	set(format, "text")
}

func execute(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("%s %v: %v", c.Name(), args, err)
	}
	return c.Execute(context.Background(), f)
}

func saved(t *testing.T) bool {
	t.Helper()
	_, err := os.Stat(filepath.Join(*storageDir, "bank-"+bank.StorageKey+".json"))
	return err == nil
}

func dashboard(t *testing.T) string {
	t.Helper()
	cl, err := newClient(bank.DashboardPath)
	if err != nil {
		t.Fatalf("newClient() unexpected error: %v", err)
	}
	defer cl.release()
	if err := cl.start(context.Background()); err != nil {
		t.Fatalf("start() unexpected error: %v", err)
	}
	var b strings.Builder
	if err := cl.show(&b); err != nil {
		t.Fatalf("show() unexpected error: %v", err)
	}
	return b.String()
}

func TestBaseURL(t *testing.T) {
	t.Setenv("BANK_API_URL", "http://bank.example.com")
	if got := baseURL(); got != "http://bank.example.com" {
		t.Errorf("baseURL() = %q, want the environment value", got)
	}
	old := *apiURL
	*apiURL = "http://flag.example.com"
	defer func() { *apiURL = old }()
	if got := baseURL(); got != "http://flag.example.com" {
		t.Errorf("baseURL() = %q, want the flag value", got)
	}
}

func TestLoginLogout(t *testing.T) {
	serve(t)

	if got := execute(t, &loginCmd{}, "nobody"); got != subcommands.ExitFailure {
		t.Errorf("login nobody = %v, want ExitFailure", got)
	}
	if saved(t) {
		t.Errorf("a failed login saved a session")
	}

	if got := execute(t, &loginCmd{}, "alice1"); got != subcommands.ExitSuccess {
		t.Fatalf("login alice1 = %v, want ExitSuccess", got)
	}
	if !saved(t) {
		t.Errorf("login did not save the session")
	}
	got := dashboard(t)
	for _, want := range []string{"Checking (alice1)", "$100.00", "Coffee", "-3.50"} {
		if !strings.Contains(got, want) {
			t.Errorf("dashboard does not contain %q:\n%s", want, got)
		}
	}

	if got := execute(t, &logoutCmd{}); got != subcommands.ExitSuccess {
		t.Fatalf("logout = %v, want ExitSuccess", got)
	}
	if saved(t) {
		t.Errorf("logout did not remove the session")
	}
	if got := dashboard(t); !strings.Contains(got, "## Login") {
		t.Errorf("dashboard after logout should show the login view:\n%s", got)
	}
}

func TestRegisterCommand(t *testing.T) {
	serve(t)

	if got := execute(t, &registerCmd{}); got != subcommands.ExitUsageError {
		t.Errorf("register without -user = %v, want ExitUsageError", got)
	}
	if got := execute(t, &registerCmd{}, "-user", "bob", "-currency", "EUR", "-balance", "12.5"); got != subcommands.ExitSuccess {
		t.Fatalf("register = %v, want ExitSuccess", got)
	}
	if !saved(t) {
		t.Errorf("register did not save the session")
	}
	if got := dashboard(t); !strings.Contains(got, "(bob1)") || !strings.Contains(got, "12.50") {
		t.Errorf("dashboard after register:\n%s", got)
	}
}

func TestShowFormats(t *testing.T) {
	serve(t)
	cl, err := newClient(bank.LoginPath)
	if err != nil {
		t.Fatalf("newClient() unexpected error: %v", err)
	}
	defer cl.release()
	if err := cl.start(context.Background()); err != nil {
		t.Fatalf("start() unexpected error: %v", err)
	}

	*format = "html"
	var b strings.Builder
	if err := cl.show(&b); err != nil {
		t.Fatalf("show() unexpected error: %v", err)
	}
	if !strings.Contains(b.String(), `id="loginForm"`) {
		t.Errorf("html output does not contain the login form:\n%s", b.String())
	}

	*format = "pdf"
	if err := cl.show(&b); err == nil {
		t.Errorf("show() with an unknown format, expected an error")
	}
}
