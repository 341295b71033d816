package bank

import (
	"context"
	"fmt"
	"log"
	"sync"
)

// AccountClient is the remote account API.
type AccountClient interface {
	// CreateAccount registers a new account from the registration form fields.
	CreateAccount(ctx context.Context, form map[string]string) (*Account, error)
	// GetAccount fetches an existing account.
	GetAccount(ctx context.Context, user string) (*Account, error)
}

// App is the bank client: it routes between the login and dashboard views,
// holds the session and keeps the durable slot in sync.
type App struct {
	view    View
	history History
	storage Storage
	client  AccountClient

	session *Session
	table   map[string]Route

	mu      sync.Mutex // serializes navigations.
	pending *Task
}

// New returns an App with an empty session. Call Start to restore the saved
// session and render the current location.
func New(view View, history History, storage Storage, client AccountClient) *App {
	a := &App{
		view:    view,
		history: history,
		storage: storage,
		client:  client,
		session: NewSession(State{}),
	}
	a.table = a.routes()
	return a
}

// State returns the current session snapshot.
func (a *App) State() State { return a.session.State() }

// Start restores the saved account, if any, and renders the current location.
func (a *App) Start(ctx context.Context) *Task {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pending.Wait()
	if acc := loadAccount(a.storage); acc != nil {
		a.session.SetAccount(acc)
	}
	return a.updateRoute(ctx)
}

// Register creates an account from the registration form and moves to the
// dashboard. Failures are logged and returned, the view is left untouched.
func (a *App) Register(ctx context.Context) (*Task, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pending.Wait()

	form, err := a.view.Form(RegisterForm)
	if err != nil {
		return nil, fmt.Errorf("cannot read registration form: %w", err)
	}
	acc, err := a.client.CreateAccount(ctx, form)
	if err != nil {
		log.Printf("cannot register account: %v", err)
		return nil, err
	}
	log.Printf("account %q created", acc.User)
	a.signIn(acc)
	return a.navigate(ctx, DashboardPath), nil
}

// Login fetches the account named in the login form and moves to the
// dashboard. Failures are written into the login error element.
func (a *App) Login(ctx context.Context) (*Task, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pending.Wait()

	form, err := a.view.Form(LoginForm)
	if err != nil {
		return nil, fmt.Errorf("cannot read login form: %w", err)
	}
	acc, err := a.client.GetAccount(ctx, form["user"])
	if err != nil {
		if verr := a.view.SetText(LoginError, err.Error()); verr != nil {
			log.Printf("cannot display login error %q: %v", err, verr)
		}
		return nil, err
	}
	a.signIn(acc)
	return a.navigate(ctx, DashboardPath), nil
}

// Logout forgets the account and moves to the login view.
func (a *App) Logout(ctx context.Context) *Task {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pending.Wait()
	return a.navigate(ctx, a.logout())
}

// signIn installs acc as the session account and saves it.
func (a *App) signIn(acc *Account) {
	a.session.SetAccount(acc)
	saveAccount(a.storage, acc)
}

// signOut clears the session and returns the login path. The durable slot is
// kept, so the next Start signs in again.
func (a *App) signOut() string {
	a.session.SetAccount(nil)
	return LoginPath
}

// logout signs out and clears the durable slot.
func (a *App) logout() string {
	clearAccount(a.storage)
	return a.signOut()
}
