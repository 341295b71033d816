package bank

import "errors"

// ElementID names an element of the document the client renders into.
type ElementID string

// The elements of the document the client depends on.
const (
	AppRoot      ElementID = "app"
	Description  ElementID = "description"
	Balance      ElementID = "balance"
	Currency     ElementID = "currency"
	Transactions ElementID = "transactions"
	LoginError   ElementID = "loginError"
	RegisterForm ElementID = "registerForm"
	LoginForm    ElementID = "loginForm"
)

// The templates of the document.
const (
	LoginTemplate       = "login"
	DashboardTemplate   = "dashboard"
	TransactionTemplate = "transaction"
)

// ErrNoElement is returned by a View when an element or template does not exist.
var ErrNoElement = errors.New("no such element")

// View is the document the client renders into.
type View interface {
	// Mount replaces the content of the AppRoot element with a copy of the
	// template content.
	Mount(template string) error
	// SetText replaces the content of the element with text.
	SetText(id ElementID, text string) error
	// SetRows replaces the content of the element with one copy of the row
	// template per row, each cell of the row being written in order into
	// the cells of the template.
	SetRows(id ElementID, template string, rows [][]string) error
	// Form returns the named values of the form.
	Form(id ElementID) (map[string]string, error)
}
