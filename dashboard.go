package bank

import (
	"context"
	"fmt"
	"log"
)

// Dashboard projects an account onto the dashboard view.
type Dashboard struct {
	View View
}

// Render writes the account fields and rebuilds the transaction list, in the
// account order.
func (d Dashboard) Render(acc *Account) error {
	fields := []struct {
		id   ElementID
		text string
	}{
		{Description, acc.Description},
		{Balance, acc.Balance.Fixed2()},
		{Currency, acc.Currency},
	}
	for _, f := range fields {
		if err := d.View.SetText(f.id, f.text); err != nil {
			return fmt.Errorf("cannot render %s: %w", f.id, err)
		}
	}

	rows := make([][]string, 0, len(acc.Transactions))
	for _, tx := range acc.Transactions {
		rows = append(rows, TransactionRow(tx))
	}
	if err := d.View.SetRows(Transactions, TransactionTemplate, rows); err != nil {
		return fmt.Errorf("cannot render %s: %w", Transactions, err)
	}
	return nil
}

// TransactionRow returns the cells displayed for a transaction.
func TransactionRow(tx Transaction) []string {
	return []string{tx.Date.String(), tx.Object, tx.Amount.Fixed2()}
}

// UpdateDashboard renders the session account, or signs out when there is
// none. It returns the path to redirect to.
func (a *App) UpdateDashboard() (string, error) {
	acc := a.session.State().Account
	if acc == nil {
		return a.signOut(), nil
	}
	return "", Dashboard{View: a.view}.Render(acc)
}

// Refresh fetches the session account again and renders it. When the session
// is empty or the account cannot be fetched it signs out instead, keeping the
// durable slot.
//
// Refresh is the initialization of the dashboard route.
func (a *App) Refresh(ctx context.Context) (string, error) {
	if redirect := a.updateAccountData(ctx); redirect != "" {
		return redirect, nil
	}
	return a.UpdateDashboard()
}

// updateAccountData replaces the session account by a fresh copy from the
// server. It returns the path to redirect to on failure.
func (a *App) updateAccountData(ctx context.Context) string {
	acc := a.session.State().Account
	if acc == nil {
		return a.signOut()
	}
	fresh, err := a.client.GetAccount(ctx, acc.User)
	if err != nil {
		log.Printf("cannot refresh account %q: %v", acc.User, err)
		return a.signOut()
	}
	a.session.SetAccount(fresh)
	return ""
}
