// Package bank implements a client for the Patterson bank account API.
//
// The client has two views: a login view, with a login form and a
// registration form, and a dashboard view showing the account description,
// balance, currency and transactions.
//
// The core pieces are:
//   - App: the composition root. It routes between the views, performs
//     registration, login and logout, and keeps the session.
//   - Session: the current State, replaced wholesale on every update.
//   - Dashboard: the projection of an Account onto the dashboard view.
//
// The App does not know how the document, the history, the durable storage
// or the remote API are implemented: they are injected as View, History,
// Storage and AccountClient. Package dom implements the document, package
// storage the durable slot and package accounts the HTTP client.
//
// Navigations return a pending Task; a navigation waits for the previous one
// to complete before it touches the view.
package bank
