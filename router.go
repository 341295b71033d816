package bank

import (
	"context"
	"errors"
	"fmt"
)

// The paths of the client.
const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// maxRedirects bounds a chain of redirects in a single navigation.
const maxRedirects = 8

// ErrRedirectLoop is returned by a navigation that keeps being redirected.
var ErrRedirectLoop = errors.New("too many redirects")

// InitFunc is the initialization action of a route. It runs after the
// route's view is mounted and returns the path to redirect to, or "" to stay.
type InitFunc func(ctx context.Context) (redirect string, err error)

// Route associates a path to a view template and an optional initialization.
type Route struct {
	Path     string
	Template string
	Init     InitFunc
}

// Task is a pending navigation.
type Task struct {
	done chan struct{}
	path string
	err  error
}

// Wait blocks until the navigation is complete, and returns its error.
// A nil Task is a completed one.
func (t *Task) Wait() error {
	if t == nil {
		return nil
	}
	<-t.done
	return t.err
}

// Done returns a channel closed when the navigation is complete.
func (t *Task) Done() <-chan struct{} {
	if t == nil {
		done := make(chan struct{})
		close(done)
		return done
	}
	return t.done
}

// Path returns the path the navigation ended on. Only valid after Wait.
func (t *Task) Path() string {
	if t == nil {
		return ""
	}
	return t.path
}

// routes returns the route table of the application.
func (a *App) routes() map[string]Route {
	return map[string]Route{
		LoginPath:     {Path: LoginPath, Template: LoginTemplate},
		DashboardPath: {Path: DashboardPath, Template: DashboardTemplate, Init: a.Refresh},
	}
}

// Navigate records path in the history and updates the view accordingly.
func (a *App) Navigate(ctx context.Context, path string) *Task {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pending.Wait()
	return a.navigate(ctx, path)
}

// UpdateRoute renders the route of the current location.
// Any unknown path is redirected to the dashboard.
func (a *App) UpdateRoute(ctx context.Context) *Task {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pending.Wait()
	return a.updateRoute(ctx)
}

// OnLinkClick follows a link to href instead of loading a new page.
func (a *App) OnLinkClick(ctx context.Context, href string) *Task {
	return a.Navigate(ctx, href)
}

// PopState moves back in the history and renders the route found there.
func (a *App) PopState(ctx context.Context) *Task {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pending.Wait()
	a.history.Back()
	return a.updateRoute(ctx)
}

// navigate must be called with a.mu held and no pending task.
func (a *App) navigate(ctx context.Context, path string) *Task {
	a.history.Push(path)
	return a.updateRoute(ctx)
}

// updateRoute must be called with a.mu held and no pending task.
func (a *App) updateRoute(ctx context.Context) *Task {
	t := &Task{done: make(chan struct{})}
	a.pending = t
	go func() {
		defer close(t.done)
		t.path, t.err = a.route(ctx)
	}()
	return t
}

// route mounts the view of the current location and runs its initialization,
// following redirects.
func (a *App) route(ctx context.Context) (string, error) {
	for hops := 0; ; hops++ {
		path := a.history.Path()
		if hops > maxRedirects {
			return path, fmt.Errorf("cannot route %q: %w", path, ErrRedirectLoop)
		}
		r, ok := a.table[path]
		if !ok {
			a.history.Push(DashboardPath)
			continue
		}
		if err := a.view.Mount(r.Template); err != nil {
			return path, fmt.Errorf("cannot mount %q for %q: %w", r.Template, path, err)
		}
		if r.Init == nil {
			return path, nil
		}
		redirect, err := r.Init(ctx)
		if err != nil {
			return path, err
		}
		if redirect == "" {
			return path, nil
		}
		a.history.Push(redirect)
	}
}
