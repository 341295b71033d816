package bank

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestUnknownPathShowsDashboard(t *testing.T) {
	for _, start := range []string{"/nowhere", "/", "", "/login/", "/%zz", "https://bank.example.com/nowhere"} {
		t.Run(start, func(t *testing.T) {
			client := &fakeClient{accounts: map[string]*Account{"alice1": checking()}}
			v := newFakeView()
			h := NewMemoryHistory(start)
			a := New(v, h, &memStorage{}, client)
			a.session.SetAccount(checking())

			task := a.UpdateRoute(context.Background())
			if err := task.Wait(); err != nil {
				t.Fatalf("UpdateRoute() unexpected error: %v", err)
			}
			if task.Path() != DashboardPath {
				t.Errorf("UpdateRoute() ended on %q, want %q", task.Path(), DashboardPath)
			}
			if diff := cmp.Diff([]string{DashboardTemplate}, v.mounted); diff != "" {
				t.Errorf("mounted templates mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDashboardRedirectsToLogin(t *testing.T) {
	v := newFakeView()
	h := NewMemoryHistory(DashboardPath)
	a := New(v, h, &memStorage{}, &fakeClient{})

	task := a.UpdateRoute(context.Background())
	if err := task.Wait(); err != nil {
		t.Fatalf("UpdateRoute() unexpected error: %v", err)
	}
	if task.Path() != LoginPath || h.Path() != LoginPath {
		t.Errorf("UpdateRoute() ended on %q (history %q), want %q", task.Path(), h.Path(), LoginPath)
	}
	// the dashboard is mounted first, then replaced by the login view.
	if diff := cmp.Diff([]string{DashboardTemplate, LoginTemplate}, v.mounted); diff != "" {
		t.Errorf("mounted templates mismatch (-want +got):\n%s", diff)
	}
}

func TestRedirectLoop(t *testing.T) {
	v := newFakeView()
	a := New(v, NewMemoryHistory("/a"), &memStorage{}, &fakeClient{})
	a.table = map[string]Route{
		"/a": {Path: "/a", Template: "a", Init: func(context.Context) (string, error) { return "/b", nil }},
		"/b": {Path: "/b", Template: "b", Init: func(context.Context) (string, error) { return "/a", nil }},
	}

	err := a.UpdateRoute(context.Background()).Wait()
	if !errors.Is(err, ErrRedirectLoop) {
		t.Errorf("UpdateRoute() error = %v, want ErrRedirectLoop", err)
	}
	if n := len(v.mounted); n != maxRedirects+1 {
		t.Errorf("mounted %d views, want %d", n, maxRedirects+1)
	}
}

func TestInitError(t *testing.T) {
	boom := errors.New("boom")
	a := New(newFakeView(), NewMemoryHistory("/a"), &memStorage{}, &fakeClient{})
	a.table = map[string]Route{
		"/a": {Path: "/a", Template: "a", Init: func(context.Context) (string, error) { return "", boom }},
	}
	if err := a.UpdateRoute(context.Background()).Wait(); !errors.Is(err, boom) {
		t.Errorf("UpdateRoute() error = %v, want %v", err, boom)
	}
}

func TestNavigationsAreSerialized(t *testing.T) {
	release := make(chan struct{})
	var order []string
	a := New(newFakeView(), NewMemoryHistory("/slow"), &memStorage{}, &fakeClient{})
	a.table = map[string]Route{
		"/slow": {Path: "/slow", Template: "slow", Init: func(context.Context) (string, error) {
			<-release
			order = append(order, "slow")
			return "", nil
		}},
		"/fast": {Path: "/fast", Template: "fast", Init: func(context.Context) (string, error) {
			order = append(order, "fast")
			return "", nil
		}},
	}

	first := a.UpdateRoute(context.Background())
	second := make(chan *Task)
	go func() { second <- a.Navigate(context.Background(), "/fast") }()

	select {
	case <-second:
		t.Fatalf("Navigate() started before the pending navigation completed")
	case <-time.After(20 * time.Millisecond):
	}
	close(release)
	if err := first.Wait(); err != nil {
		t.Fatalf("first navigation unexpected error: %v", err)
	}
	if err := (<-second).Wait(); err != nil {
		t.Fatalf("second navigation unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"slow", "fast"}, order); diff != "" {
		t.Errorf("navigation order mismatch (-want +got):\n%s", diff)
	}
}

func TestNilTask(t *testing.T) {
	var task *Task
	if err := task.Wait(); err != nil {
		t.Errorf("nil Task Wait() = %v, want nil", err)
	}
	select {
	case <-task.Done():
	default:
		t.Errorf("nil Task Done() is not closed")
	}
}
