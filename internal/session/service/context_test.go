package service

import (
	"context"
	"errors"
	"testing"

	"github.com/arthajobs/web/internal/session/domain"
	"github.com/arthajobs/web/internal/session/storage"
)

type fakeCredentialStore struct {
	session  domain.Session
	hasSlot  bool
	loadErr  error
	saveErr  error
	clearErr error
	saves    int
	clears   int
}

func (f *fakeCredentialStore) Load(context.Context) (domain.Session, error) {
	if f.loadErr != nil {
		return domain.Session{}, f.loadErr
	}
	if !f.hasSlot {
		return domain.Session{}, storage.ErrNoSession
	}
	return f.session, nil
}

func (f *fakeCredentialStore) Save(_ context.Context, session domain.Session) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.session = session
	f.hasSlot = true
	return nil
}

func (f *fakeCredentialStore) Clear(context.Context) error {
	if f.clearErr != nil {
		return f.clearErr
	}
	f.clears++
	f.session = domain.Session{}
	f.hasSlot = false
	return nil
}

func seekerIdentity() domain.Identity {
	return domain.Identity{ID: "user-1", Name: "Dana", Email: "dana@example.com", Role: domain.RoleJobSeeker}
}

func TestLoginLogoutSequenceGovernsCurrent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sc := New(&fakeCredentialStore{})

	if _, present := sc.Current(); present {
		t.Fatal("expected signed-out context before login")
	}

	if err := sc.Login(ctx, seekerIdentity(), "token-1"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	session, present := sc.Current()
	if !present || session.Token != "token-1" {
		t.Fatalf("Current() = %+v present=%v after login", session, present)
	}

	employer := domain.Identity{ID: "user-2", Role: domain.RoleEmployer}
	if err := sc.Login(ctx, employer, "token-2"); err != nil {
		t.Fatalf("Login() replacement error = %v", err)
	}
	session, present = sc.Current()
	if !present || session.Identity.ID != "user-2" || session.Token != "token-2" {
		t.Fatalf("Current() = %+v present=%v, want replacement session", session, present)
	}

	if err := sc.Logout(ctx); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if _, present := sc.Current(); present {
		t.Fatal("expected signed-out context after logout")
	}
}

func TestLoginRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	store := &fakeCredentialStore{}
	sc := New(store)

	if err := sc.Login(context.Background(), domain.Identity{}, "token"); !errors.Is(err, domain.ErrEmptyUserID) {
		t.Fatalf("Login() error = %v, want ErrEmptyUserID", err)
	}
	if store.saves != 0 {
		t.Fatalf("saves = %d, want 0", store.saves)
	}
	if _, present := sc.Current(); present {
		t.Fatal("rejected login must not change state")
	}
}

func TestLoginWritesThroughBeforeReturning(t *testing.T) {
	t.Parallel()

	store := &fakeCredentialStore{}
	sc := New(store)

	if err := sc.Login(context.Background(), seekerIdentity(), "token-1"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if store.saves != 1 {
		t.Fatalf("saves = %d, want 1", store.saves)
	}

	// A fresh context over the same store hydrates the committed session.
	restarted := New(store)
	restarted.Hydrate(context.Background())
	session, present := restarted.Current()
	if !present || session.Token != "token-1" {
		t.Fatalf("hydrated session = %+v present=%v", session, present)
	}
}

func TestLoginPersistFailureLeavesStateUnchanged(t *testing.T) {
	t.Parallel()

	store := &fakeCredentialStore{saveErr: errors.New("disk full")}
	sc := New(store)

	if err := sc.Login(context.Background(), seekerIdentity(), "token-1"); err == nil {
		t.Fatal("expected persist failure")
	}
	if _, present := sc.Current(); present {
		t.Fatal("failed login must leave the context signed out")
	}
}

func TestHydrateFailsSilently(t *testing.T) {
	t.Parallel()

	sc := New(&fakeCredentialStore{loadErr: errors.New("corrupt slot")})
	sc.Hydrate(context.Background())
	if _, present := sc.Current(); present {
		t.Fatal("hydrate with unreadable slot must leave the context signed out")
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	t.Parallel()

	store := &fakeCredentialStore{}
	sc := New(store)

	if err := sc.Logout(context.Background()); err != nil {
		t.Fatalf("Logout() while signed out error = %v", err)
	}
	if store.clears != 0 {
		t.Fatalf("clears = %d, want 0 for signed-out logout", store.clears)
	}
}

func TestSubscribersNotifiedInRegistrationOrder(t *testing.T) {
	t.Parallel()

	sc := New(&fakeCredentialStore{})
	var order []string
	sc.Subscribe(func(_ domain.Session, present bool) {
		order = append(order, "first")
		// Current must already reflect the transition.
		if _, current := sc.Current(); current != present {
			t.Errorf("Current() present=%v inside notification, want %v", current, present)
		}
	})
	sc.Subscribe(func(domain.Session, bool) {
		order = append(order, "second")
	})

	if err := sc.Login(context.Background(), seekerIdentity(), "token-1"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("notification order = %v", order)
	}

	order = nil
	if err := sc.Logout(context.Background()); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if len(order) != 2 {
		t.Fatalf("expected both subscribers notified on logout, got %v", order)
	}
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	t.Parallel()

	sc := New(&fakeCredentialStore{})
	calls := 0
	unsubscribe := sc.Subscribe(func(domain.Session, bool) { calls++ })

	if err := sc.Login(context.Background(), seekerIdentity(), "token-1"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	unsubscribe()
	if err := sc.Logout(context.Background()); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestExpireClearsSessionAndDurableCopy(t *testing.T) {
	t.Parallel()

	store := &fakeCredentialStore{}
	sc := New(store)
	if err := sc.Login(context.Background(), seekerIdentity(), "token-1"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	sc.Expire(context.Background())
	if _, present := sc.Current(); present {
		t.Fatal("expected signed-out context after expire")
	}
	if store.clears != 1 {
		t.Fatalf("clears = %d, want 1", store.clears)
	}

	// Expiring while signed out is a no-op.
	sc.Expire(context.Background())
	if store.clears != 1 {
		t.Fatalf("clears = %d after repeat expire, want 1", store.clears)
	}
}

func TestCloseDropsSubscribers(t *testing.T) {
	t.Parallel()

	sc := New(&fakeCredentialStore{})
	calls := 0
	sc.Subscribe(func(domain.Session, bool) { calls++ })
	sc.Close()

	if err := sc.Login(context.Background(), seekerIdentity(), "token-1"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if calls != 0 {
		t.Fatalf("calls = %d after Close, want 0", calls)
	}
}
