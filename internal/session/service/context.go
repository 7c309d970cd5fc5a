// Package service exposes the process-wide session context.
package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/arthajobs/web/internal/session/domain"
	"github.com/arthajobs/web/internal/session/storage"
)

// Subscriber observes session transitions. The present flag is false when the
// process is signed out; the session value is meaningful only when present.
type Subscriber func(session domain.Session, present bool)

type subscription struct {
	id int
	fn Subscriber
}

// Context is the single source of truth for the current session. Exactly one
// instance exists per running process; all mutation flows through Login,
// Logout, and Expire, and every change writes through to the credential store
// before subscribers hear about it.
type Context struct {
	store storage.CredentialStore

	mu      sync.Mutex
	session domain.Session
	present bool
	subs    []subscription
	nextID  int
	closed  bool
}

// New creates a session context over the given credential store.
func New(store storage.CredentialStore) *Context {
	return &Context{store: store}
}

// Hydrate restores the persisted session, if any. An empty or unreadable slot
// leaves the context signed out; hydration never surfaces an error.
func (c *Context) Hydrate(ctx context.Context) {
	if c == nil || c.store == nil {
		return
	}
	session, err := c.store.Load(ctx)
	if err != nil {
		return
	}
	c.transition(session, true)
}

// Login atomically replaces the current session and persists it. The durable
// copy is written before Login returns, so a restart immediately after
// observes the new session.
func (c *Context) Login(ctx context.Context, identity domain.Identity, token string) error {
	if c == nil {
		return fmt.Errorf("session context is not configured")
	}
	session, err := domain.NewSession(identity, token)
	if err != nil {
		return err
	}
	if c.store != nil {
		if err := c.store.Save(ctx, session); err != nil {
			return fmt.Errorf("persist session: %w", err)
		}
	}
	c.transition(session, true)
	return nil
}

// Logout clears the session and its durable copy. Logging out while already
// signed out is a no-op.
func (c *Context) Logout(ctx context.Context) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	wasPresent := c.present
	c.mu.Unlock()
	if !wasPresent {
		return nil
	}
	if c.store != nil {
		if err := c.store.Clear(ctx); err != nil {
			return fmt.Errorf("clear persisted session: %w", err)
		}
	}
	c.transition(domain.Session{}, false)
	return nil
}

// Expire discards a session the server no longer honors. It is the implicit
// logout triggered when an authenticated call reports an invalid token; a
// failure to clear the durable copy is not surfaced because the in-memory
// session must be dropped regardless.
func (c *Context) Expire(ctx context.Context) {
	if c == nil {
		return
	}
	c.mu.Lock()
	wasPresent := c.present
	c.mu.Unlock()
	if !wasPresent {
		return
	}
	if c.store != nil {
		_ = c.store.Clear(ctx)
	}
	c.transition(domain.Session{}, false)
}

// Current returns the session snapshot. The second return is false when the
// process is signed out.
func (c *Context) Current() (domain.Session, bool) {
	if c == nil {
		return domain.Session{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session, c.present
}

// Token returns the bearer token for the current session, or the empty string
// when signed out.
func (c *Context) Token() string {
	session, present := c.Current()
	if !present {
		return ""
	}
	return session.Token
}

// Subscribe registers a callback for every session transition and returns its
// unsubscribe function. Callbacks run in registration order, and Current is
// guaranteed to reflect the new session before any callback observes it.
func (c *Context) Subscribe(fn Subscriber) (unsubscribe func()) {
	if c == nil || fn == nil {
		return func() {}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return func() {}
	}
	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscription{id: id, fn: fn})
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, sub := range c.subs {
			if sub.id == id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// Close tears down the context, dropping all subscribers. Further Subscribe
// calls return no-op unsubscribe functions.
func (c *Context) Close() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = nil
	c.closed = true
}

// transition commits the new state and then notifies subscribers outside the
// lock so callbacks may call Current without deadlocking.
func (c *Context) transition(session domain.Session, present bool) {
	c.mu.Lock()
	c.session = session
	c.present = present
	subs := make([]subscription, len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()
	for _, sub := range subs {
		sub.fn(session, present)
	}
}
