package store

import (
	"context"
	"sync"

	"github.com/alkasm1/pixlock/internal/derive"
)

// Notifying wraps a Store and broadcasts presence changes to
// subscribers: true after a successful Write, false after a successful
// Delete. Failed backend calls never fire. The decorator is framework
// neutral; a UI layer registers a callback and re-renders on it.
type Notifying struct {
	inner Store

	mu   sync.Mutex
	next int
	subs map[int]func(present bool)
}

// NewNotifying wraps inner with presence notification.
func NewNotifying(inner Store) *Notifying {
	return &Notifying{inner: inner, subs: make(map[int]func(bool))}
}

// Subscribe registers fn to be called on presence changes. The
// returned cancel function removes the subscription.
func (n *Notifying) Subscribe(fn func(present bool)) (cancel func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	id := n.next
	n.next++
	n.subs[id] = fn
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

func (n *Notifying) notify(present bool) {
	n.mu.Lock()
	fns := make([]func(bool), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn(present)
	}
}

func (n *Notifying) Write(ctx context.Context, secret derive.Secret) error {
	if err := n.inner.Write(ctx, secret); err != nil {
		return err
	}
	n.notify(true)
	return nil
}

func (n *Notifying) Read(ctx context.Context) (derive.Secret, bool, error) {
	return n.inner.Read(ctx)
}

func (n *Notifying) Delete(ctx context.Context) error {
	if err := n.inner.Delete(ctx); err != nil {
		return err
	}
	n.notify(false)
	return nil
}
