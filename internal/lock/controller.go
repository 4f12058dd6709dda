package lock

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/alkasm1/pixlock/internal/derive"
	"github.com/alkasm1/pixlock/internal/source"
	"github.com/alkasm1/pixlock/internal/store"
)

// ByteSource loads the raw bytes of a selected image.
type ByteSource interface {
	Load(ctx context.Context, sel source.Selection) ([]byte, error)
}

// Notifier is the optional presence-broadcast side of a store.
type Notifier interface {
	Subscribe(fn func(present bool)) (cancel func())
}

// Controller runs set, unlock and remove against a single secret slot.
// A mutex serializes operations so concurrent callers cannot interleave
// between the store read and the comparison.
type Controller struct {
	mu      sync.Mutex
	src     ByteSource
	deriver derive.Deriver
	store   store.Store
	log     *zap.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithDeriver overrides the default SHA-256/base64 deriver.
func WithDeriver(d derive.Deriver) Option {
	return func(c *Controller) { c.deriver = d }
}

// WithLogger sets the structured logger. The default is a no-op.
func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// New creates a Controller over a byte source and a secret store.
func New(src ByteSource, st store.Store, opts ...Option) *Controller {
	c := &Controller{
		src:   src,
		store: st,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetKey derives a secret from the selected image and password and
// stores it, replacing any previous key.
func (c *Controller) SetKey(ctx context.Context, password string, sel source.Selection) Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	start := time.Now()

	if res, ok := c.validate(password, sel); !ok {
		return c.finish("set-key", sel, start, res)
	}

	secret, res := c.deriveSelected(ctx, password, sel)
	if secret == "" {
		return c.finish("set-key", sel, start, res)
	}

	if err := c.store.Write(ctx, secret); err != nil {
		return c.finish("set-key", sel, start, Result{Outcome: OutcomeStoreFailed, Err: err})
	}
	return c.finish("set-key", sel, start, Result{Outcome: OutcomeKeySet})
}

// Unlock verifies the selected image and password against the stored
// secret. It never modifies the store.
func (c *Controller) Unlock(ctx context.Context, password string, sel source.Selection) Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	start := time.Now()

	if res, ok := c.validate(password, sel); !ok {
		return c.finish("unlock", sel, start, res)
	}

	stored, present, err := c.store.Read(ctx)
	if err != nil {
		return c.finish("unlock", sel, start, Result{Outcome: OutcomeStoreFailed, Err: err})
	}
	if !present {
		return c.finish("unlock", sel, start, Result{Outcome: OutcomeNoKey})
	}

	secret, res := c.deriveSelected(ctx, password, sel)
	if secret == "" {
		return c.finish("unlock", sel, start, res)
	}

	if secret.Equal(stored) {
		return c.finish("unlock", sel, start, Result{Outcome: OutcomeMatch})
	}
	return c.finish("unlock", sel, start, Result{Outcome: OutcomeMismatch})
}

// RemoveKey deletes the stored secret. Removing an absent key still
// reports OutcomeKeyRemoved; the end state is the same.
func (c *Controller) RemoveKey(ctx context.Context) Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	start := time.Now()

	if err := c.store.Delete(ctx); err != nil {
		return c.finish("remove-key", source.Selection{}, start, Result{Outcome: OutcomeStoreFailed, Err: err})
	}
	return c.finish("remove-key", source.Selection{}, start, Result{Outcome: OutcomeKeyRemoved})
}

// HasKey reports whether a secret is currently stored. The answer
// comes from the store on every call; the controller holds no state of
// its own, so a restarted process sees the same lock state.
func (c *Controller) HasKey(ctx context.Context) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, present, err := c.store.Read(ctx)
	return present, err
}

// Subscribe registers fn for presence changes when the underlying
// store broadcasts them. With a plain store the subscription is inert
// and cancel is a no-op.
func (c *Controller) Subscribe(fn func(present bool)) (cancel func()) {
	if n, ok := c.store.(Notifier); ok {
		return n.Subscribe(fn)
	}
	return func() {}
}

// validate enforces the preconditions shared by SetKey and Unlock.
// Nothing is loaded, derived or stored before these pass.
func (c *Controller) validate(password string, sel source.Selection) (Result, bool) {
	if password == "" {
		return Result{Outcome: OutcomeInvalid, Err: &ValidationError{Reason: "password must not be empty"}}, false
	}
	if sel.IsZero() {
		return Result{Outcome: OutcomeInvalid, Err: &ValidationError{Reason: "no image selected"}}, false
	}
	return Result{}, true
}

// deriveSelected loads the selection and derives its secret. On
// failure the returned secret is empty and the Result carries the
// mapped outcome.
func (c *Controller) deriveSelected(ctx context.Context, password string, sel source.Selection) (derive.Secret, Result) {
	imageBytes, err := c.src.Load(ctx, sel)
	if err != nil {
		return "", Result{Outcome: OutcomeReadFailed, Err: err}
	}

	secret, err := c.deriver.Derive(imageBytes, password)
	if err != nil {
		return "", Result{Outcome: OutcomeInvalid, Err: err}
	}
	return secret, Result{}
}

// finish logs the operation and returns its result. Only the selection
// reference, outcome and timing are logged; never the password, the
// image bytes or the secret.
func (c *Controller) finish(op string, sel source.Selection, start time.Time, res Result) Result {
	fields := []zap.Field{
		zap.String("op", op),
		zap.Stringer("outcome", res.Outcome),
		zap.Duration("took", time.Since(start)),
	}
	if !sel.IsZero() {
		fields = append(fields, zap.Stringer("selection", sel.Kind()))
	}
	if res.Err != nil {
		fields = append(fields, zap.Error(res.Err))
		c.log.Warn("lock operation failed", fields...)
	} else {
		c.log.Info("lock operation", fields...)
	}
	return res
}
