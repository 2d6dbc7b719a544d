package observable

import (
	"fmt"
	"log/slog"
	"reflect"
	"sync"
	"sync/atomic"
)

// globalIDCounter is the source of unique identifiers for observables.
// Using atomic operations ensures thread-safe ID generation without locks.
var globalIDCounter uint64

// nextID returns the next unique observable identifier (e.g., "o1", "o2").
// Identifiers are monotonically increasing and never reused.
func nextID() string {
	return fmt.Sprintf("o%d", atomic.AddUint64(&globalIDCounter, 1))
}

// subscriber pairs a handler with the subscription identity used to remove
// exactly that handler on cancel.
type subscriber struct {
	id uint64
	fn func(any)
}

// Observable is a mutable, subscribable value cell; the unit of reactive
// state. Subscribers are notified synchronously in subscription order.
//
// All methods are safe for concurrent use. Handlers run outside the internal
// lock, so a handler may read or mutate observables (including this one)
// without deadlocking.
type Observable struct {
	id string

	// mu guards value, subs, nextSubID, and cleanups.
	mu sync.Mutex

	// value is the current canonical value.
	value any

	// subs are the active subscribers, in subscription order.
	subs      []subscriber
	nextSubID uint64

	// derived is true when the value is computed from parent observables
	// rather than set directly.
	derived bool

	// cleanups run on Destroy, in reverse registration order.
	cleanups []func()

	// equal determines whether an assignment changed the value.
	// nil means defaultEquals.
	equal func(a, b any) bool

	logger *slog.Logger
}

// Option configures an Observable at construction time.
type Option func(*Observable)

// WithEquals sets a custom equality function. Assigning a value for which
// equal(old, new) is true never notifies.
func WithEquals(fn func(a, b any) bool) Option {
	return func(o *Observable) {
		o.equal = fn
	}
}

// WithLogger sets the logger used for cleanup failures and configuration
// warnings. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *Observable) {
		o.logger = logger
	}
}

// New creates an observable holding the given initial value.
func New(initial any, opts ...Option) *Observable {
	o := &Observable{
		id:    nextID(),
		value: initial,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// ID returns the stable identifier for this observable.
func (o *Observable) ID() string {
	return o.id
}

// IsDerived reports whether this observable is computed from parents.
func (o *Observable) IsDerived() bool {
	return o.derived
}

// Value returns the current value. Pure, no side effects.
func (o *Observable) Value() any {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.value
}

// Set stores v and notifies every current subscriber synchronously, in
// subscription order, before returning. Assigning an equal value is a no-op.
func (o *Observable) Set(v any) {
	o.mu.Lock()
	if o.equals(o.value, v) {
		o.mu.Unlock()
		return
	}
	o.value = v

	// Snapshot so a subscriber that unsubscribes (or subscribes) during
	// notification does not perturb this round, and so handlers run
	// without holding the lock.
	subs := make([]subscriber, len(o.subs))
	copy(subs, o.subs)
	o.mu.Unlock()

	for _, s := range subs {
		s.fn(v)
	}
}

// Restore overwrites the stored value without notifying subscribers.
// Hydration uses it to adopt a captured server value at a point in the
// construction order where no subscribers exist yet.
func (o *Observable) Restore(v any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.value = v
}

// Observe registers handler and returns a cancel function that removes
// exactly that handler. Calling cancel more than once is safe.
func (o *Observable) Observe(handler func(any)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.nextSubID++
	id := o.nextSubID
	o.subs = append(o.subs, subscriber{id: id, fn: handler})

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		for i, s := range o.subs {
			if s.id == id {
				o.subs = append(o.subs[:i], o.subs[i+1:]...)
				return
			}
		}
	}
}

// Derive returns a new derived observable whose value is transform applied
// to this observable's value, updated on every change of the source. The
// subscription removal is registered as a cleanup on the derived value, so
// destroying it detaches it from the source independently.
func (o *Observable) Derive(transform func(any) any) *Observable {
	d := New(transform(o.Value()), WithLogger(o.logger))
	d.derived = true

	stop := o.Observe(func(v any) {
		d.Set(transform(v))
	})
	d.AddCleanup(stop)

	return d
}

// Computed returns a derived observable recomputed by invoking compute
// (which is expected to close over the dependency observables) whenever any
// dependency notifies. A computed value with no dependencies can never
// update; that configuration is logged as a warning and the initial value
// is kept.
func Computed(compute func() any, deps ...*Observable) *Observable {
	c := New(compute())
	c.derived = true

	if len(deps) == 0 {
		c.log().Warn("computed observable has no dependencies and will never update",
			"observable", c.id)
		return c
	}

	for _, dep := range deps {
		stop := dep.Observe(func(any) {
			c.Set(compute())
		})
		c.AddCleanup(stop)
	}

	return c
}

// AddCleanup registers a teardown callback to run on Destroy.
func (o *Observable) AddCleanup(fn func()) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.cleanups = append(o.cleanups, fn)
}

// Destroy clears all subscribers and runs every cleanup callback in reverse
// registration order. A panicking cleanup is recovered and logged so that
// siblings still run. Cleanups run without the lock held; they commonly
// cancel subscriptions on other observables.
func (o *Observable) Destroy() {
	o.mu.Lock()
	o.subs = nil
	cleanups := o.cleanups
	o.cleanups = nil
	o.mu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		o.runCleanup(cleanups[i])
	}
}

func (o *Observable) runCleanup(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			o.log().Error("observable cleanup failed",
				"observable", o.id,
				"panic", r)
		}
	}()
	fn()
}

// SubscriberCount returns the number of active subscribers.
func (o *Observable) SubscriberCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.subs)
}

func (o *Observable) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return slog.Default()
}

// equals checks value equality using the configured equality function.
func (o *Observable) equals(a, b any) bool {
	if o.equal != nil {
		return o.equal(a, b)
	}
	return defaultEquals(a, b)
}

// defaultEquals provides type-appropriate equality checking.
// Uses == for common comparable types and reflect.DeepEqual for others.
func defaultEquals(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case uint64:
		bv, ok := b.(uint64)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		// Slices, maps, structs, etc.
		return reflect.DeepEqual(a, b)
	}
}
