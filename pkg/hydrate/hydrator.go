package hydrate

import (
	"log/slog"
	"sync"

	"github.com/seidr-ui/seidr/pkg/protocol"
)

// Hydrator manages the active hydration context for a client. Contexts
// nest: hydrating a component tree inside an already-hydrating tree pushes
// a new context, and clearing it restores the enclosing one.
type Hydrator struct {
	contexts []*Context
	mu       sync.Mutex
	logger   *slog.Logger
}

// NewHydrator creates a Hydrator.
func NewHydrator(logger *slog.Logger) *Hydrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hydrator{logger: logger}
}

// SetContext installs capture as the active hydration context and returns
// it. Any previously active context is preserved underneath and restored by
// ClearContext.
func (h *Hydrator) SetContext(capture *protocol.Capture) *Context {
	h.mu.Lock()
	defer h.mu.Unlock()

	ctx := &Context{
		capture: capture,
		logger:  h.logger,
	}
	h.contexts = append(h.contexts, ctx)
	return ctx
}

// GetContext returns the active hydration context, or nil when not
// hydrating.
func (h *Hydrator) GetContext() *Context {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.contexts) == 0 {
		return nil
	}
	return h.contexts[len(h.contexts)-1]
}

// ClearContext removes the active context, restoring the enclosing one if
// this was a nested hydration. Clearing with no active context is a no-op.
func (h *Hydrator) ClearContext() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.contexts) == 0 {
		return
	}
	h.contexts = h.contexts[:len(h.contexts)-1]
}

// Logger returns the hydrator's logger.
func (h *Hydrator) Logger() *slog.Logger {
	return h.logger
}

// IsHydrating reports whether a hydration context is active.
func (h *Hydrator) IsHydrating() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.contexts) > 0
}
