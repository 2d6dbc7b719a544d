package scope

import (
	"log/slog"
	"sync"

	ierrors "github.com/seidr-ui/seidr/internal/errors"
)

// Stack is the explicit scope stack for nested render passes. Each render
// driver owns its own Stack; scopes are never shared across concurrent
// passes except through this push/pop discipline.
type Stack struct {
	scopes        []*Scope
	nextContextID int
	mu            sync.Mutex
	logger        *slog.Logger
}

// NewStack creates an empty scope stack.
func NewStack(logger *slog.Logger) *Stack {
	if logger == nil {
		logger = slog.Default()
	}
	return &Stack{logger: logger}
}

// Push creates a scope with a fresh render context identifier and makes it
// the active scope.
func (st *Stack) Push() *Scope {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.nextContextID++
	sc := New(st.nextContextID, st.logger)
	st.scopes = append(st.scopes, sc)
	return sc
}

// Pop removes and returns the active scope. Popping an empty stack returns
// an error: it means push/pop bookkeeping is unbalanced.
func (st *Stack) Pop() (*Scope, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if len(st.scopes) == 0 {
		return nil, ierrors.New("E002")
	}
	sc := st.scopes[len(st.scopes)-1]
	st.scopes = st.scopes[:len(st.scopes)-1]
	return sc, nil
}

// Active returns the scope at the top of the stack. Calling it outside a
// render pass is a caller-contract violation: silently returning a default
// would hydrate incorrect data, so it fails with an explicit error naming
// the required wrapping call.
func (st *Stack) Active() (*Scope, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if len(st.scopes) == 0 {
		return nil, ierrors.New("E001").
			WithSuggestion("Wrap the call in render.Renderer.RenderToString, which pushes and pops the scope for you")
	}
	return st.scopes[len(st.scopes)-1], nil
}

// Depth returns the current nesting depth.
func (st *Stack) Depth() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.scopes)
}
