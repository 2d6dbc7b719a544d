package render

import (
	"bytes"
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/seidr-ui/seidr/pkg/dom"
	"github.com/seidr-ui/seidr/pkg/protocol"
	"github.com/seidr-ui/seidr/pkg/scope"
)

// Renderer runs server-side render passes. Each Renderer owns its own scope
// stack; nested passes push and pop on it, and passes on different
// Renderers are fully isolated.
type Renderer struct {
	stack  *scope.Stack
	logger *slog.Logger
	tracer trace.Tracer
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger for the renderer and its scopes.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// New creates a Renderer. The tracer comes from the global OpenTelemetry
// provider; configure it in main() before serving.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.stack = scope.NewStack(r.logger)
	r.tracer = otel.Tracer("github.com/seidr-ui/seidr/pkg/render")
	return r
}

// Stack exposes the renderer's scope stack for collaborators that need the
// active scope directly.
func (r *Renderer) Stack() *scope.Stack {
	return r.stack
}

// RenderToString runs one render pass: it pushes a fresh scope, builds the
// component tree, captures the hydration payload, and serializes the tree
// to HTML. The scope is popped even if the component panics; the panic
// propagates to the caller after the stack is restored.
func (r *Renderer) RenderToString(ctx context.Context, component Component) (string, *protocol.Capture, error) {
	_, span := r.tracer.Start(ctx, "seidr.render_pass",
		trace.WithSpanKind(trace.SpanKindServer))
	defer span.End()

	sc := r.stack.Push()
	span.SetAttributes(attribute.Int("seidr.render_context_id", sc.ContextID()))

	defer func() {
		if _, err := r.stack.Pop(); err != nil {
			r.logger.Error("scope stack unbalanced after render pass", "error", err)
		}
	}()

	rctx := &Ctx{
		scope:  sc,
		ids:    dom.NewIDGenerator(),
		logger: r.logger,
	}
	root := component(rctx)

	capture := sc.CaptureHydrationData()
	span.SetAttributes(
		attribute.Int("seidr.captured_roots", len(capture.Observables)),
		attribute.Int("seidr.bound_elements", capture.Bindings.Len()),
	)

	var buf bytes.Buffer
	if err := writeNode(&buf, root); err != nil {
		span.RecordError(err)
		return "", nil, err
	}

	renderPasses.Inc()
	capturedRoots.Add(float64(len(capture.Observables)))

	return buf.String(), capture, nil
}
