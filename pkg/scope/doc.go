// Package scope implements the per-render-pass registry that captures
// observable state and element bindings on the server.
//
// A Scope moves through three states: active (pushed onto a Stack at pass
// start), captured (payload emitted by CaptureHydrationData), and cleared.
// Render passes may nest — a component rendering a child establishes a
// nested scope — so the currently active scope is always the top of an
// explicit Stack owned by the render driver. There is no process-global
// stack: concurrency isolation comes from each logical render pass owning
// its own Stack and pushing/popping around its own execution.
//
// At the end of a pass, CaptureHydrationData computes the minimal set of
// root values needed to reconstruct all bound observables: the transitive
// root closure of the bindings, or every root when no bindings were
// registered (the fallback for simple, non-interactive renders).
package scope
