// Package render drives Seidr render passes on both sides of the wire.
//
// On the server, Renderer.RenderToString pushes a fresh scope, runs the
// component function, captures the hydration payload, and serializes the
// DOM tree to HTML. The scope pop is guaranteed even when the component
// panics, so a failing render never leaves a stale scope behind for an
// unrelated pass. RenderPage wraps the result in a full HTML document with
// the payload embedded as an inline script.
//
// On the client, Hydrate installs the payload as the active hydration
// context, re-runs the same component construction (adopting captured root
// values by construction order), and rebinds the captured bindings onto the
// existing DOM subtree.
//
// The Ctx handle passed to components performs the explicit scope and
// hydration registration; components never consult hidden global state.
package render
