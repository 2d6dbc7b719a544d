package render

import (
	"log/slog"

	"github.com/seidr-ui/seidr/pkg/dom"
	"github.com/seidr-ui/seidr/pkg/hydrate"
	"github.com/seidr-ui/seidr/pkg/observable"
	"github.com/seidr-ui/seidr/pkg/scope"
)

// Component builds a DOM subtree, creating its observables and bindings
// through the provided Ctx. The same component function runs on the server
// (capturing) and on the client (hydrating); it must create observables in
// the same relative order on both sides.
type Component func(*Ctx) *dom.Node

// Ctx is the registration handle for one render or hydration pass. It
// registers observables and bindings explicitly with the active scope, and
// adopts captured values from the active hydration context on the client.
type Ctx struct {
	scope  *scope.Scope
	hctx   *hydrate.Context
	ids    *dom.IDGenerator
	logger *slog.Logger
}

// IsHydrating reports whether this pass replays a server capture.
func (c *Ctx) IsHydrating() bool {
	return c.hctx != nil
}

// Signal creates a root observable and registers it with the pass. During
// hydration the captured server value, if any, replaces initial.
func (c *Ctx) Signal(initial any) *observable.Observable {
	obs := observable.New(initial, observable.WithLogger(c.logger))
	c.track(obs)
	return obs
}

// DeriveFrom creates a derived observable from src and records the
// derivation edge for the dependency graph.
func (c *Ctx) DeriveFrom(src *observable.Observable, transform func(any) any) *observable.Observable {
	d := src.Derive(transform)
	c.track(d)
	if c.scope != nil {
		c.scope.RegisterDerived(d, src)
	}
	return d
}

// Computed creates a derived observable recomputed whenever any dependency
// notifies, and records the derivation edges.
func (c *Ctx) Computed(compute func() any, deps ...*observable.Observable) *observable.Observable {
	d := observable.Computed(compute, deps...)
	c.track(d)
	if c.scope != nil {
		c.scope.RegisterDerived(d, deps...)
	}
	return d
}

// track performs the explicit per-pass registration for a freshly
// constructed observable, preserving construction order on both sides.
func (c *Ctx) track(obs *observable.Observable) {
	if c.scope != nil {
		c.scope.Register(obs)
	}
	if c.hctx != nil {
		c.hctx.AdoptNext(obs)
	}
}

// BindText binds the observable to the element's text content.
func (c *Ctx) BindText(obs *observable.Observable, el *dom.Node) {
	c.BindProp(obs, el, "textContent")
}

// BindProp binds the observable to a named element property: the current
// value is applied immediately and every change is applied individually.
// On the server this assigns the element its stable hydration identifier
// and records the binding in the scope. During hydration it is a no-op:
// the captured bindings are restored against the real DOM by ApplyBindings,
// not against the throwaway construction tree.
func (c *Ctx) BindProp(obs *observable.Observable, el *dom.Node, prop string) {
	if c.hctx != nil {
		return
	}

	if el.SeidrID == "" && c.ids != nil {
		el.SeidrID = c.ids.Next()
	}

	observable.Bind(obs, el, func(v any, target any) {
		target.(*dom.Node).SetProperty(prop, v)
	})

	if c.scope != nil {
		c.scope.RegisterBinding(obs.ID(), el.SeidrID, prop)
	}
}
