package hydrate

import (
	"log/slog"

	"github.com/seidr-ui/seidr/pkg/dom"
	"github.com/seidr-ui/seidr/pkg/observable"
	"github.com/seidr-ui/seidr/pkg/protocol"
)

// Context is one active hydration pass: a capture payload plus the
// construction-order cursor used to correlate client observables with
// server node indices.
type Context struct {
	capture *protocol.Capture

	// cursor is the construction-order position of the next observable.
	cursor int

	// observables are the client-side observables by node index, recorded
	// as they are constructed.
	observables []*observable.Observable

	logger *slog.Logger
}

// Capture returns the payload this context hydrates from.
func (c *Context) Capture() *protocol.Capture {
	return c.capture
}

// AdoptNext records obs at the next construction-order position and, if the
// payload captured a root value for that position, overwrites the
// observable's value with it. The overwrite is silent: no change
// notification fires, because no subscribers can exist yet at this point in
// the construction order.
func (c *Context) AdoptNext(obs *observable.Observable) {
	idx := c.cursor
	c.cursor++

	if v, ok := c.capture.Observables[idx]; ok {
		obs.Restore(v)
	}
	c.observables = append(c.observables, obs)
}

// ObservableAt returns the client observable constructed at the given node
// index, or nil if construction never reached it.
func (c *Context) ObservableAt(nodeID int) *observable.Observable {
	if nodeID < 0 || nodeID >= len(c.observables) {
		return nil
	}
	return c.observables[nodeID]
}

// ApplyBindings restores every captured binding against the existing DOM
// subtree rooted at root. Elements are resolved by their data-seidr-id
// attribute and reused in place. It returns the number of bindings applied;
// bindings whose element or observable is missing are skipped with a
// warning and do not affect the rest.
func (c *Context) ApplyBindings(root *dom.Node) int {
	applied := 0
	for _, elementID := range c.capture.Bindings.Elements() {
		element := dom.FindBySeidrID(root, elementID)
		if element == nil {
			bindingSkips.Inc()
			c.logger.Warn("hydration element not found; skipping its bindings",
				"code", "E200",
				"element", elementID,
				"renderContextID", c.capture.RenderContextID)
			continue
		}
		for _, rec := range c.capture.Bindings.Get(elementID) {
			obs := c.ObservableAt(rec.NodeID)
			if obs == nil {
				bindingSkips.Inc()
				c.logger.Warn("hydration observable missing; skipping binding",
					"code", "E201",
					"element", elementID,
					"node", rec.NodeID,
					"property", rec.Property)
				continue
			}
			prop := rec.Property
			observable.Bind(obs, element, func(v any, target any) {
				target.(*dom.Node).SetProperty(prop, v)
			})
			applied++
		}
	}
	bindingsApplied.Add(float64(applied))
	return applied
}
