// Package hydrate reattaches reactive behavior to server-rendered markup on
// the client, without rebuilding DOM nodes.
//
// A Hydrator holds a stack of hydration contexts. Installing a capture via
// SetContext makes it the active context for the duration of client-side
// component construction; construction order is the sole correlation
// mechanism between server-created and client-created observables. As each
// observable is constructed, the driver calls AdoptNext: if the payload
// carries a value for that position (a captured root), the observable
// adopts it silently in place of its code-specified initial value.
//
// After construction, ApplyBindings resolves each captured binding against
// the existing DOM subtree by its data-seidr-id attribute and reapplies the
// bound property. Elements are reused, never recreated — replacing them
// would defeat hydration (flash of re-render, lost focus and scroll state).
// A binding whose element or observable cannot be found is skipped with a
// warning; one broken binding never aborts the page's interactivity.
package hydrate
