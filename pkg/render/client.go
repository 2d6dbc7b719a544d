package render

import (
	"github.com/seidr-ui/seidr/pkg/dom"
	"github.com/seidr-ui/seidr/pkg/hydrate"
	"github.com/seidr-ui/seidr/pkg/protocol"

	ierrors "github.com/seidr-ui/seidr/internal/errors"
)

// Hydrate replays a server capture on the client. It installs capture as the
// hydrator's active context, re-runs the component construction so every
// observable is adopted in the same order the server registered it, and then
// rebinds the captured bindings onto the existing DOM subtree at root.
//
// The construction pass produces a throwaway tree; root is the server-rendered
// DOM the bindings attach to. Hydrate returns the number of bindings applied.
// The context is cleared even if the component panics.
func Hydrate(h *hydrate.Hydrator, capture *protocol.Capture, root *dom.Node, component Component) (int, error) {
	if capture == nil {
		return 0, ierrors.New("E202").
			WithSuggestion("Decode the embedded payload with protocol.Decode before calling Hydrate")
	}

	hc := h.SetContext(capture)
	defer h.ClearContext()

	rctx := &Ctx{
		hctx:   hc,
		logger: h.Logger(),
	}
	component(rctx)

	return hc.ApplyBindings(root), nil
}
