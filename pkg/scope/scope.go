package scope

import (
	"log/slog"

	"github.com/seidr-ui/seidr/pkg/graph"
	"github.com/seidr-ui/seidr/pkg/observable"
	"github.com/seidr-ui/seidr/pkg/protocol"
)

// binding is one registered element binding, pre-capture.
type binding struct {
	observableID string
	property     string
}

// Scope is the registry and bookkeeping context for one server-side render
// pass. The render driver registers every observable it creates (root and
// derived) and every element binding it establishes; CaptureHydrationData
// turns the registry into a hydration payload.
type Scope struct {
	contextID int

	// order is the registration order of observable identifiers; it
	// defines the dense node indices of the dependency graph.
	order       []string
	observables map[string]*observable.Observable

	// parents maps a derived observable's identifier to its parents'
	// identifiers, recorded at derivation time.
	parents map[string][]string

	// bindings maps element identifier to its binding records, with
	// first-seen element order kept for stable payload output.
	bindings     map[string][]binding
	elementOrder []string
	bindingCount int

	captured bool
	logger   *slog.Logger
}

// New creates a scope for one render pass. The context identifier
// disambiguates nested or concurrent passes in the emitted payload.
func New(contextID int, logger *slog.Logger) *Scope {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scope{
		contextID:   contextID,
		observables: make(map[string]*observable.Observable),
		parents:     make(map[string][]string),
		bindings:    make(map[string][]binding),
		logger:      logger,
	}
}

// ContextID returns the render context identifier of this pass.
func (s *Scope) ContextID() int {
	return s.contextID
}

// Register records an observable created during this pass. Registration
// order defines the node index the observable receives in the capture.
// Registering the same observable twice is a no-op.
func (s *Scope) Register(obs *observable.Observable) {
	if _, exists := s.observables[obs.ID()]; exists {
		return
	}
	s.observables[obs.ID()] = obs
	s.order = append(s.order, obs.ID())
}

// RegisterDerived records the derivation edge from obs to its parents,
// separately from Register, to feed the dependency graph builder.
func (s *Scope) RegisterDerived(obs *observable.Observable, parents ...*observable.Observable) {
	ids := make([]string, 0, len(parents))
	for _, p := range parents {
		ids = append(ids, p.ID())
	}
	s.parents[obs.ID()] = ids
}

// RegisterBinding records that the element's property is driven by the
// given observable. Element identifiers keep their first-seen order.
func (s *Scope) RegisterBinding(observableID, elementID, property string) {
	if _, seen := s.bindings[elementID]; !seen {
		s.elementOrder = append(s.elementOrder, elementID)
	}
	s.bindings[elementID] = append(s.bindings[elementID], binding{
		observableID: observableID,
		property:     property,
	})
	s.bindingCount++
}

// ObservableCount returns the number of registered observables.
func (s *Scope) ObservableCount() int {
	return len(s.order)
}

// CaptureHydrationData builds the dependency graph over all registered
// observables, computes each bound observable's paths to its roots,
// determines the required root set, and assembles the payload. The internal
// registry is cleared afterward so a render pass never retains observables
// past its own lifetime.
//
// A binding referencing an observable identifier absent from the registry
// is a programming error upstream; it is logged and skipped rather than
// aborting the capture.
func (s *Scope) CaptureHydrationData() *protocol.Capture {
	if s.captured {
		s.logger.Warn("scope already captured; returning empty payload",
			"code", "E101",
			"renderContextID", s.contextID)
		return &protocol.Capture{
			RenderContextID: s.contextID,
			Observables:     map[int]any{},
			Bindings:        protocol.NewBindings(),
			Graph:           graph.Build(nil, nil),
		}
	}

	g := graph.Build(s.order, s.parents)

	index := make(map[string]int, len(s.order))
	for i, id := range s.order {
		index[id] = i
	}

	bindings := protocol.NewBindings()
	requiredRoots := make(map[int]bool)
	for _, elementID := range s.elementOrder {
		for _, b := range s.bindings[elementID] {
			nodeID, ok := index[b.observableID]
			if !ok {
				s.logger.Warn("binding references unregistered observable; skipping",
					"code", "E100",
					"observable", b.observableID,
					"element", elementID,
					"property", b.property)
				continue
			}
			bindings.Add(elementID, protocol.BindingRecord{
				NodeID:   nodeID,
				Property: b.property,
				Paths:    g.FindPathsToRoots(nodeID),
			})
			for _, root := range g.FindRootDependencies(nodeID) {
				requiredRoots[root] = true
			}
		}
	}

	// The capture-all fallback applies only when no bindings were
	// registered during the pass; with bindings present, the payload is
	// strictly the transitive root closure of the bound observables.
	values := make(map[int]any)
	if s.bindingCount == 0 {
		for _, root := range g.RootIDs {
			values[root] = s.observables[s.order[root]].Value()
		}
	} else {
		for root := range requiredRoots {
			values[root] = s.observables[s.order[root]].Value()
		}
	}

	capture := &protocol.Capture{
		RenderContextID: s.contextID,
		Observables:     values,
		Bindings:        bindings,
		Graph:           g,
	}

	// Release references: the registry must not outlive the pass.
	s.order = nil
	s.observables = nil
	s.parents = nil
	s.bindings = nil
	s.elementOrder = nil
	s.captured = true

	return capture
}
