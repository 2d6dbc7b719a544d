// Package graph builds the serializable dependency graph over the
// observables captured during a render pass.
//
// Nodes are addressed by a dense integer index assigned from registration
// order, not by the observable's original identifier, to keep the serialized
// form compact. Root observables have an empty parent list. The graph is
// acyclic: derivation never forms a cycle.
package graph
