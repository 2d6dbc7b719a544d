// Package protocol defines the serialized hydration payload exchanged
// between a server render pass and the client reconciler.
//
// The payload carries only root observable values: derived values are never
// serialized, they are recomputed client-side from the roots using the same
// derivation functions that produced them. Bindings are keyed by element
// identifier and marshaled in the first-seen element order of the render
// pass, keeping payloads stable and diff-friendly across renders.
//
// The conceptual shape:
//
//	{
//	  "renderContextID": 1,
//	  "observables": { "0": 42 },
//	  "bindings": { "s1": [ { "seidrId": 0, "prop": "textContent", "paths": [[0]] } ] },
//	  "graph": { "nodes": [ { "id": 0, "parents": [] } ], "rootIds": [0] }
//	}
package protocol
