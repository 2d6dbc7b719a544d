// Package dom is the minimal DOM adapter the reactive core binds against:
// create element, create text, create comment, create fragment, assign a
// property, append a child.
//
// Elements that participate in hydration carry a stable per-element
// identifier, written during server rendering as the data-seidr-id
// attribute and resolved on the client with FindBySeidrID. Everything
// tag-specific (element factories, attribute helpers) lives outside this
// package; the core only needs addressable nodes with mutable properties.
package dom
