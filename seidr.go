// Package seidr provides the public API for the Seidr reactive state layer.
//
// This is the recommended import for most applications:
//
//	import "github.com/seidr-ui/seidr"
//
// Usage:
//
//	renderer := seidr.NewRenderer()
//	html, capture, err := renderer.RenderToString(ctx, func(c *seidr.Ctx) *seidr.Node {
//		count := c.Signal(0)
//		span := seidr.CreateElement("span")
//		c.BindText(count, span)
//		return seidr.CreateElement("div").AppendChild(span)
//	})
//
// On the client, decode the embedded payload and replay the same component:
//
//	capture, err := seidr.DecodeCapture(payload)
//	hydrator := seidr.NewHydrator(nil)
//	applied, err := seidr.Hydrate(hydrator, capture, root, component)
package seidr

import (
	"log/slog"

	"github.com/seidr-ui/seidr/pkg/dom"
	"github.com/seidr-ui/seidr/pkg/hydrate"
	"github.com/seidr-ui/seidr/pkg/observable"
	"github.com/seidr-ui/seidr/pkg/protocol"
	"github.com/seidr-ui/seidr/pkg/render"
)

// Version is the library version.
const Version = "0.1.0"

// Observable is a mutable, subscribable value cell.
type Observable = observable.Observable

// Node is a DOM node.
type Node = dom.Node

// Component builds a DOM subtree through a render or hydration Ctx.
type Component = render.Component

// Ctx is the per-pass registration handle passed to components.
type Ctx = render.Ctx

// Renderer runs server-side render passes.
type Renderer = render.Renderer

// Page describes the HTML document wrapped around a rendered component.
type Page = render.Page

// Capture is the serialized hydration payload for one render pass.
type Capture = protocol.Capture

// Hydrator manages the active hydration context on a client.
type Hydrator = hydrate.Hydrator

// NewObservable creates an observable holding the given initial value.
func NewObservable(initial any, opts ...observable.Option) *Observable {
	return observable.New(initial, opts...)
}

// NewRenderer creates a Renderer.
func NewRenderer(opts ...render.Option) *Renderer {
	return render.New(opts...)
}

// NewHydrator creates a Hydrator.
func NewHydrator(logger *slog.Logger) *Hydrator {
	return hydrate.NewHydrator(logger)
}

// Hydrate replays a server capture against an existing DOM subtree.
func Hydrate(h *Hydrator, capture *Capture, root *Node, component Component) (int, error) {
	return render.Hydrate(h, capture, root, component)
}

// EncodeCapture serializes a capture to JSON.
func EncodeCapture(c *Capture) ([]byte, error) {
	return protocol.Encode(c)
}

// DecodeCapture parses a capture payload produced by EncodeCapture.
func DecodeCapture(data []byte) (*Capture, error) {
	return protocol.Decode(data)
}

// CreateElement creates an element node with the given tag.
func CreateElement(tag string) *Node {
	return dom.CreateElement(tag)
}

// CreateText creates a text node.
func CreateText(text string) *Node {
	return dom.CreateText(text)
}

// CreateFragment creates a fragment grouping children without a wrapper.
func CreateFragment(children ...*Node) *Node {
	return dom.CreateFragment(children...)
}
