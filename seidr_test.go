package seidr

import (
	"context"
	"strings"
	"testing"
)

func TestFacadeRoundTrip(t *testing.T) {
	component := func(initial any) Component {
		return func(c *Ctx) *Node {
			count := c.Signal(initial)
			span := CreateElement("span")
			c.BindText(count, span)
			return CreateElement("div").AppendChild(span)
		}
	}

	renderer := NewRenderer()
	html, capture, err := renderer.RenderToString(context.Background(), component(5))
	if err != nil {
		t.Fatalf("RenderToString: %v", err)
	}
	if !strings.Contains(html, `data-seidr-id="s1"`) {
		t.Errorf("html missing hydration id: %q", html)
	}

	payload, err := EncodeCapture(capture)
	if err != nil {
		t.Fatalf("EncodeCapture: %v", err)
	}
	decoded, err := DecodeCapture(payload)
	if err != nil {
		t.Fatalf("DecodeCapture: %v", err)
	}

	span := CreateElement("span")
	span.SeidrID = "s1"
	root := CreateElement("div").AppendChild(span)

	applied, err := Hydrate(NewHydrator(nil), decoded, root, component(0))
	if err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	if applied != 1 {
		t.Errorf("applied = %d, want 1", applied)
	}
	if got := span.Property("textContent"); got != float64(5) {
		t.Errorf("textContent = %v, want 5", got)
	}
}
