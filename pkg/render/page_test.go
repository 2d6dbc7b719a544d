package render

import (
	"context"
	"strings"
	"testing"

	"github.com/seidr-ui/seidr/pkg/dom"
)

func TestRenderPage(t *testing.T) {
	r := New()

	component := func(c *Ctx) *dom.Node {
		count := c.Signal(7)
		span := dom.CreateElement("span")
		c.BindText(count, span)
		return dom.CreateElement("main").AppendChild(span)
	}

	doc, err := r.RenderPage(context.Background(), component, Page{
		Title:   "Counter <demo>",
		Scripts: []string{"/assets/app.js"},
	})
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}

	if !strings.HasPrefix(doc, "<!DOCTYPE html>") {
		t.Error("missing doctype")
	}
	if !strings.Contains(doc, "<title>Counter &lt;demo&gt;</title>") {
		t.Error("title not escaped")
	}
	if !strings.Contains(doc, `<main><span data-seidr-id="s1">7</span></main>`) {
		t.Errorf("rendered body missing from document:\n%s", doc)
	}
	if !strings.Contains(doc, "window.__SEIDR_STATE__ = {") {
		t.Error("payload script missing")
	}

	// The payload script must run before the client entrypoint.
	stateIdx := strings.Index(doc, "__SEIDR_STATE__")
	scriptIdx := strings.Index(doc, `src="/assets/app.js"`)
	if scriptIdx < 0 {
		t.Fatal("client script missing")
	}
	if stateIdx > scriptIdx {
		t.Error("payload script must precede client scripts")
	}
}

func TestRenderPagePayloadCannotBreakScript(t *testing.T) {
	r := New()

	component := func(c *Ctx) *dom.Node {
		msg := c.Signal("</script><script>alert(1)</script>")
		span := dom.CreateElement("span")
		c.BindText(msg, span)
		return dom.CreateElement("div").AppendChild(span)
	}

	doc, err := r.RenderPage(context.Background(), component, Page{Title: "x"})
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}

	start := strings.Index(doc, "window.__SEIDR_STATE__")
	end := strings.Index(doc[start:], "</script>")
	payload := doc[start : start+end]
	if strings.Contains(payload, "</script") {
		t.Error("payload contains unescaped script close tag")
	}
}
