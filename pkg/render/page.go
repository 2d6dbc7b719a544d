package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/seidr-ui/seidr/pkg/protocol"
)

// stateGlobal is the window property the inline payload script assigns.
// Clients read it back with LoadState before calling Hydrate.
const stateGlobal = "__SEIDR_STATE__"

// Page describes the HTML document wrapped around a rendered component.
type Page struct {
	Title string
	Lang  string

	// Head is inserted verbatim inside <head>, after the title.
	Head string

	// Scripts are script src URLs appended before the closing body tag,
	// after the payload script, so the client entrypoint can read the
	// payload synchronously.
	Scripts []string
}

// RenderPage renders the component into a complete HTML document with the
// hydration payload embedded as an inline script. The payload script runs
// before any client script, so hydration code can read the state global
// without waiting.
func (r *Renderer) RenderPage(ctx context.Context, component Component, page Page) (string, error) {
	body, capture, err := r.RenderToString(ctx, component)
	if err != nil {
		return "", err
	}

	payload, err := protocol.Encode(capture)
	if err != nil {
		return "", fmt.Errorf("encoding hydration payload: %w", err)
	}

	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	fmt.Fprintf(&b, "<html lang=\"%s\">\n<head>\n", escapeAttr(lang))
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", escapeHTML(page.Title))
	if page.Head != "" {
		b.WriteString(page.Head)
		b.WriteString("\n")
	}
	b.WriteString("</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString("\n")

	// encoding/json escapes < and > inside strings, so the payload cannot
	// break out of the script element.
	fmt.Fprintf(&b, "<script>window.%s = %s;</script>\n", stateGlobal, payload)

	for _, src := range page.Scripts {
		fmt.Fprintf(&b, "<script src=\"%s\"></script>\n", escapeAttr(src))
	}
	b.WriteString("</body>\n</html>\n")

	return b.String(), nil
}
