package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/seidr-ui/seidr/pkg/dom"
)

// voidElements have no closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// writeNode serializes a DOM node to HTML.
func writeNode(w io.Writer, node *dom.Node) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case dom.KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	case dom.KindComment:
		_, err := fmt.Fprintf(w, "<!--%s-->", node.Text)
		return err
	case dom.KindFragment:
		for _, child := range node.Children {
			if err := writeNode(w, child); err != nil {
				return err
			}
		}
		return nil
	case dom.KindElement:
		return writeElement(w, node)
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

func writeElement(w io.Writer, node *dom.Node) error {
	if _, err := fmt.Fprintf(w, "<%s", node.Tag); err != nil {
		return err
	}

	if err := writeAttributes(w, node); err != nil {
		return err
	}

	if node.SeidrID != "" {
		if _, err := fmt.Fprintf(w, ` %s="%s"`, dom.HydrationAttr, escapeAttr(node.SeidrID)); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if voidElements[node.Tag] {
		return nil
	}

	// A bound textContent property supplies the element's entire content.
	if text, ok := node.Props["textContent"]; ok {
		if _, err := io.WriteString(w, escapeHTML(fmt.Sprintf("%v", text))); err != nil {
			return err
		}
	} else {
		for _, child := range node.Children {
			if err := writeNode(w, child); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(w, "</%s>", node.Tag)
	return err
}

// writeAttributes renders element properties as attributes in sorted order
// for deterministic output. Boolean properties follow HTML semantics: true
// renders the bare attribute, false omits it.
func writeAttributes(w io.Writer, node *dom.Node) error {
	names := make([]string, 0, len(node.Props))
	for name := range node.Props {
		if name == "textContent" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		switch v := node.Props[name].(type) {
		case bool:
			if v {
				if _, err := fmt.Fprintf(w, " %s", name); err != nil {
					return err
				}
			}
		default:
			if _, err := fmt.Fprintf(w, ` %s="%s"`, name, escapeAttr(fmt.Sprintf("%v", v))); err != nil {
				return err
			}
		}
	}
	return nil
}
