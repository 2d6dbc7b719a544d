package render

import "strings"

const textSpecials = "&<>\"'"
const attrSpecials = textSpecials + "\n\r\t"

// escapeHTML rewrites s so it is inert as element content.
func escapeHTML(s string) string {
	return escape(s, textSpecials)
}

// escapeAttr rewrites s for a double-quoted attribute value. Control
// whitespace is escaped as well: it survives parsing but mangles attributes
// when the markup is reserialized.
func escapeAttr(s string) string {
	return escape(s, attrSpecials)
}

func escape(s, specials string) string {
	if !strings.ContainsAny(s, specials) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		// All escaped characters are single bytes; everything else,
		// multi-byte runes included, passes through untouched.
		switch c := s[i]; c {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#39;")
		case '\n', '\r', '\t':
			if strings.IndexByte(specials, c) < 0 {
				b.WriteByte(c)
				break
			}
			switch c {
			case '\n':
				b.WriteString("&#10;")
			case '\r':
				b.WriteString("&#13;")
			case '\t':
				b.WriteString("&#9;")
			}
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
