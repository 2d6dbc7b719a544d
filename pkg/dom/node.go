package dom

// Kind identifies the type of a Node.
type Kind uint8

const (
	KindElement Kind = iota
	KindText
	KindComment
	KindFragment
)

// HydrationAttr is the attribute carrying an element's stable hydration
// identifier in server-rendered markup.
const HydrationAttr = "data-seidr-id"

// Node is a DOM node. Elements hold a tag, properties, and children; text
// and comment nodes hold only Text; fragments hold only children.
type Node struct {
	Kind     Kind
	Tag      string
	Props    map[string]any
	Children []*Node
	Text     string

	// SeidrID is the stable per-element hydration identifier, empty for
	// elements that do not participate in hydration.
	SeidrID string
}

// CreateElement creates an element node with the given tag.
func CreateElement(tag string) *Node {
	return &Node{
		Kind:  KindElement,
		Tag:   tag,
		Props: make(map[string]any),
	}
}

// CreateText creates a text node.
func CreateText(text string) *Node {
	return &Node{Kind: KindText, Text: text}
}

// CreateComment creates a comment node.
func CreateComment(text string) *Node {
	return &Node{Kind: KindComment, Text: text}
}

// CreateFragment creates a fragment grouping the given children without a
// wrapping element.
func CreateFragment(children ...*Node) *Node {
	return &Node{Kind: KindFragment, Children: children}
}

// AppendChild appends child to n and returns n for chaining.
func (n *Node) AppendChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

// SetProperty assigns a named property on the node. Properties are mutated
// in place; there is no diffing layer above this call.
func (n *Node) SetProperty(name string, value any) {
	if n.Props == nil {
		n.Props = make(map[string]any)
	}
	n.Props[name] = value
}

// Property returns the named property, or nil if unset.
func (n *Node) Property(name string) any {
	if n.Props == nil {
		return nil
	}
	return n.Props[name]
}
