package dom

import (
	"fmt"
	"sync"
)

// IDGenerator generates stable per-element hydration identifiers for one
// render pass (e.g., "s1", "s2", ...).
type IDGenerator struct {
	counter uint32
	mu      sync.Mutex
}

// NewIDGenerator creates a new IDGenerator.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next returns the next hydration identifier.
func (g *IDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return fmt.Sprintf("s%d", g.counter)
}

// Reset resets the counter to 0.
func (g *IDGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter = 0
}

// FindBySeidrID finds the node carrying the given hydration identifier in
// the subtree rooted at node, or nil if absent.
func FindBySeidrID(node *Node, id string) *Node {
	if node == nil || id == "" {
		return nil
	}
	if node.SeidrID == id {
		return node
	}
	for _, child := range node.Children {
		if found := FindBySeidrID(child, id); found != nil {
			return found
		}
	}
	return nil
}

// CollectSeidrIDs returns a map of hydration identifier to node for every
// identified element in the subtree.
func CollectSeidrIDs(node *Node) map[string]*Node {
	result := make(map[string]*Node)
	collectSeidrIDs(node, result)
	return result
}

func collectSeidrIDs(node *Node, result map[string]*Node) {
	if node == nil {
		return
	}
	if node.SeidrID != "" {
		result[node.SeidrID] = node
	}
	for _, child := range node.Children {
		collectSeidrIDs(child, result)
	}
}
