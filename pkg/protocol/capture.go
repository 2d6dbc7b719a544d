package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/seidr-ui/seidr/pkg/graph"
)

// BindingRecord associates one observable (by node index) with one property
// of a DOM element. Paths holds the precomputed traversal from the bound
// node to each root it transitively depends on, so the client never
// re-walks the graph per binding.
type BindingRecord struct {
	NodeID   int     `json:"seidrId"`
	Property string  `json:"prop"`
	Paths    [][]int `json:"paths"`
}

// Capture is the serialized hydration payload for one render pass.
type Capture struct {
	// RenderContextID disambiguates nested or concurrent render passes.
	RenderContextID int `json:"renderContextID"`

	// Observables maps root node index to its captured value. Only roots
	// are captured; derived values are recomputed on the client.
	Observables map[int]any `json:"observables"`

	// Bindings maps element identifier to that element's binding records,
	// preserving first-seen element order.
	Bindings *Bindings `json:"bindings"`

	// Graph is the dependency graph over all registered observables.
	Graph *graph.Graph `json:"graph"`
}

// Encode serializes the capture to JSON. encoding/json escapes <, > and &
// by default, so the result is safe to embed in an inline script tag.
func Encode(c *Capture) ([]byte, error) {
	return json.Marshal(c)
}

// Decode parses a capture payload produced by Encode.
func Decode(data []byte) (*Capture, error) {
	var c Capture
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode hydration payload: %w", err)
	}
	return &c, nil
}

// Bindings is an insertion-ordered map from element identifier to binding
// records. JSON object keys are emitted in first-seen order rather than
// Go's sorted map order.
type Bindings struct {
	order   []string
	records map[string][]BindingRecord
}

// NewBindings returns an empty binding set.
func NewBindings() *Bindings {
	return &Bindings{records: make(map[string][]BindingRecord)}
}

// Add appends a record for the given element, tracking first-seen element
// order.
func (b *Bindings) Add(elementID string, rec BindingRecord) {
	if b.records == nil {
		b.records = make(map[string][]BindingRecord)
	}
	if _, seen := b.records[elementID]; !seen {
		b.order = append(b.order, elementID)
	}
	b.records[elementID] = append(b.records[elementID], rec)
}

// Get returns the records for an element, in registration order.
func (b *Bindings) Get(elementID string) []BindingRecord {
	if b == nil {
		return nil
	}
	return b.records[elementID]
}

// Elements returns the element identifiers in first-seen order.
func (b *Bindings) Elements() []string {
	if b == nil {
		return nil
	}
	return b.order
}

// Len returns the number of elements with bindings.
func (b *Bindings) Len() int {
	if b == nil {
		return 0
	}
	return len(b.order)
}

// MarshalJSON emits the bindings object with keys in first-seen order.
func (b *Bindings) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, elementID := range b.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(elementID)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		recs, err := json.Marshal(b.records[elementID])
		if err != nil {
			return nil, err
		}
		buf.Write(recs)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON parses a bindings object, preserving key order.
func (b *Bindings) UnmarshalJSON(data []byte) error {
	b.order = nil
	b.records = make(map[string][]BindingRecord)

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("bindings: expected object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("bindings: expected string key, got %v", keyTok)
		}
		var recs []BindingRecord
		if err := dec.Decode(&recs); err != nil {
			return fmt.Errorf("bindings for %q: %w", key, err)
		}
		b.order = append(b.order, key)
		b.records[key] = recs
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
