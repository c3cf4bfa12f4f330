package chain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/philipparndt/polychain/pkg/geometry"
)

// ErrMalformedPayload is returned when a vertex payload cannot be decoded
var ErrMalformedPayload = errors.New("malformed chain payload")

// Payload is the object carried by the data endpoint
type Payload struct {
	Vertices [][]float64 `json:"vertices"`
}

// NewPayload converts a chain into its wire form
func NewPayload(c Chain) Payload {
	p := Payload{Vertices: make([][]float64, 0, len(c))}
	for _, pt := range c {
		a := pt.Array()
		p.Vertices = append(p.Vertices, a[:])
	}
	return p
}

// EncodePayload serializes a chain the way the data endpoint does: the
// object is encoded to JSON and that text is encoded again as a JSON string.
func EncodePayload(c Chain) ([]byte, error) {
	inner, err := json.Marshal(NewPayload(c))
	if err != nil {
		return nil, fmt.Errorf("failed to encode vertices: %w", err)
	}
	outer, err := json.Marshal(string(inner))
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload string: %w", err)
	}
	return outer, nil
}

// DecodePayload decodes a data endpoint response body. The body is a JSON
// string whose content is itself the JSON vertex object, so it is decoded
// twice. The origin is always appended to close the loop.
func DecodePayload(body []byte) (Chain, error) {
	inner, err := unwrapString(body)
	if err != nil {
		return nil, err
	}
	c, err := DecodeVertices(inner)
	if err != nil {
		return nil, err
	}
	return c.WithClosure(), nil
}

// DecodeVertices decodes a plain {"vertices": [[x,y,z], ...]} object.
// A missing or null vertex list decodes to an empty chain.
func DecodeVertices(data []byte) (Chain, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	c := make(Chain, 0, len(p.Vertices))
	for i, v := range p.Vertices {
		pt, ok := geometry.FromSlice(v)
		if !ok {
			return nil, fmt.Errorf("%w: vertex %d has %d components, expected 3", ErrMalformedPayload, i, len(v))
		}
		c = append(c, pt)
	}
	return c, nil
}

func unwrapString(body []byte) ([]byte, error) {
	var s string
	if err := json.Unmarshal(body, &s); err != nil {
		return nil, fmt.Errorf("%w: outer layer is not a JSON string: %v", ErrMalformedPayload, err)
	}
	return []byte(s), nil
}

func isQuoted(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '"'
}
