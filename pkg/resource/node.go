// Copyright Notice:
// Copyright 2018-2026 DMTF. All rights reserved.
// License: BSD 3-Clause License. For full text see link: https://github.com/DMTF/Redfish-URI-Validator/blob/master/LICENSE.md

package resource

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Kind discriminates the Node variant.
type Kind int

const (
	// KindScalar is a string, number, boolean, or null value.
	KindScalar Kind = iota

	// KindMapping is an object of named properties.
	KindMapping

	// KindSequence is an ordered array of values.
	KindSequence
)

// Node is one value in a resource tree. A Node is exactly one of a scalar,
// a mapping, or a sequence; traversal code switches on Kind rather than
// inspecting runtime types. Mappings preserve document property order so
// traversal and serialization are deterministic.
type Node struct {
	kind  Kind
	keys  []string
	props map[string]*Node
	items []*Node
	value any
}

// NewScalar creates a scalar Node.
func NewScalar(v any) *Node {
	return &Node{kind: KindScalar, value: v}
}

// NewMapping creates an empty mapping Node.
func NewMapping() *Node {
	return &Node{kind: KindMapping, props: make(map[string]*Node)}
}

// NewSequence creates a sequence Node from the given items.
func NewSequence(items ...*Node) *Node {
	return &Node{kind: KindSequence, items: items}
}

// Kind returns the variant of this node.
func (n *Node) Kind() Kind {
	return n.kind
}

// Keys returns the property names of a mapping node in document order.
// It returns nil for non-mapping nodes.
func (n *Node) Keys() []string {
	return n.keys
}

// Property returns the named property of a mapping node.
func (n *Node) Property(name string) (*Node, bool) {
	if n.kind != KindMapping {
		return nil, false
	}
	v, ok := n.props[name]
	return v, ok
}

// Set adds or replaces a property on a mapping node, preserving first-set
// order for new keys. It panics on non-mapping nodes; builders only.
func (n *Node) Set(name string, v *Node) *Node {
	if n.kind != KindMapping {
		panic("resource: Set on non-mapping node")
	}
	if _, exists := n.props[name]; !exists {
		n.keys = append(n.keys, name)
	}
	n.props[name] = v
	return n
}

// Items returns the elements of a sequence node.
func (n *Node) Items() []*Node {
	return n.items
}

// Value returns the value of a scalar node.
func (n *Node) Value() any {
	return n.value
}

// StringValue returns the node's value when it is a string scalar.
func (n *Node) StringValue() (string, bool) {
	if n.kind != KindScalar {
		return "", false
	}
	s, ok := n.value.(string)
	return s, ok
}

// UnmarshalJSON decodes arbitrary JSON into the tagged variant, preserving
// mapping key order.
func (n *Node) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	node, err := decodeNode(dec)
	if err != nil {
		return err
	}
	*n = *node
	return nil
}

func decodeNode(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeFromToken(dec, tok)
}

func decodeFromToken(dec *json.Decoder, tok json.Token) (*Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			node := NewMapping()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key token %v", keyTok)
				}
				child, err := decodeNode(dec)
				if err != nil {
					return nil, err
				}
				node.Set(key, child)
			}
			// consume closing '}'
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return node, nil
		case '[':
			node := &Node{kind: KindSequence}
			for dec.More() {
				child, err := decodeNode(dec)
				if err != nil {
					return nil, err
				}
				node.items = append(node.items, child)
			}
			// consume closing ']'
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return node, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", t)
		}
	default:
		return NewScalar(tok), nil
	}
}

// MarshalJSON encodes the node back to JSON with mapping keys in document
// order.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.encodeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *Node) encodeJSON(w io.Writer) error {
	switch n.kind {
	case KindMapping:
		if _, err := io.WriteString(w, "{"); err != nil {
			return err
		}
		for i, key := range n.keys {
			if i > 0 {
				if _, err := io.WriteString(w, ","); err != nil {
					return err
				}
			}
			kb, err := json.Marshal(key)
			if err != nil {
				return err
			}
			if _, err := w.Write(kb); err != nil {
				return err
			}
			if _, err := io.WriteString(w, ":"); err != nil {
				return err
			}
			if err := n.props[key].encodeJSON(w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "}")
		return err
	case KindSequence:
		if _, err := io.WriteString(w, "["); err != nil {
			return err
		}
		for i, item := range n.items {
			if i > 0 {
				if _, err := io.WriteString(w, ","); err != nil {
					return err
				}
			}
			if err := item.encodeJSON(w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "]")
		return err
	default:
		b, err := json.Marshal(n.value)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}
}

// MarshalYAML encodes the node as a yaml.Node so mapping key order survives
// YAML serialization.
func (n *Node) MarshalYAML() (any, error) {
	return n.yamlNode()
}

func (n *Node) yamlNode() (*yaml.Node, error) {
	switch n.kind {
	case KindMapping:
		out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range n.keys {
			keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
			valNode, err := n.props[key].yamlNode()
			if err != nil {
				return nil, err
			}
			out.Content = append(out.Content, keyNode, valNode)
		}
		return out, nil
	case KindSequence:
		out := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range n.items {
			child, err := item.yamlNode()
			if err != nil {
				return nil, err
			}
			out.Content = append(out.Content, child)
		}
		return out, nil
	default:
		out := &yaml.Node{}
		if err := out.Encode(scalarForYAML(n.value)); err != nil {
			return nil, err
		}
		return out, nil
	}
}

func scalarForYAML(v any) any {
	// json.Number round-trips poorly through yaml; convert to a native number.
	if num, ok := v.(json.Number); ok {
		if i, err := num.Int64(); err == nil {
			return i
		}
		if f, err := num.Float64(); err == nil {
			return f
		}
		return num.String()
	}
	return v
}
