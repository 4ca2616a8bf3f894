// Copyright Notice:
// Copyright 2018-2026 DMTF. All rights reserved.
// License: BSD 3-Clause License. For full text see link: https://github.com/DMTF/Redfish-URI-Validator/blob/master/LICENSE.md

package resource

import (
	"encoding/json"
	"fmt"
)

const (
	// IdentifierProperty is the property holding a resource's addressable path.
	IdentifierProperty = "@odata.id"

	// TypeProperty is the property holding a resource's type tag.
	TypeProperty = "@odata.type"

	// ServiceRoot is the canonical service root path.
	ServiceRoot = "/redfish/v1/"
)

// IsServiceRoot reports whether the URI denotes the service root, with or
// without the trailing separator.
func IsServiceRoot(uri string) bool {
	return uri == "/redfish/v1/" || uri == "/redfish/v1"
}

// Resource is one retrieved record from the service. The core never mutates
// a Resource after construction.
type Resource struct {
	root *Node
}

// NewResource wraps a decoded node tree as a Resource.
func NewResource(root *Node) *Resource {
	return &Resource{root: root}
}

// Parse decodes a raw JSON payload into a Resource.
func Parse(data []byte) (*Resource, error) {
	var node Node
	if err := json.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to parse resource payload: %w", err)
	}
	if node.Kind() != KindMapping {
		return nil, fmt.Errorf("resource payload is not an object")
	}
	return &Resource{root: &node}, nil
}

// Root returns the payload tree.
func (r *Resource) Root() *Node {
	return r.root
}

// ID returns the resource's identifier path, if present as a string.
func (r *Resource) ID() (string, bool) {
	return r.stringProperty(IdentifierProperty)
}

// Type returns the resource's type tag, if present as a string.
func (r *Resource) Type() (string, bool) {
	return r.stringProperty(TypeProperty)
}

func (r *Resource) stringProperty(name string) (string, bool) {
	if r == nil || r.root == nil {
		return "", false
	}
	prop, ok := r.root.Property(name)
	if !ok {
		return "", false
	}
	return prop.StringValue()
}

// MarshalJSON emits the payload as originally retrieved, property order
// preserved.
func (r *Resource) MarshalJSON() ([]byte, error) {
	return r.root.MarshalJSON()
}

// UnmarshalJSON decodes a payload into the Resource.
func (r *Resource) UnmarshalJSON(data []byte) error {
	res, err := Parse(data)
	if err != nil {
		return err
	}
	r.root = res.root
	return nil
}

// MarshalYAML emits the payload with property order preserved.
func (r *Resource) MarshalYAML() (any, error) {
	return r.root.MarshalYAML()
}

// Collection is the full crawl result, in retrieval order. It may contain
// resources lacking an identifier.
type Collection struct {
	resources []*Resource
}

// NewCollection creates a Collection from the given resources.
func NewCollection(resources ...*Resource) *Collection {
	return &Collection{resources: resources}
}

// Add appends a resource to the collection.
func (c *Collection) Add(r *Resource) {
	c.resources = append(c.resources, r)
}

// Resources returns the resources in retrieval order.
func (c *Collection) Resources() []*Resource {
	if c == nil {
		return nil
	}
	return c.resources
}

// Len returns the number of resources.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.resources)
}

// MarshalJSON emits the collection as a JSON array of payloads.
func (c *Collection) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.resources)
}

// UnmarshalJSON decodes a JSON array of payloads, as produced by the crawl
// command, into the collection.
func (c *Collection) UnmarshalJSON(data []byte) error {
	var resources []*Resource
	if err := json.Unmarshal(data, &resources); err != nil {
		return fmt.Errorf("failed to parse resource collection: %w", err)
	}
	c.resources = resources
	return nil
}

// MarshalYAML emits the collection as a YAML sequence of payloads.
func (c *Collection) MarshalYAML() (any, error) {
	out := make([]any, 0, len(c.resources))
	for _, r := range c.resources {
		y, err := r.MarshalYAML()
		if err != nil {
			return nil, err
		}
		out = append(out, y)
	}
	return out, nil
}
