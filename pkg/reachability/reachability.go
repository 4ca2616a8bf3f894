// Copyright Notice:
// Copyright 2018-2026 DMTF. All rights reserved.
// License: BSD 3-Clause License. For full text see link: https://github.com/DMTF/Redfish-URI-Validator/blob/master/LICENSE.md

// Package reachability discovers how an identifier is referenced within the
// crawled resource graph. When a resource has no direct template match, the
// property-name chain from the service root to its referencing container
// decides whether the miss is an expected exception (settings, action info,
// OEM extensions) or a genuine failure.
package reachability

import (
	"log/slog"

	"github.com/DMTF/Redfish-URI-Validator/pkg/resource"
)

// SkippedProperties are properties known to hold non-containment
// relationship data. A reference found under one of these does not indicate
// structural ownership, so the scan does not descend into them.
var SkippedProperties = []string{
	"Links",
	"PoweredBy",
	"CooledBy",
	"RelatedItem",
	"OriginOfCondition",
	"MaintenanceWindowResource",
	"RedundancySet",
	"OriginResources",
}

func isSkippedProperty(name string) bool {
	for _, p := range SkippedProperties {
		if name == p {
			return true
		}
	}
	return false
}

// BuildReferencePath finds the chain of property names that leads from the
// service root down to the first resource referencing target. The search is
// depth-first and stops at the first structural match per level; when the
// graph does not connect back to the root, the partially built chain is
// returned. A visited set keyed by identifier bounds the walk on cyclic
// graphs.
func BuildReferencePath(target string, col *resource.Collection) []string {
	var path []string
	visited := make(map[string]struct{})

	for !resource.IsServiceRoot(target) {
		if _, seen := visited[target]; seen {
			slog.Debug("reference path search revisited identifier, stopping", "uri", target)
			break
		}
		visited[target] = struct{}{}

		containerURI, partial, found := findContainer(target, col)
		if !found {
			// Disconnected graph; the partial chain is still usable for
			// exception-marker detection.
			break
		}
		path = append(partial, path...)
		target = containerURI
	}
	return path
}

// findContainer scans every resource except the target itself for an embedded
// reference to target, returning the container's identifier and the property
// chain to the reference.
func findContainer(target string, col *resource.Collection) (string, []string, bool) {
	for _, res := range col.Resources() {
		uri, ok := res.ID()
		if !ok || uri == target {
			continue
		}
		if partial, found := scanNode(res.Root(), target); found {
			return uri, partial, true
		}
	}
	return "", nil, false
}

type scanFrame struct {
	node *resource.Node
	path []string
}

// scanNode walks a resource tree looking for an embedded object whose
// identifier equals target, returning the chain of property names traversed.
// The walk is an explicit stack in document order; nested sequences of
// objects are searched, properties in the skip-list are not.
func scanNode(root *resource.Node, target string) ([]string, bool) {
	stack := []scanFrame{{node: root}}

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if id, ok := frame.node.Property(resource.IdentifierProperty); ok {
			if s, isStr := id.StringValue(); isStr && s == target {
				return frame.path, true
			}
		}

		// Push children in reverse so document order is searched first.
		keys := frame.node.Keys()
		for i := len(keys) - 1; i >= 0; i-- {
			key := keys[i]
			if isSkippedProperty(key) {
				continue
			}
			child, _ := frame.node.Property(key)
			switch child.Kind() {
			case resource.KindMapping:
				stack = append(stack, scanFrame{node: child, path: childPath(frame.path, key)})
			case resource.KindSequence:
				items := child.Items()
				for j := len(items) - 1; j >= 0; j-- {
					if items[j].Kind() == resource.KindMapping {
						stack = append(stack, scanFrame{node: items[j], path: childPath(frame.path, key)})
					}
				}
			}
		}
	}
	return nil, false
}

func childPath(parent []string, key string) []string {
	path := make([]string, 0, len(parent)+1)
	path = append(path, parent...)
	return append(path, key)
}
