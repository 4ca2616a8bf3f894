// Copyright Notice:
// Copyright 2018-2026 DMTF. All rights reserved.
// License: BSD 3-Clause License. For full text see link: https://github.com/DMTF/Redfish-URI-Validator/blob/master/LICENSE.md

package crawler

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/DMTF/Redfish-URI-Validator/pkg/resource"
)

// Crawl retrieves the full resource set reachable from the service root by
// following every embedded identifier reference, breadth-first. Each frontier
// is fetched with a bounded worker pool; resources are recorded in retrieval
// order. A failure on the root aborts the crawl; failures on individual links
// are logged and skipped, since broken references are themselves findings for
// the validation pass.
func (c *Client) Crawl(ctx context.Context) (*resource.Collection, error) {
	start := time.Now()
	defer func() {
		crawlDuration.Observe(time.Since(start).Seconds())
	}()

	root, err := c.get(ctx, resource.ServiceRoot)
	if err != nil {
		crawlRequests.WithLabelValues("error").Inc()
		return nil, err
	}
	crawlRequests.WithLabelValues("success").Inc()

	col := resource.NewCollection(root)
	visited := map[string]struct{}{
		resource.ServiceRoot: {},
		"/redfish/v1":        {},
	}
	frontier := referencedURIs(root, visited)

	for len(frontier) > 0 {
		var mu sync.Mutex
		var fetched []*resource.Resource
		var next []string

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(c.workers)
		for _, uri := range frontier {
			g.Go(func() error {
				res, err := c.get(gctx, uri)
				if err != nil {
					crawlRequests.WithLabelValues("error").Inc()
					if gctx.Err() != nil {
						return gctx.Err()
					}
					slog.Warn("failed to retrieve resource, skipping", "uri", uri, "error", err)
					return nil
				}
				crawlRequests.WithLabelValues("success").Inc()

				mu.Lock()
				fetched = append(fetched, res)
				next = append(next, referencedURIs(res, visited)...)
				mu.Unlock()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		for _, res := range fetched {
			col.Add(res)
		}
		frontier = next
	}

	crawlResources.Set(float64(col.Len()))
	slog.Debug("crawl completed", "resources", col.Len(), "duration", time.Since(start))
	return col, nil
}

// referencedURIs collects every identifier referenced by the resource that
// has not been visited yet, marking each as visited. Fragment references
// point inside an already-retrieved payload and are not followed.
func referencedURIs(res *resource.Resource, visited map[string]struct{}) []string {
	var out []string
	stack := []*resource.Node{res.Root()}

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch node.Kind() {
		case resource.KindMapping:
			for _, key := range node.Keys() {
				child, _ := node.Property(key)
				if key == resource.IdentifierProperty {
					if uri, ok := child.StringValue(); ok && followable(uri) {
						if _, seen := visited[uri]; !seen {
							visited[uri] = struct{}{}
							out = append(out, uri)
						}
					}
					continue
				}
				stack = append(stack, child)
			}
		case resource.KindSequence:
			stack = append(stack, node.Items()...)
		}
	}
	return out
}

func followable(uri string) bool {
	return strings.HasPrefix(uri, "/redfish/") && !strings.Contains(uri, "#")
}
