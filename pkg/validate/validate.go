// Copyright Notice:
// Copyright 2018-2026 DMTF. All rights reserved.
// License: BSD 3-Clause License. For full text see link: https://github.com/DMTF/Redfish-URI-Validator/blob/master/LICENSE.md

package validate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/DMTF/Redfish-URI-Validator/pkg/header"
	"github.com/DMTF/Redfish-URI-Validator/pkg/reachability"
	"github.com/DMTF/Redfish-URI-Validator/pkg/resource"
	"github.com/DMTF/Redfish-URI-Validator/pkg/spec"
)

const (
	// Kind is the kind recorded on validation results.
	Kind = "URIValidationResult"
)

// Validator checks every crawled resource identifier against the
// specification's path set.
type Validator struct {
	// Version is the tool version recorded on results.
	Version string

	// Service is the address of the validated service, recorded on results.
	Service string

	// SpecSource is the specification file the path set was loaded from,
	// recorded on results.
	SpecSource string
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithVersion returns an Option that sets the tool version string.
func WithVersion(version string) Option {
	return func(v *Validator) {
		v.Version = version
	}
}

// WithService returns an Option that records the validated service address.
func WithService(service string) Option {
	return func(v *Validator) {
		v.Service = service
	}
}

// WithSpecSource returns an Option that records the specification source.
func WithSpecSource(source string) Option {
	return func(v *Validator) {
		v.SpecSource = source
	}
}

// New creates a Validator with the provided options.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate classifies every resource in the collection against the path set.
//
// Resources without an identifier are recorded as orphans and counted as
// failures. Unmatched identifiers are traced through the resource graph; an
// exception marker on the trace excludes the resource entirely, an Oem
// segment downgrades the miss to a warning. Per-resource problems never abort
// the run; processing order only affects the orphan sequence, which preserves
// encounter order.
func (v *Validator) Validate(ctx context.Context, col *resource.Collection, paths *spec.PathSet) (*Result, error) {
	start := time.Now()

	if col == nil {
		return nil, fmt.Errorf("resource collection cannot be nil")
	}
	if paths == nil {
		return nil, fmt.Errorf("path set cannot be nil")
	}

	result := NewResult()
	result.Header = header.New(
		header.WithMetadata("run-id", uuid.New().String()),
		header.WithMetadata("tool-version", v.Version),
	)
	result.Header.Set(Kind)
	if v.Service != "" {
		result.Header.Metadata["service"] = v.Service
	}
	if v.SpecSource != "" {
		result.Header.Metadata["specification"] = v.SpecSource
	}

	skipped := 0
	for _, res := range col.Resources() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		uri, ok := res.ID()
		if !ok {
			result.Orphans = append(result.Orphans, res)
			result.TotalFail++
			validationResources.WithLabelValues("orphan").Inc()
			slog.Warn("resource payload has no identifier, recording as orphan")
			continue
		}

		matched := paths.MatchesAny(uri)
		var refPath []string
		if !matched {
			refPath = reachability.BuildReferencePath(uri, col)
			slog.Debug("no direct template match", "uri", uri, "referencePath", refPath)
		}

		verdict, excused := Classify(uri, matched, refPath)
		if excused {
			skipped++
			validationResources.WithLabelValues("skipped").Inc()
			slog.Debug("resource excused by exception marker", "uri", uri)
			continue
		}

		result.URIs[uri] = verdict
		switch verdict.Result {
		case StatusPass:
			result.TotalPass++
			validationResources.WithLabelValues("pass").Inc()
		case StatusWarning:
			result.TotalWarn++
			validationResources.WithLabelValues("warning").Inc()
		case StatusFail:
			result.TotalFail++
			validationResources.WithLabelValues("fail").Inc()
		}
	}

	duration := time.Since(start)
	validationDuration.Observe(duration.Seconds())
	result.Header.Metadata["duration"] = duration.String()

	slog.Debug("validation completed",
		"pass", result.TotalPass,
		"fail", result.TotalFail,
		"warn", result.TotalWarn,
		"skipped", skipped,
		"orphans", len(result.Orphans),
		"duration", duration)

	return result, nil
}
