// Copyright Notice:
// Copyright 2018-2026 DMTF. All rights reserved.
// License: BSD 3-Clause License. For full text see link: https://github.com/DMTF/Redfish-URI-Validator/blob/master/LICENSE.md

package spec

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	rverrors "github.com/DMTF/Redfish-URI-Validator/pkg/errors"
)

// Template is a compiled specification path. Placeholder segments of the form
// {Alnum} match exactly one non-empty path segment; the match is anchored to
// the whole identifier.
type Template struct {
	raw string
	re  *regexp.Regexp
}

// CompileTemplate compiles a raw path template. Malformed templates
// (unbalanced braces, empty or non-alphanumeric placeholder names) are
// rejected here, before any resource is processed.
func CompileTemplate(raw string) (Template, error) {
	var pattern strings.Builder
	pattern.WriteString("^")

	rest := raw
	for len(rest) > 0 {
		open := strings.IndexByte(rest, '{')
		closing := strings.IndexByte(rest, '}')
		if open < 0 {
			if closing >= 0 {
				return Template{}, malformed(raw, "unbalanced '}'")
			}
			pattern.WriteString(regexp.QuoteMeta(rest))
			break
		}
		if closing >= 0 && closing < open {
			return Template{}, malformed(raw, "unbalanced '}'")
		}
		pattern.WriteString(regexp.QuoteMeta(rest[:open]))
		rest = rest[open+1:]

		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return Template{}, malformed(raw, "unbalanced '{'")
		}
		name := rest[:end]
		if !isAlphanumeric(name) {
			return Template{}, malformed(raw, fmt.Sprintf("invalid placeholder name %q", name))
		}
		pattern.WriteString("[^/]+")
		rest = rest[end+1:]
	}
	pattern.WriteString("$")

	re, err := regexp.Compile(pattern.String())
	if err != nil {
		return Template{}, rverrors.Wrap(rverrors.ErrCodeInvalidSpec,
			fmt.Sprintf("failed to compile path template %q", raw), err)
	}
	return Template{raw: raw, re: re}, nil
}

func malformed(raw, reason string) error {
	return rverrors.Newf(rverrors.ErrCodeInvalidSpec, "malformed path template %q: %s", raw, reason)
}

func isAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
			continue
		}
		return false
	}
	return true
}

// Matches reports whether the identifier matches the template. There is no
// partial-match or trailing-slash leniency beyond what the template encodes.
func (t Template) Matches(uri string) bool {
	return t.re.MatchString(uri)
}

// String returns the raw template text.
func (t Template) String() string {
	return t.raw
}

// PathSet is the set of all path templates declared by the specification.
// Templates are held in lexicographic order so matching traces are
// reproducible.
type PathSet struct {
	templates []Template
}

// NewPathSet compiles the raw templates into a PathSet. Any malformed
// template fails the whole construction.
func NewPathSet(raw []string) (*PathSet, error) {
	sorted := make([]string, len(raw))
	copy(sorted, raw)
	sort.Strings(sorted)

	templates := make([]Template, 0, len(sorted))
	for _, r := range sorted {
		t, err := CompileTemplate(r)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return &PathSet{templates: templates}, nil
}

// MatchesAny reports whether any template matches the identifier, stopping at
// the first match.
func (p *PathSet) MatchesAny(uri string) bool {
	for _, t := range p.templates {
		if t.Matches(uri) {
			return true
		}
	}
	return false
}

// Templates returns the raw templates in lexicographic order.
func (p *PathSet) Templates() []string {
	out := make([]string, len(p.templates))
	for i, t := range p.templates {
		out[i] = t.raw
	}
	return out
}

// Len returns the number of templates.
func (p *PathSet) Len() int {
	return len(p.templates)
}
