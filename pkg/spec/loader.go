// Copyright Notice:
// Copyright 2018-2026 DMTF. All rights reserved.
// License: BSD 3-Clause License. For full text see link: https://github.com/DMTF/Redfish-URI-Validator/blob/master/LICENSE.md

package spec

import (
	"fmt"
	"log/slog"

	"github.com/getkin/kin-openapi/openapi3"

	rverrors "github.com/DMTF/Redfish-URI-Validator/pkg/errors"
)

// LoadOpenAPI reads an OpenAPI document (YAML or JSON) and compiles its path
// keys into a PathSet. Only the raw template strings are consumed; the
// operation schemas are not needed for URI validation.
func LoadOpenAPI(path string) (*PathSet, error) {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = true

	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, rverrors.Wrap(rverrors.ErrCodeInvalidSpec,
			fmt.Sprintf("failed to load OpenAPI specification %q", path), err)
	}
	if doc.Paths == nil || doc.Paths.Len() == 0 {
		return nil, rverrors.Newf(rverrors.ErrCodeInvalidSpec,
			"OpenAPI specification %q declares no paths", path)
	}

	raw := make([]string, 0, doc.Paths.Len())
	for template := range doc.Paths.Map() {
		raw = append(raw, template)
	}

	pathSet, err := NewPathSet(raw)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded OpenAPI specification", "file", path, "paths", pathSet.Len())
	return pathSet, nil
}
