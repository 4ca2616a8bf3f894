// Copyright Notice:
// Copyright 2018-2026 DMTF. All rights reserved.
// License: BSD 3-Clause License. For full text see link: https://github.com/DMTF/Redfish-URI-Validator/blob/master/LICENSE.md

package crawler

import (
	"encoding/json"
	"fmt"
	"os"

	rverrors "github.com/DMTF/Redfish-URI-Validator/pkg/errors"
	"github.com/DMTF/Redfish-URI-Validator/pkg/resource"
)

// LoadPayloads reads a previously saved crawl (a JSON array of resource
// payloads, as written by the crawl command) so a validation run can work
// offline against a captured service.
func LoadPayloads(path string) (*resource.Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, rverrors.Wrap(rverrors.ErrCodeTransport,
			fmt.Sprintf("failed to read payload file %q", path), err)
	}

	var col resource.Collection
	if err := json.Unmarshal(data, &col); err != nil {
		return nil, rverrors.Wrap(rverrors.ErrCodeTransport,
			fmt.Sprintf("failed to parse payload file %q", path), err)
	}
	return &col, nil
}
