// Copyright Notice:
// Copyright 2018-2026 DMTF. All rights reserved.
// License: BSD 3-Clause License. For full text see link: https://github.com/DMTF/Redfish-URI-Validator/blob/master/LICENSE.md

package spec

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rverrors "github.com/DMTF/Redfish-URI-Validator/pkg/errors"
)

const minimalOpenAPI = `openapi: 3.0.0
info:
  title: Redfish
  version: "2022.3"
paths:
  /redfish/v1/Chassis/{ChassisId}:
    get:
      responses:
        "200":
          description: Chassis
  /redfish/v1/:
    get:
      responses:
        "200":
          description: Service root
  /redfish/v1/Chassis:
    get:
      responses:
        "200":
          description: Chassis collection
`

func writeSpecFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "openapi.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadOpenAPI(t *testing.T) {
	ps, err := LoadOpenAPI(writeSpecFile(t, minimalOpenAPI))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/redfish/v1/",
		"/redfish/v1/Chassis",
		"/redfish/v1/Chassis/{ChassisId}",
	}, ps.Templates())
	assert.True(t, ps.MatchesAny("/redfish/v1/Chassis/1U"))
}

func TestLoadOpenAPI_MissingFile(t *testing.T) {
	_, err := LoadOpenAPI(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	var se *rverrors.StructuredError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, rverrors.ErrCodeInvalidSpec, se.Code)
}

func TestLoadOpenAPI_NoPaths(t *testing.T) {
	_, err := LoadOpenAPI(writeSpecFile(t, "openapi: 3.0.0\ninfo:\n  title: Empty\n  version: \"1\"\npaths: {}\n"))
	require.Error(t, err)

	var se *rverrors.StructuredError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, rverrors.ErrCodeInvalidSpec, se.Code)
}
