// Copyright Notice:
// Copyright 2018-2026 DMTF. All rights reserved.
// License: BSD 3-Clause License. For full text see link: https://github.com/DMTF/Redfish-URI-Validator/blob/master/LICENSE.md

package validate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DMTF/Redfish-URI-Validator/pkg/resource"
	"github.com/DMTF/Redfish-URI-Validator/pkg/spec"
	"github.com/DMTF/Redfish-URI-Validator/pkg/validate"
)

func mustCollection(t *testing.T, payloads ...string) *resource.Collection {
	t.Helper()
	col := resource.NewCollection()
	for _, p := range payloads {
		res, err := resource.Parse([]byte(p))
		require.NoError(t, err)
		col.Add(res)
	}
	return col
}

func mustPathSet(t *testing.T, templates ...string) *spec.PathSet {
	t.Helper()
	ps, err := spec.NewPathSet(templates)
	require.NoError(t, err)
	return ps
}

func TestValidate_DirectMatchPasses(t *testing.T) {
	col := mustCollection(t, `{"@odata.id": "/redfish/v1/"}`)
	ps := mustPathSet(t, "/redfish/v1/")

	result, err := validate.New().Validate(context.Background(), col, ps)
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalPass)
	assert.Equal(t, 0, result.TotalFail)
	assert.Equal(t, 0, result.TotalWarn)
	assert.Equal(t, validate.Verdict{Result: validate.StatusPass, Details: "Pass"},
		result.URIs["/redfish/v1/"])
}

func TestValidate_OrphanCountsAsFail(t *testing.T) {
	col := mustCollection(t, `{"foo": "bar"}`)
	ps := mustPathSet(t)

	result, err := validate.New().Validate(context.Background(), col, ps)
	require.NoError(t, err)

	assert.Equal(t, 0, result.TotalPass)
	assert.Equal(t, 1, result.TotalFail)
	assert.Len(t, result.Orphans, 1)
	assert.Empty(t, result.URIs)
}

func TestValidate_OemResourceWarns(t *testing.T) {
	col := mustCollection(t,
		`{"@odata.id": "/redfish/v1/", "Chassis": {"@odata.id": "/redfish/v1/Chassis"}}`,
		`{"@odata.id": "/redfish/v1/Chassis", "Members": [{"@odata.id": "/redfish/v1/Chassis/1"}]}`,
		`{"@odata.id": "/redfish/v1/Chassis/1", "Oem": {"Acme": {"@odata.id": "/redfish/v1/Chassis/1/Oem/Acme"}}}`,
		`{"@odata.id": "/redfish/v1/Chassis/1/Oem/Acme"}`,
	)
	ps := mustPathSet(t, "/redfish/v1/", "/redfish/v1/Chassis", "/redfish/v1/Chassis/{ChassisId}")

	result, err := validate.New().Validate(context.Background(), col, ps)
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalPass)
	assert.Equal(t, 1, result.TotalWarn)
	assert.Equal(t, 0, result.TotalFail)

	verdict := result.URIs["/redfish/v1/Chassis/1/Oem/Acme"]
	assert.Equal(t, validate.StatusWarning, verdict.Result)
	assert.Contains(t, verdict.Details, "/redfish/v1/Chassis/1/Oem/Acme")
	assert.Contains(t, verdict.Details, "OEM resource")
}

func TestValidate_ExceptionMarkerExcludesResource(t *testing.T) {
	col := mustCollection(t,
		`{"@odata.id": "/redfish/v1/", "Systems": {"@odata.id": "/redfish/v1/Systems/1"}}`,
		`{"@odata.id": "/redfish/v1/Systems/1", "Bios": {"@Redfish.Settings": {"SettingsObject": {"@odata.id": "/redfish/v1/Systems/1/Bios/SD"}}}}`,
		`{"@odata.id": "/redfish/v1/Systems/1/Bios/SD"}`,
	)
	ps := mustPathSet(t, "/redfish/v1/", "/redfish/v1/Systems/{SystemId}")

	result, err := validate.New().Validate(context.Background(), col, ps)
	require.NoError(t, err)

	// The settings resource is excluded entirely: no verdict, no counter.
	_, present := result.URIs["/redfish/v1/Systems/1/Bios/SD"]
	assert.False(t, present)
	assert.Equal(t, 2, result.TotalPass)
	assert.Equal(t, 0, result.TotalFail)
	assert.Equal(t, 0, result.TotalWarn)
}

func TestValidate_LinksOnlyReferenceFails(t *testing.T) {
	// Reachable only through the Links skip-property: the reference path stays
	// empty, so the miss is a Fail, not a Warning.
	col := mustCollection(t,
		`{"@odata.id": "/redfish/v1/", "Links": {"Oem": {"Drives": {"@odata.id": "/redfish/v1/Drives/0"}}}}`,
		`{"@odata.id": "/redfish/v1/Drives/0"}`,
	)
	ps := mustPathSet(t, "/redfish/v1/")

	result, err := validate.New().Validate(context.Background(), col, ps)
	require.NoError(t, err)

	verdict := result.URIs["/redfish/v1/Drives/0"]
	assert.Equal(t, validate.StatusFail, verdict.Result)
	assert.Contains(t, verdict.Details, "was not found in the OpenAPI specification")
	assert.Equal(t, 1, result.TotalFail)
	assert.Equal(t, 0, result.TotalWarn)
}

func TestValidate_TotalsInvariant(t *testing.T) {
	col := mustCollection(t,
		`{"@odata.id": "/redfish/v1/"}`,
		`{"@odata.id": "/redfish/v1/Unknown"}`,
		`{"no": "id"}`,
	)
	ps := mustPathSet(t, "/redfish/v1/")

	result, err := validate.New().Validate(context.Background(), col, ps)
	require.NoError(t, err)

	classified := len(result.URIs) + len(result.Orphans)
	assert.Equal(t, classified, result.TotalPass+result.TotalFail+result.TotalWarn)
}

func TestValidate_Idempotent(t *testing.T) {
	col := mustCollection(t,
		`{"@odata.id": "/redfish/v1/", "Chassis": {"@odata.id": "/redfish/v1/Chassis"}}`,
		`{"@odata.id": "/redfish/v1/Chassis"}`,
		`{"@odata.id": "/redfish/v1/Mystery"}`,
		`{"orphan": true}`,
	)
	ps := mustPathSet(t, "/redfish/v1/", "/redfish/v1/Chassis")

	v := validate.New()
	first, err := v.Validate(context.Background(), col, ps)
	require.NoError(t, err)
	second, err := v.Validate(context.Background(), col, ps)
	require.NoError(t, err)

	assert.Equal(t, first.TotalPass, second.TotalPass)
	assert.Equal(t, first.TotalFail, second.TotalFail)
	assert.Equal(t, first.TotalWarn, second.TotalWarn)
	assert.Equal(t, first.URIs, second.URIs)
	assert.Equal(t, len(first.Orphans), len(second.Orphans))
}

func TestValidate_NilInputs(t *testing.T) {
	v := validate.New()
	_, err := v.Validate(context.Background(), nil, mustPathSet(t))
	assert.Error(t, err)

	_, err = v.Validate(context.Background(), resource.NewCollection(), nil)
	assert.Error(t, err)
}

func TestValidate_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	col := mustCollection(t, `{"@odata.id": "/redfish/v1/"}`)
	_, err := validate.New().Validate(ctx, col, mustPathSet(t, "/redfish/v1/"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestValidate_HeaderMetadata(t *testing.T) {
	col := mustCollection(t, `{"@odata.id": "/redfish/v1/"}`)
	ps := mustPathSet(t, "/redfish/v1/")

	v := validate.New(
		validate.WithVersion("9.9.9"),
		validate.WithService("https://bmc.example.com"),
		validate.WithSpecSource("openapi.yaml"),
	)
	result, err := v.Validate(context.Background(), col, ps)
	require.NoError(t, err)

	require.NotNil(t, result.Header)
	assert.Equal(t, validate.Kind, result.Header.Kind)
	assert.Equal(t, "9.9.9", result.Header.Metadata["tool-version"])
	assert.Equal(t, "https://bmc.example.com", result.Header.Metadata["service"])
	assert.Equal(t, "openapi.yaml", result.Header.Metadata["specification"])
	assert.NotEmpty(t, result.Header.Metadata["run-id"])
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		matched    bool
		refPath    []string
		wantResult validate.Status
		wantSkip   bool
	}{
		{"direct match", true, nil, validate.StatusPass, false},
		{"settings marker", false, []string{"Bios", "@Redfish.Settings"}, "", true},
		{"action info marker", false, []string{"@Redfish.ActionInfo"}, "", true},
		{"collection capabilities marker", false, []string{"@Redfish.CollectionCapabilities"}, "", true},
		{"marker wins over oem", false, []string{"Oem", "@Redfish.Settings"}, "", true},
		{"oem segment", false, []string{"Chassis", "Oem", "Acme"}, validate.StatusWarning, false},
		{"plain miss", false, []string{"Chassis", "Members"}, validate.StatusFail, false},
		{"empty path miss", false, nil, validate.StatusFail, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict, skip := validate.Classify("/redfish/v1/X", tt.matched, tt.refPath)
			assert.Equal(t, tt.wantSkip, skip)
			if !skip {
				assert.Equal(t, tt.wantResult, verdict.Result)
			}
		})
	}
}
