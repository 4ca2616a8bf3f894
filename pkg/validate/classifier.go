// Copyright Notice:
// Copyright 2018-2026 DMTF. All rights reserved.
// License: BSD 3-Clause License. For full text see link: https://github.com/DMTF/Redfish-URI-Validator/blob/master/LICENSE.md

package validate

import "fmt"

// ExceptionMarkers are annotation names whose presence anywhere in a
// reference path excuses a resource from requiring a direct template match.
// Such resources are excluded from the result entirely, not merely passed.
var ExceptionMarkers = []string{
	"@Redfish.Settings",
	"@Redfish.ActionInfo",
	"@Redfish.CollectionCapabilities",
}

// OemProperty marks vendor extension subtrees; unmatched resources reached
// through one are recorded as warnings rather than failures.
const OemProperty = "Oem"

// Classify combines the direct-match result and, for misses, the reference
// path into a verdict. The second return value is true when the resource is
// an excused exception and must be excluded from the result entirely.
//
// The marker check fires on any segment of the reference path, not only the
// immediate parent. Matching anywhere along the chain is the established
// behavior; a marker between the root and the miss is taken as excusing it.
func Classify(uri string, matched bool, refPath []string) (Verdict, bool) {
	if matched {
		return Verdict{Result: StatusPass, Details: "Pass"}, false
	}

	for _, segment := range refPath {
		for _, marker := range ExceptionMarkers {
			if segment == marker {
				return Verdict{}, true
			}
		}
	}

	for _, segment := range refPath {
		if segment == OemProperty {
			return Verdict{
				Result:  StatusWarning,
				Details: fmt.Sprintf("OEM resource '%s' was not found in the OpenAPI specification", uri),
			}, false
		}
	}

	return Verdict{
		Result:  StatusFail,
		Details: fmt.Sprintf("Resource '%s' was not found in the OpenAPI specification", uri),
	}, false
}
