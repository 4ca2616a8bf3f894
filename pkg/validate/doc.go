// Copyright Notice:
// Copyright 2018-2026 DMTF. All rights reserved.
// License: BSD 3-Clause License. For full text see link: https://github.com/DMTF/Redfish-URI-Validator/blob/master/LICENSE.md

// Package validate classifies crawled resources against the specification's
// path set and aggregates the results.
//
// # Overview
//
// Each resource identifier is first tested for a direct template match. On a
// miss, the reference path from the service root to the resource is computed
// and decides the outcome:
//
//   - a settings/action-info/collection-capabilities annotation on the path
//     excuses the resource entirely (excluded from the result)
//   - an Oem segment yields a Warning
//   - anything else yields a Fail
//
// Resources lacking an identifier are recorded as orphans and counted as
// failures with their payloads kept verbatim for reporting.
//
// # Usage
//
//	v := validate.New(validate.WithVersion(version))
//	result, err := v.Validate(ctx, collection, pathSet)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Pass: %d, Fail: %d, Warning: %d\n",
//	    result.TotalPass, result.TotalFail, result.TotalWarn)
//
// The run is single-threaded and CPU-bound; the context is only consulted
// between resources. Running twice on the same inputs yields identical
// totals and verdicts.
package validate
