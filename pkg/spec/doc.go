// Copyright Notice:
// Copyright 2018-2026 DMTF. All rights reserved.
// License: BSD 3-Clause License. For full text see link: https://github.com/DMTF/Redfish-URI-Validator/blob/master/LICENSE.md

// Package spec loads the OpenAPI specification and matches concrete resource
// identifiers against its templated paths.
//
// A specification path such as
//
//	/redfish/v1/Chassis/{ChassisId}
//
// is compiled into an anchored matcher where each {Placeholder} segment
// matches one or more characters excluding the path separator. Matching is
// exact: a template matches the whole identifier or not at all.
package spec
