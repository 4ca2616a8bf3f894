// Copyright Notice:
// Copyright 2018-2026 DMTF. All rights reserved.
// License: BSD 3-Clause License. For full text see link: https://github.com/DMTF/Redfish-URI-Validator/blob/master/LICENSE.md

// Package report renders validation results.
//
// Structured output (json, yaml, or a flattened table) goes through Writer;
// the standalone HTML summary, matching the classic report layout, goes
// through Generator. The core produces the result value only and holds no
// opinion on presentation; everything the report needs beyond the result
// (tool version, logo, service address) arrives through Config.
package report
