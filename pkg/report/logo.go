// Copyright Notice:
// Copyright 2018-2026 DMTF. All rights reserved.
// License: BSD 3-Clause License. For full text see link: https://github.com/DMTF/Redfish-URI-Validator/blob/master/LICENSE.md

package report

// DefaultLogo is the base64-encoded GIF shown in report headers when no logo
// is configured. Builds that ship the full Redfish logo replace it through
// Config.Logo.
const DefaultLogo = "R0lGODlhAQABAIAAAP///wAAACH5BAEAAAAALAAAAAABAAEAAAICRAEAOw=="
