// Copyright Notice:
// Copyright 2018-2026 DMTF. All rights reserved.
// License: BSD 3-Clause License. For full text see link: https://github.com/DMTF/Redfish-URI-Validator/blob/master/LICENSE.md

// Package cli implements the command-line interface for the Redfish URI
// Validator.
//
// # Commands
//
// validate - crawl a service (or load a saved crawl) and verify URIs:
//
//	redfish-uri-validator validate -u USER -p PASS -r https://HOST --openapi openapi.yaml
//	redfish-uri-validator validate --payloads crawl.json --openapi openapi.yaml
//	redfish-uri-validator validate ... --fail-on-error   # CI gate
//
// crawl - capture a service's full resource set for offline validation:
//
//	redfish-uri-validator crawl -u USER -p PASS -r https://HOST --output crawl.json
//
// # Global Flags
//
//	--debug      Enable debug logging
//	--log-json   Output logs in JSON format
//
// # Environment Variables
//
//	LOG_LEVEL    Set logging verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  Completed run (a report is always produced, even if every resource failed)
//	1  Collaborator failure: the specification could not be loaded, or the
//	   service could not be authenticated/retrieved. With --fail-on-error,
//	   also returned when any resource fails validation.
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'main.version=1.2.0'" ./cmd/redfish-uri-validator
package cli
