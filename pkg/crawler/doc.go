// Copyright Notice:
// Copyright 2018-2026 DMTF. All rights reserved.
// License: BSD 3-Clause License. For full text see link: https://github.com/DMTF/Redfish-URI-Validator/blob/master/LICENSE.md

// Package crawler retrieves the full resource set from a Redfish service.
//
// The client authenticates through the Redfish session service (falling back
// to basic auth when none exists) and walks every @odata.id reference
// breadth-first from the service root. Retrieval is paced and bounded:
// requests run through a rate limiter and a fixed-size worker pool. The
// resulting Collection is handed to the validation core, which never
// initiates network calls itself.
//
// A crawl saved with the crawl command can be reloaded with LoadPayloads for
// offline validation.
package crawler
