// Copyright Notice:
// Copyright 2018-2026 DMTF. All rights reserved.
// License: BSD 3-Clause License. For full text see link: https://github.com/DMTF/Redfish-URI-Validator/blob/master/LICENSE.md

// Package resource models the tree-shaped payloads retrieved from a Redfish
// service. Payloads are decoded into a tagged Node variant (scalar, mapping,
// sequence) so that traversal code can switch on the variant instead of
// inspecting runtime types, and mapping property order is preserved for
// deterministic traversal and round-trip serialization.
package resource
