// Copyright Notice:
// Copyright 2018-2026 DMTF. All rights reserved.
// License: BSD 3-Clause License. For full text see link: https://github.com/DMTF/Redfish-URI-Validator/blob/master/LICENSE.md

package validate

import (
	"github.com/DMTF/Redfish-URI-Validator/pkg/header"
	"github.com/DMTF/Redfish-URI-Validator/pkg/resource"
)

// Status is one validation outcome.
type Status string

const (
	// StatusPass indicates the identifier matched a specification path.
	StatusPass Status = "Pass"

	// StatusFail indicates the identifier matched nothing and is not an
	// excused exception.
	StatusFail Status = "Fail"

	// StatusWarning indicates an OEM resource absent from the specification;
	// recorded but non-fatal.
	StatusWarning Status = "Warning"
)

// Verdict is the outcome for one identifier. Fail and Warning always carry a
// Details string explaining the cause; Pass carries the literal "Pass".
type Verdict struct {
	Result  Status `json:"Result" yaml:"result"`
	Details string `json:"Details" yaml:"details"`
}

// Result is the aggregate outcome of one validation run.
//
// Invariant: TotalPass + TotalFail + TotalWarn equals the number of
// classified resources. Resources excused by an exception marker are excluded
// entirely and contribute to nothing.
type Result struct {
	// Header describes the run: kind, API version, run id, tool version,
	// service address, specification source.
	Header *header.Header `json:"header,omitempty" yaml:"header,omitempty"`

	// URIs maps each classified identifier to its verdict. Insertion order is
	// irrelevant; reporting sorts by identifier.
	URIs map[string]Verdict `json:"URIs" yaml:"uris"`

	// Orphans holds resources lacking an identifier, in encounter order, with
	// their payloads stored verbatim for reporting. Every orphan counts as
	// Fail.
	Orphans []*resource.Resource `json:"Orphans" yaml:"orphans"`

	TotalPass int `json:"TotalPass" yaml:"totalPass"`
	TotalFail int `json:"TotalFail" yaml:"totalFail"`
	TotalWarn int `json:"TotalWarn" yaml:"totalWarn"`
}

// NewResult creates an empty Result.
func NewResult() *Result {
	return &Result{
		URIs: make(map[string]Verdict),
	}
}
