// Copyright Notice:
// Copyright 2018-2026 DMTF. All rights reserved.
// License: BSD 3-Clause License. For full text see link: https://github.com/DMTF/Redfish-URI-Validator/blob/master/LICENSE.md

package validate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	validationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rfuv_validation_duration_seconds",
			Help:    "Time taken to classify a full resource collection",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 5, 10, 30},
		},
	)

	validationResources = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rfuv_validation_resources_total",
			Help: "Resources classified, by outcome",
		},
		[]string{"outcome"}, // pass, fail, warning, skipped, orphan
	)
)
