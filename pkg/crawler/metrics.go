// Copyright Notice:
// Copyright 2018-2026 DMTF. All rights reserved.
// License: BSD 3-Clause License. For full text see link: https://github.com/DMTF/Redfish-URI-Validator/blob/master/LICENSE.md

package crawler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	crawlDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rfuv_crawl_duration_seconds",
			Help:    "Time taken to crawl the full resource set",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
		},
	)

	crawlRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rfuv_crawl_requests_total",
			Help: "Resource retrieval attempts, by status",
		},
		[]string{"status"}, // success or error
	)

	crawlResources = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rfuv_crawl_resources",
			Help: "Number of resources in the last completed crawl",
		},
	)
)
