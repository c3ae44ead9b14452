// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package dictionary

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loadErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "puzzle_dictionary_load_errors_total",
		Help: "Total dictionary load failures",
	})

	loadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "puzzle_dictionary_load_duration_seconds",
		Help:    "Duration of dictionary loading and index construction",
		Buckets: []float64{0.05, 0.1, 0.5, 1, 2.5, 5, 10},
	})

	scanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "puzzle_dictionary_scan_duration_seconds",
		Help:    "Duration of letter-set scans over the index",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
	})

	entriesLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "puzzle_dictionary_entries",
		Help: "Number of entries in the live dictionary index",
	})
)
