// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sessionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "puzzle_sessions_created_total",
		Help: "Total game sessions opened",
	})

	sessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "puzzle_sessions_active",
		Help: "Live sessions currently held by the store",
	})

	wordsAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "puzzle_session_words_accepted_total",
		Help: "Valid words recorded across all sessions",
	})
)
