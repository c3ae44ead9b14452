// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// Metrics groups every OTel instrument the puzzle service records.
//
// Description:
//
//	One instance is built at startup and shared: the gin middleware
//	feeds the HTTP instruments, the engine the generation and
//	gameplay ones. Instrument names all carry the "puzzle_" prefix
//	so one scrape config covers the service.
//
// Thread Safety: Safe for concurrent use after creation.
type Metrics struct {
	// --- HTTP Metrics ---

	// HTTPRequestsTotal counts total HTTP requests by method, path, and status.
	HTTPRequestsTotal metric.Int64Counter

	// HTTPRequestDuration records HTTP request duration in seconds.
	HTTPRequestDuration metric.Float64Histogram

	// HTTPActiveRequests tracks currently active HTTP requests.
	HTTPActiveRequests metric.Int64UpDownCounter

	// --- Generation Metrics ---

	// GenerationsTotal counts puzzle generation attempts by status.
	GenerationsTotal metric.Int64Counter

	// GenerationDuration records puzzle generation duration in seconds.
	GenerationDuration metric.Float64Histogram

	// SeedsEvaluated counts candidate seeds submitted for evaluation
	// during picking. A winning seed cancels the rest of its batch, so
	// this bounds the evaluation work rather than measuring it exactly.
	SeedsEvaluated metric.Int64Counter

	// PrunesTotal counts word-list pruning operations.
	PrunesTotal metric.Int64Counter

	// --- Gameplay Metrics ---

	// WordChecksTotal counts word check requests by result.
	WordChecksTotal metric.Int64Counter

	// HintBuildsTotal counts hint matrix builds.
	HintBuildsTotal metric.Int64Counter

	// --- Archive Metrics ---

	// LibrarySize tracks the number of puzzles in the on-disk archive.
	LibrarySize metric.Int64ObservableGauge

	// --- Error Metrics ---

	// ErrorsTotal counts total errors by type and component.
	ErrorsTotal metric.Int64Counter
}

// NewMetrics registers every instrument with the meter.
//
// Description:
//
//	Builds the counters and histograms in one pass and stops at the
//	first one the meter rejects; a partially usable Metrics is never
//	returned. The LibrarySize gauge is the exception, registered
//	later through RegisterLibrarySize because it needs a callback.
//
// Inputs:
//
//	meter - The OTel meter the instruments register against.
//
// Outputs:
//
//	*Metrics - Ready to record; share one instance per process.
//	error - The first failed registration.
//
// Thread Safety: Safe for concurrent use after creation.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}
	var err error

	// --- HTTP Metrics ---
	m.HTTPRequestsTotal, err = meter.Int64Counter(
		"puzzle_http_requests_total",
		metric.WithDescription("Total HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create http_requests_total: %w", err)
	}

	m.HTTPRequestDuration, err = meter.Float64Histogram(
		"puzzle_http_request_duration_seconds",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10),
	)
	if err != nil {
		return nil, fmt.Errorf("create http_request_duration: %w", err)
	}

	m.HTTPActiveRequests, err = meter.Int64UpDownCounter(
		"puzzle_http_active_requests",
		metric.WithDescription("Currently active HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create http_active_requests: %w", err)
	}

	// --- Generation Metrics ---
	m.GenerationsTotal, err = meter.Int64Counter(
		"puzzle_generations_total",
		metric.WithDescription("Total puzzle generation attempts"),
		metric.WithUnit("{generation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create generations_total: %w", err)
	}

	m.GenerationDuration, err = meter.Float64Histogram(
		"puzzle_generation_duration_seconds",
		metric.WithDescription("Puzzle generation duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30),
	)
	if err != nil {
		return nil, fmt.Errorf("create generation_duration: %w", err)
	}

	m.SeedsEvaluated, err = meter.Int64Counter(
		"puzzle_seeds_evaluated_total",
		metric.WithDescription("Candidate seeds submitted for evaluation during picking"),
		metric.WithUnit("{seed}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create seeds_evaluated: %w", err)
	}

	m.PrunesTotal, err = meter.Int64Counter(
		"puzzle_prunes_total",
		metric.WithDescription("Word-list pruning operations"),
		metric.WithUnit("{prune}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create prunes_total: %w", err)
	}

	// --- Gameplay Metrics ---
	m.WordChecksTotal, err = meter.Int64Counter(
		"puzzle_word_checks_total",
		metric.WithDescription("Word check requests by result"),
		metric.WithUnit("{check}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create word_checks_total: %w", err)
	}

	m.HintBuildsTotal, err = meter.Int64Counter(
		"puzzle_hint_builds_total",
		metric.WithDescription("Hint matrix builds"),
		metric.WithUnit("{build}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create hint_builds_total: %w", err)
	}

	// Note: LibrarySize requires a callback registration, handled separately

	// --- Error Metrics ---
	m.ErrorsTotal, err = meter.Int64Counter(
		"puzzle_errors_total",
		metric.WithDescription("Total errors by type and component"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create errors_total: %w", err)
	}

	return m, nil
}

// RegisterLibrarySize registers a callback for the archive size gauge.
//
// Description:
//
//	Sets up an observable gauge that reports how many puzzles the
//	on-disk archive currently holds. The callback is invoked each
//	time metrics are scraped.
//
// Inputs:
//
//	meter - The OTel meter to use for registration.
//	sizeFunc - A function that returns the current puzzle count.
//
// Outputs:
//
//	metric.Registration - Registration handle for cleanup.
//	error - Non-nil if registration fails.
func (m *Metrics) RegisterLibrarySize(meter metric.Meter, sizeFunc func() int64) (metric.Registration, error) {
	var err error
	m.LibrarySize, err = meter.Int64ObservableGauge(
		"puzzle_library_size",
		metric.WithDescription("Puzzles currently in the on-disk archive"),
		metric.WithUnit("{puzzle}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create library_size: %w", err)
	}

	return meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		o.ObserveInt64(m.LibrarySize, sizeFunc())
		return nil
	}, m.LibrarySize)
}
