// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package telemetry wires the puzzle service into OpenTelemetry.
//
// Init stands up the global TracerProvider, MeterProvider, and W3C
// propagation in one call; everything else in the service then reaches
// observability through the plain OTel API. There is no abstraction of
// our own on top: packages declare their tracers with otel.Tracer and
// their instruments through Metrics, and swapping the backend is an
// exporter-config change, never a code change.
//
// # Backends
//
// Traces export over OTLP gRPC by default, which any current backend
// (Jaeger included) ingests natively. Metrics register with the
// process-default Prometheus registry, so MetricsHandler serves both
// the OTel instruments and the promauto counters individual packages
// declare from a single /metrics endpoint. Both sides can be switched
// to stdout for local debugging or disabled outright with "none".
//
// # Sampling
//
// Config.SampleRate maps onto trace-ID ratio sampling, so a trace that
// starts sampled keeps that decision across every service that joins
// it. Generation endpoints are cheap enough to sample fully in
// development; production deployments dial the rate down.
//
// # Log correlation
//
// LoggerWithTrace and LoggerWithSession stamp trace_id, span_id, and
// the game-session ID onto slog entries, which is what lets a log line
// from a word check be matched to its HTTP span and to every other
// line from the same player's session.
//
// # Usage
//
//	shutdown, err := telemetry.Init(ctx, telemetry.DefaultConfig())
//	if err != nil {
//	    return fmt.Errorf("init telemetry: %w", err)
//	}
//	defer shutdown(ctx)
//
//	tracer := otel.Tracer("puzzle.engine")
//
// # Environment Variables
//
//   - OTEL_EXPORTER_OTLP_ENDPOINT: OTLP endpoint (default: localhost:4317)
//   - OTEL_TRACES_EXPORTER: otlp, stdout, or none (default: otlp)
//   - OTEL_METRICS_EXPORTER: prometheus, stdout, or none (default: prometheus)
//   - PUZZLE_ENV: environment name (default: development)
//
// All exported functions are safe for concurrent use once Init has
// returned.
package telemetry
