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
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// LoggerWithTrace returns a logger stamped with the context's trace.
//
// Description:
//
//	Pulls trace_id and span_id out of the span context and pins them
//	as structured fields, so the log backend can join log lines to
//	their trace. Without a valid span context the logger comes back
//	unchanged, which makes the call safe on untraced paths.
//
// Inputs:
//
//	ctx - Context that may carry a span. Nil is tolerated.
//	logger - Base logger. Nil falls back to slog.Default().
//
// Outputs:
//
//	*slog.Logger - The logger, with trace fields when available.
//
// Example:
//
//	telemetry.LoggerWithTrace(ctx, slog.Default()).Info("Picked puzzle",
//	    slog.String("seed", p.SeedWord))
//
// Thread Safety: Safe for concurrent use.
func LoggerWithTrace(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	if ctx == nil {
		return logger
	}

	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return logger
	}

	return logger.With(
		slog.String("trace_id", spanCtx.TraceID().String()),
		slog.String("span_id", spanCtx.SpanID().String()),
	)
}

// LoggerWithSession returns a logger with trace context and session ID.
//
// Description:
//
//	Adds the game-session identifier so log entries from one player's
//	requests can be followed across the word-check and hint endpoints.
//
// Inputs:
//
//	ctx - Context containing span context.
//	logger - Base logger to enhance.
//	sessionID - Unique session identifier.
//
// Outputs:
//
//	*slog.Logger - Logger with trace_id, span_id, and session_id fields.
//
// Thread Safety: Safe for concurrent use.
func LoggerWithSession(ctx context.Context, logger *slog.Logger, sessionID string) *slog.Logger {
	return LoggerWithTrace(ctx, logger).With(
		slog.String("session_id", sessionID),
	)
}
