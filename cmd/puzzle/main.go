// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command puzzle starts the word puzzle API server.
//
// The server generates Spelling Bee style puzzles from a frequency
// dictionary and plays them over HTTP: seed validation, game sessions,
// word checking, and hints, plus read access to a directory of
// pre-generated puzzle artifacts.
//
// Usage:
//
//	go run ./cmd/puzzle --dictionary ./data/dictionary.json
//	go run ./cmd/puzzle --config ./puzzle.yaml --port 9090
//
// Example requests:
//
//	# Health check
//	curl http://localhost:8080/health
//
//	# Validate a seed word
//	curl -X POST http://localhost:8080/api/validate-seed \
//	  -H "Content-Type: application/json" \
//	  -d '{"seed_word": "lactone"}'
//
//	# Start a game
//	curl -X POST http://localhost:8080/api/start-game \
//	  -H "Content-Type: application/json" \
//	  -d '{"seed_word": "lactone", "center_letter": "a"}'
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"

	"github.com/jinseo0904/contextual-word-puzzle/pkg/logging"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/artifacts"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/config"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/dictionary"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/engine"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/pruner"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/routes"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/session"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/telemetry"
)

func main() {
	configPath := flag.String("config", "", "Path to the YAML config file (PUZZLE_CONFIG also honored)")
	port := flag.Int("port", 0, "Override the configured listen port")
	dictPath := flag.String("dictionary", "", "Override the configured dictionary path")
	puzzlesDir := flag.String("puzzles-dir", "", "Override the configured puzzle artifact directory")
	debug := flag.Bool("debug", false, "Enable debug mode")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(ctx, *configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *dictPath != "" {
		cfg.Dictionary.Path = *dictPath
	}
	if *puzzlesDir != "" {
		cfg.Artifacts.Dir = *puzzlesDir
	}

	logger := logging.New(cfg.LoggingConfigFor("puzzle"))
	defer logger.Close()
	logger.Install()

	// --- Telemetry ---
	// With telemetry disabled the global no-op providers stay in place
	// and every instrument below records nothing.
	if cfg.Telemetry.Enabled {
		tcfg := telemetry.DefaultConfig()
		tcfg.ServiceName = cfg.Telemetry.ServiceName
		if cfg.Telemetry.Endpoint != "" {
			tcfg.OTLPEndpoint = cfg.Telemetry.Endpoint
		}
		if cfg.Telemetry.Stdout {
			tcfg.TraceExporter = "stdout"
			tcfg.MetricExporter = "stdout"
		}
		shutdown, err := telemetry.Init(ctx, tcfg)
		if err != nil {
			slog.Error("Failed to initialize telemetry", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				slog.Error("Telemetry shutdown failed", "error", err)
			}
		}()
	}

	metrics, err := telemetry.NewMetrics(otel.Meter("puzzle"))
	if err != nil {
		slog.Error("Failed to create metrics", "error", err)
		os.Exit(1)
	}

	// --- Dictionary ---
	idx, err := dictionary.Load(cfg.Dictionary.Path, &dictionary.LoadOptions{
		MinFrequency: cfg.Dictionary.MinFrequency,
	})
	if err != nil {
		slog.Error("Failed to load dictionary", "path", cfg.Dictionary.Path, "error", err)
		os.Exit(1)
	}
	slog.Info("Dictionary loaded", "path", cfg.Dictionary.Path, "words", idx.Len())

	// --- Puzzle library ---
	// The library is optional: without a readable puzzle directory the
	// server runs in lightweight mode and skips the library routes.
	var lib *artifacts.Library
	if l, err := artifacts.NewLibrary(cfg.Artifacts.Dir, nil); err != nil {
		slog.Warn("Puzzle library unavailable, serving without library routes",
			"dir", cfg.Artifacts.Dir, "error", err)
	} else {
		lib = l
		defer lib.Close()
		if cfg.Artifacts.Watch {
			if err := lib.Watch(ctx); err != nil {
				slog.Warn("Library watcher failed to start", "error", err)
			}
		}
		reg, err := metrics.RegisterLibrarySize(otel.Meter("puzzle"), func() int64 {
			return int64(lib.Len())
		})
		if err != nil {
			slog.Warn("Library size gauge unavailable", "error", err)
		} else {
			defer reg.Unregister()
		}
		slog.Info("Puzzle library loaded", "dir", cfg.Artifacts.Dir, "puzzles", lib.Len())
	}

	// --- Engine ---
	opts := engine.DefaultOptions()
	opts.MinWords = cfg.Generation.MinWords
	opts.CandidateThreshold = cfg.Generation.CandidateThreshold
	opts.SampleSize = cfg.Generation.SampleSize
	opts.Parallelism = cfg.Generation.Parallelism
	opts.Pruning = pruner.Config{
		Target:       cfg.Pruning.Target,
		TopWords:     cfg.Pruning.TopWords,
		RandomSample: cfg.Pruning.RandomSample,
	}
	opts.Metrics = metrics
	eng := engine.New(idx, opts)

	// --- Sessions ---
	store := session.NewStore()
	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go store.SweepLoop(sweepCtx, cfg.Sessions.SweepInterval.Std(), cfg.Sessions.MaxIdle.Std())

	// --- HTTP server ---
	if *debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	if *debug {
		router.Use(gin.Logger())
	}
	router.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	router.Use(telemetry.MetricsMiddleware(metrics))
	routes.SetupRoutes(router, eng, store, lib, cfg)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout.Std(),
		WriteTimeout: cfg.Server.WriteTimeout.Std(),
	}

	go func() {
		slog.Info("Starting puzzle server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down puzzle server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Std())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Forced shutdown", "error", err)
	}
	slog.Info("Server stopped")
}
