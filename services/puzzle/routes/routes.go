// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/artifacts"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/config"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/engine"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/handlers"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/session"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/telemetry"
)

// SetupRoutes registers the puzzle service endpoints.
//
// Puzzle generation walks the whole dictionary, so start-game sits
// behind the configured token bucket while the cheap lookups do not.
// Library routes are registered only when a puzzle library is mounted.
func SetupRoutes(router *gin.Engine, eng *engine.Engine, store *session.Store,
	lib *artifacts.Library, cfg *config.Config) {

	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", metricsEndpoint)

	api := router.Group("/api")
	{
		api.POST("/validate-seed", handlers.ValidateSeed(eng))
		api.POST("/check-word", handlers.CheckWord(eng, store))
		api.POST("/generate-hints", handlers.GenerateHints(eng, store))

		generate := api.Group("", handlers.RateLimit(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst))
		generate.POST("/start-game", handlers.StartGame(eng, store, cfg.Pruning.Enabled))

		if lib != nil {
			api.GET("/puzzles", handlers.ListPuzzles(lib))
			api.GET("/puzzles/:id", handlers.GetPuzzle(lib))
		}
	}
}

// metricsEndpoint serves the Prometheus scrape endpoint. The exporter
// handler is resolved per request so routes registered before
// telemetry.Init still serve metrics afterward; before that the default
// registry alone is exposed.
func metricsEndpoint(c *gin.Context) {
	if h := telemetry.MetricsHandler(); h != nil {
		h.ServeHTTP(c.Writer, c.Request)
		return
	}
	promhttp.Handler().ServeHTTP(c.Writer, c.Request)
}
