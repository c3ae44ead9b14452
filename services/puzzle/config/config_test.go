// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv neutralizes every override variable so tests see only the
// inputs they set themselves.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvConfigPath,
		"PUZZLE_HOST", "PUZZLE_PORT",
		"PUZZLE_DICTIONARY", "PUZZLE_ARTIFACTS_DIR",
		"PUZZLE_LOG_LEVEL", "PUZZLE_LOG_DIR",
		"PUZZLE_OTLP_ENDPOINT", "PUZZLE_TELEMETRY",
	} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "puzzle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout.Std())
	assert.Equal(t, "./data/dictionary.json", cfg.Dictionary.Path)
	assert.Equal(t, 20, cfg.Generation.MinWords)
	assert.InDelta(t, 7.0e-06, cfg.Generation.CandidateThreshold, 1e-12)
	assert.True(t, cfg.Pruning.Enabled)
	assert.Equal(t, 30, cfg.Pruning.Target)
	assert.Equal(t, 25, cfg.Pruning.TopWords)
	assert.Equal(t, 5, cfg.Pruning.RandomSample)
	assert.Equal(t, "./puzzles", cfg.Artifacts.Dir)
	assert.Equal(t, 30*time.Minute, cfg.Sessions.MaxIdle.Std())
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadExternalOverlay(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  port: 9999
generation:
  min_words: 5
`)

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	// Overridden fields take the external values.
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Generation.MinWords)

	// Everything else keeps the embedded defaults.
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 10, cfg.Generation.SampleSize)
	assert.Equal(t, "./puzzles", cfg.Artifacts.Dir)
}

func TestLoadExternalViaEnv(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "server:\n  port: 7070\n")
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "server:\n  prot: 9999\n")

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prot")
}

func TestLoadRejectsBadDuration(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "sessions:\n  max_idle: soon\n")

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid duration")
}

func TestLoadRejectsOversizedFile(t *testing.T) {
	clearEnv(t)
	padding := append([]byte("# padding\n"), bytes.Repeat([]byte{'#'}, MaxConfigFileSize)...)
	path := filepath.Join(t.TempDir(), "big.yaml")
	require.NoError(t, os.WriteFile(path, padding, 0o644))

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}

func TestLoadMissingExplicitFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PUZZLE_PORT", "8181")
	t.Setenv("PUZZLE_DICTIONARY", "/srv/words.json")
	t.Setenv("PUZZLE_ARTIFACTS_DIR", "/srv/puzzles")
	t.Setenv("PUZZLE_LOG_LEVEL", "debug")
	t.Setenv("PUZZLE_TELEMETRY", "true")

	cfg, err := Load(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 8181, cfg.Server.Port)
	assert.Equal(t, "/srv/words.json", cfg.Dictionary.Path)
	assert.Equal(t, "/srv/puzzles", cfg.Artifacts.Dir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Telemetry.Enabled)
}

func TestEnvOverridesBeatExternalFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "server:\n  port: 7070\n")
	t.Setenv("PUZZLE_PORT", "6060")

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 6060, cfg.Server.Port)
}

func TestEnvOverrideUnparseableIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("PUZZLE_PORT", "eight thousand")

	cfg, err := Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	base := func(t *testing.T) *Config {
		t.Helper()
		cfg, err := decode(defaultConfigYAML)
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "port too low",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "server.port",
		},
		{
			name:    "port too high",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "server.port",
		},
		{
			name:    "burst required with rate limit",
			mutate:  func(c *Config) { c.Server.RateLimitBurst = 0 },
			wantErr: "rate_limit_burst",
		},
		{
			name:    "empty dictionary path",
			mutate:  func(c *Config) { c.Dictionary.Path = "" },
			wantErr: "dictionary.path",
		},
		{
			name:    "zero min words",
			mutate:  func(c *Config) { c.Generation.MinWords = 0 },
			wantErr: "min_words",
		},
		{
			name:    "negative threshold",
			mutate:  func(c *Config) { c.Generation.CandidateThreshold = -1 },
			wantErr: "candidate_threshold",
		},
		{
			name:    "zero parallelism",
			mutate:  func(c *Config) { c.Generation.Parallelism = 0 },
			wantErr: "parallelism",
		},
		{
			name:    "zero prune target",
			mutate:  func(c *Config) { c.Pruning.Target = 0 },
			wantErr: "pruning.target",
		},
		{
			name:    "zero prune top words",
			mutate:  func(c *Config) { c.Pruning.TopWords = 0 },
			wantErr: "pruning.top_words",
		},
		{
			name:    "empty artifacts dir",
			mutate:  func(c *Config) { c.Artifacts.Dir = "" },
			wantErr: "artifacts.dir",
		},
		{
			name:    "zero max idle",
			mutate:  func(c *Config) { c.Sessions.MaxIdle = 0 },
			wantErr: "max_idle",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base(t)
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoggingConfigFor(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(context.Background(), "")
	require.NoError(t, err)

	lc := cfg.LoggingConfigFor("puzzle-api")
	assert.Equal(t, "puzzle-api", lc.Service)
	assert.False(t, lc.Quiet)
}
