// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package config loads service configuration from an embedded default,
// an optional external YAML file, and PUZZLE_* environment variables,
// in that override order.
//
// # Load Order
//
//  1. The embedded default.yaml establishes every field.
//  2. An external file, if found, is decoded over the defaults. The
//     path comes from the explicit argument, then PUZZLE_CONFIG, then
//     a short list of conventional locations.
//  3. Environment variables override individual fields last, so a
//     container can point at a dictionary or artifact volume without
//     shipping a config file.
//
// External files are size-capped and rejected if their resolved path
// contains traversal segments, since the path may come from an
// environment variable the operator does not fully control.
package config

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"gopkg.in/yaml.v3"

	"github.com/jinseo0904/contextual-word-puzzle/pkg/logging"
)

//go:embed default.yaml
var defaultConfigYAML []byte

// MaxConfigFileSize caps external config files at 1MB.
const MaxConfigFileSize = 1024 * 1024

// EnvConfigPath names the environment variable holding an external
// config file path.
const EnvConfigPath = "PUZZLE_CONFIG"

var (
	configLoadErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "puzzle_config_load_errors_total",
		Help: "Number of configuration load failures",
	})
	configExternalLoads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "puzzle_config_external_loads_total",
		Help: "Number of successful external config file loads",
	})
)

var configTracer = otel.Tracer("puzzle.config")

// commonLocations are checked, in order, when no explicit path and no
// PUZZLE_CONFIG variable is set.
var commonLocations = []string{
	"./puzzle.yaml",
	"./config/puzzle.yaml",
}

// Duration wraps time.Duration so YAML fields can be written in the
// usual "30s" / "5m" notation.
type Duration time.Duration

// UnmarshalYAML parses a Go duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host            string   `yaml:"host"`
	Port            int      `yaml:"port"`
	ReadTimeout     Duration `yaml:"read_timeout"`
	WriteTimeout    Duration `yaml:"write_timeout"`
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`

	// RateLimitRPS and RateLimitBurst shape the token bucket guarding
	// the generation endpoints. Zero RPS disables the limiter.
	RateLimitRPS   float64 `yaml:"rate_limit_rps"`
	RateLimitBurst int     `yaml:"rate_limit_burst"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DictionaryConfig locates and filters the word corpus.
type DictionaryConfig struct {
	Path         string  `yaml:"path"`
	MinFrequency float64 `yaml:"min_frequency"`
}

// GenerationConfig tunes candidate scanning and puzzle picking.
type GenerationConfig struct {
	MinWords           int     `yaml:"min_words"`
	CandidateThreshold float64 `yaml:"candidate_threshold"`
	SampleSize         int     `yaml:"sample_size"`
	Parallelism        int     `yaml:"parallelism"`
}

// PruningConfig tunes word-list reduction for oversized puzzles.
type PruningConfig struct {
	Enabled      bool `yaml:"enabled"`
	Target       int  `yaml:"target"`
	TopWords     int  `yaml:"top_words"`
	RandomSample int  `yaml:"random_sample"`
}

// ArtifactsConfig locates the on-disk puzzle archive.
type ArtifactsConfig struct {
	Dir   string `yaml:"dir"`
	Watch bool   `yaml:"watch"`
}

// SessionsConfig tunes game-session retention.
type SessionsConfig struct {
	MaxIdle       Duration `yaml:"max_idle"`
	SweepInterval Duration `yaml:"sweep_interval"`
}

// TelemetryConfig controls tracing and metrics export.
type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Endpoint    string `yaml:"endpoint"`
	Stdout      bool   `yaml:"stdout"`
	ServiceName string `yaml:"service_name"`
}

// LoggingConfig mirrors logging.Config for the YAML surface.
type LoggingConfig struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
	JSON  bool   `yaml:"json"`
	Quiet bool   `yaml:"quiet"`
}

// Config is the full service configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Generation GenerationConfig `yaml:"generation"`
	Pruning    PruningConfig    `yaml:"pruning"`
	Artifacts  ArtifactsConfig  `yaml:"artifacts"`
	Sessions   SessionsConfig   `yaml:"sessions"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// Load builds the effective configuration.
//
// # Description
//
//	Decodes the embedded defaults, overlays an external YAML file when
//	one is found, applies PUZZLE_* environment overrides, and
//	validates the result.
//
// # Inputs
//
//   - ctx: Context for tracing
//   - path: Explicit external config path; empty selects discovery
//
// # Outputs
//
//   - *Config: The validated configuration
//   - error: Parse, I/O, or validation failure
func Load(ctx context.Context, path string) (*Config, error) {
	_, span := configTracer.Start(ctx, "config.Load")
	defer span.End()

	cfg, err := decode(defaultConfigYAML)
	if err != nil {
		configLoadErrors.Inc()
		return nil, fmt.Errorf("embedded defaults are malformed: %w", err)
	}

	external := resolvePath(path)
	span.SetAttributes(attribute.String("config.path", external))
	if external != "" {
		data, err := readExternal(external)
		if err != nil {
			configLoadErrors.Inc()
			return nil, err
		}
		if err := decodeInto(data, cfg); err != nil {
			configLoadErrors.Inc()
			return nil, fmt.Errorf("parse %s: %w", external, err)
		}
		configExternalLoads.Inc()
		slog.Info("Loaded external config",
			slog.String("path", external))
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		configLoadErrors.Inc()
		return nil, err
	}
	return cfg, nil
}

// decode parses YAML into a fresh Config.
func decode(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := decodeInto(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decodeInto overlays YAML onto an existing Config. Fields absent from
// the document keep their current values; unknown keys are rejected so
// a typoed override fails loudly instead of being ignored.
func decodeInto(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return err
	}
	return nil
}

// resolvePath picks the external config path: explicit argument, then
// PUZZLE_CONFIG, then the first conventional location that exists.
// Empty means run on embedded defaults alone.
func resolvePath(path string) string {
	if path != "" {
		return path
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	for _, loc := range commonLocations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}
	return ""
}

// readExternal loads an external config file with path and size
// guards.
func readExternal(path string) ([]byte, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	if strings.Contains(absPath, "..") {
		return nil, fmt.Errorf("config path contains traversal: %s", path)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("stat config file: %w", err)
	}
	if info.Size() > MaxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)",
			info.Size(), MaxConfigFileSize)
	}
	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return data, nil
}

// applyEnv overrides individual fields from PUZZLE_* environment
// variables. Unparseable numeric values are logged and skipped rather
// than failing the whole load.
func applyEnv(cfg *Config) {
	if v := os.Getenv("PUZZLE_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("PUZZLE_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		} else {
			slog.Warn("Ignoring unparseable PUZZLE_PORT",
				slog.String("value", v))
		}
	}
	if v := os.Getenv("PUZZLE_DICTIONARY"); v != "" {
		cfg.Dictionary.Path = v
	}
	if v := os.Getenv("PUZZLE_ARTIFACTS_DIR"); v != "" {
		cfg.Artifacts.Dir = v
	}
	if v := os.Getenv("PUZZLE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("PUZZLE_LOG_DIR"); v != "" {
		cfg.Logging.Dir = v
	}
	if v := os.Getenv("PUZZLE_OTLP_ENDPOINT"); v != "" {
		cfg.Telemetry.Endpoint = v
	}
	if v := os.Getenv("PUZZLE_TELEMETRY"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Telemetry.Enabled = enabled
		} else {
			slog.Warn("Ignoring unparseable PUZZLE_TELEMETRY",
				slog.String("value", v))
		}
	}
}

// Validate checks the configuration for values the service cannot run
// with. It returns the first problem found.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d outside 1-65535", c.Server.Port)
	}
	if c.Server.RateLimitRPS < 0 {
		return fmt.Errorf("server.rate_limit_rps must not be negative, got %g",
			c.Server.RateLimitRPS)
	}
	if c.Server.RateLimitRPS > 0 && c.Server.RateLimitBurst < 1 {
		return fmt.Errorf("server.rate_limit_burst must be at least 1 when rate limiting is on, got %d",
			c.Server.RateLimitBurst)
	}
	if c.Dictionary.Path == "" {
		return fmt.Errorf("dictionary.path is required")
	}
	if c.Dictionary.MinFrequency < 0 {
		return fmt.Errorf("dictionary.min_frequency must not be negative, got %g",
			c.Dictionary.MinFrequency)
	}
	if c.Generation.MinWords < 1 {
		return fmt.Errorf("generation.min_words must be positive, got %d",
			c.Generation.MinWords)
	}
	if c.Generation.CandidateThreshold < 0 {
		return fmt.Errorf("generation.candidate_threshold must not be negative, got %g",
			c.Generation.CandidateThreshold)
	}
	if c.Generation.SampleSize < 1 {
		return fmt.Errorf("generation.sample_size must be positive, got %d",
			c.Generation.SampleSize)
	}
	if c.Generation.Parallelism < 1 {
		return fmt.Errorf("generation.parallelism must be positive, got %d",
			c.Generation.Parallelism)
	}
	if c.Pruning.Target < 1 {
		return fmt.Errorf("pruning.target must be positive, got %d",
			c.Pruning.Target)
	}
	if c.Pruning.TopWords < 1 {
		return fmt.Errorf("pruning.top_words must be positive, got %d",
			c.Pruning.TopWords)
	}
	if c.Pruning.RandomSample < 0 {
		return fmt.Errorf("pruning.random_sample must not be negative, got %d",
			c.Pruning.RandomSample)
	}
	if c.Artifacts.Dir == "" {
		return fmt.Errorf("artifacts.dir is required")
	}
	if c.Sessions.MaxIdle.Std() <= 0 {
		return fmt.Errorf("sessions.max_idle must be positive, got %s",
			c.Sessions.MaxIdle.Std())
	}
	if c.Sessions.SweepInterval.Std() <= 0 {
		return fmt.Errorf("sessions.sweep_interval must be positive, got %s",
			c.Sessions.SweepInterval.Std())
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

// LoggingConfigFor converts the YAML logging section into the logging
// package's Config, stamping the given service name on log files.
func (c *Config) LoggingConfigFor(service string) logging.Config {
	level, _ := logging.ParseLevel(c.Logging.Level)
	return logging.Config{
		Level:   level,
		LogDir:  c.Logging.Dir,
		Service: service,
		JSON:    c.Logging.JSON,
		Quiet:   c.Logging.Quiet,
	}
}
