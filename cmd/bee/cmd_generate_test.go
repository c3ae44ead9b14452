// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

/*
Package main provides tests for the generate command helpers.

These tests verify:
  - Flag combination validation for manual and auto mode
  - Center flag normalization
  - Exit code mapping for generation failures
*/
package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/candidates"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/generator"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/letterset"
)

// =============================================================================
// Flag Validation Tests
// =============================================================================

func TestGenerateFlagsError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		seed    string
		center  string
		auto    bool
		count   int
		wantErr bool
	}{
		{name: "manual mode", seed: "lactone", center: "a", count: 1},
		{name: "auto mode", auto: true, count: 1},
		{name: "auto batch", auto: true, count: 5},
		{name: "auto with seed", seed: "lactone", auto: true, count: 1, wantErr: true},
		{name: "auto with center", center: "a", auto: true, count: 1, wantErr: true},
		{name: "no mode", count: 1, wantErr: true},
		{name: "seed without center", seed: "lactone", count: 1, wantErr: true},
		{name: "count without auto", seed: "lactone", center: "a", count: 3, wantErr: true},
		{name: "zero count", auto: true, count: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := generateFlagsError(tt.seed, tt.center, tt.auto, tt.count)
			if (err != nil) != tt.wantErr {
				t.Errorf("generateFlagsError(%q, %q, %v, %d) error = %v, wantErr %v",
					tt.seed, tt.center, tt.auto, tt.count, err, tt.wantErr)
			}
		})
	}
}

func TestParseCenterByte(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    byte
		wantErr bool
	}{
		{in: "a", want: 'a'},
		{in: "Z", want: 'z'},
		{in: " c ", want: 'c'},
		{in: "", wantErr: true},
		{in: "ab", wantErr: true},
		{in: "4", wantErr: true},
		{in: "é", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseCenterByte(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseCenterByte(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("parseCenterByte(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// =============================================================================
// Exit Code Tests
// =============================================================================

// TestGenerationExitCode verifies the findings/error split.
//
// # Description
//
// User-correctable inputs (bad seed, bad center, empty result, no
// viable candidate) exit as findings; anything else is an error.
func TestGenerationExitCode(t *testing.T) {
	t.Parallel()

	findings := []error{
		&letterset.SeedError{Seed: "neat", Reason: "only 4 distinct letters"},
		&letterset.CenterError{Center: 'z', Letters: "acelnot"},
		&generator.EmptyResultError{Letters: "abfgirt", Center: 'a'},
		candidates.ErrNoViableSeed,
		fmt.Errorf("picking: %w", generator.ErrEmptyResult),
	}
	for _, err := range findings {
		if code := generationExitCode(err); code != CLIExitFindings {
			t.Errorf("generationExitCode(%v) = %d, want %d", err, code, CLIExitFindings)
		}
	}

	if code := generationExitCode(errors.New("disk on fire")); code != CLIExitError {
		t.Errorf("generationExitCode(other) = %d, want %d", code, CLIExitError)
	}
}
