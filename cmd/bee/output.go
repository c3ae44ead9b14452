// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/candidates"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/words"
)

// Exit codes for CLI commands.
const (
	CLIExitSuccess  = 0 // Operation completed successfully
	CLIExitFindings = 1 // Operation completed but the input is not playable
	CLIExitError    = 2 // Operation failed
)

// CommandResult wraps command output with metadata.
type CommandResult struct {
	APIVersion string      `json:"api_version"`
	Command    string      `json:"command"`
	Timestamp  time.Time   `json:"timestamp"`
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// OutputJSON writes structured data as JSON to stdout.
//
// # Inputs
//
//   - data: The data to encode. Must be JSON-serializable.
//   - compact: If true, output without indentation.
//
// # Outputs
//
//   - error: Non-nil if encoding fails.
func OutputJSON(data interface{}, compact bool) error {
	encoder := json.NewEncoder(os.Stdout)
	if !compact {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(data)
}

// OutputError writes an error in the appropriate format.
//
// # Inputs
//
//   - jsonMode: If true, output as JSON to stdout.
//   - msg: Human-readable error message.
//   - err: The underlying error.
func OutputError(jsonMode bool, msg string, err error) {
	if jsonMode {
		result := CommandResult{
			APIVersion: "1.0",
			Timestamp:  time.Now(),
			Success:    false,
			Error:      fmt.Sprintf("%s: %v", msg, err),
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		encoder.Encode(result)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
	}
}

// ValidateResult holds seed validation output.
type ValidateResult struct {
	Seed          string   `json:"seed"`
	Valid         bool     `json:"valid"`
	Letters       string   `json:"letters,omitempty"`
	CenterOptions []string `json:"center_options,omitempty"`
	Error         string   `json:"error,omitempty"`
}

// CandidatesResult holds candidate scan output.
type CandidatesResult struct {
	Threshold  float64           `json:"threshold"`
	Count      int               `json:"count"`
	Candidates []candidates.Seed `json:"candidates"`
	Written    string            `json:"written,omitempty"`
}

// GenerateResult holds puzzle generation output.
type GenerateResult struct {
	Puzzles []*words.Puzzle `json:"puzzles"`
	Written []string        `json:"written,omitempty"`
}

// PruneResult holds pruning output.
type PruneResult struct {
	Puzzle  *words.Puzzle `json:"puzzle"`
	Before  int           `json:"words_before"`
	After   int           `json:"words_after"`
	Written string        `json:"written,omitempty"`
}

// SolveResult holds solve output.
type SolveResult struct {
	Letters    string       `json:"letters"`
	Center     string       `json:"center"`
	Words      []words.Word `json:"words"`
	Pangrams   []string     `json:"pangrams"`
	MaxScore   int          `json:"max_score"`
	TotalWords int          `json:"total_words"`
}
