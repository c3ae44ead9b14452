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
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jinseo0904/contextual-word-puzzle/pkg/ux"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/artifacts"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/candidates"
)

// =============================================================================
// CANDIDATES COMMAND
// =============================================================================

// runCandidates is the CLI handler for the "bee candidates" command.
//
// It scans the dictionary for words with exactly seven distinct letters
// above the frequency threshold, the pool the puzzle picker draws from.
// With --sample the full pool is reduced to a random selection; with
// --out the result is written as a candidate artifact.
//
// # Exit Codes
//
//   - 0: Candidates found
//   - 1: No candidates above the threshold
//   - 2: Error
func runCandidates(cmd *cobra.Command, args []string) {
	idx := loadDictionary(candidatesDictionary)

	seeds := candidates.Scan(idx, candidatesThreshold)
	if candidatesSample > 0 && candidatesSample < len(seeds) {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		seeds = candidates.Sample(seeds, candidatesSample, rng)
	}

	var written string
	if candidatesOut != "" && len(seeds) > 0 {
		set := &artifacts.CandidateSet{
			GeneratedAt: time.Now().UTC(),
			Threshold:   candidatesThreshold,
			Candidates:  seeds,
		}
		path, err := artifacts.WriteCandidates(candidatesOut, set)
		if err != nil {
			OutputError(jsonOutput, "Failed to write candidate artifact", err)
			os.Exit(CLIExitError)
		}
		written = path
	}

	if jsonOutput {
		result := CandidatesResult{
			Threshold:  candidatesThreshold,
			Count:      len(seeds),
			Candidates: seeds,
			Written:    written,
		}
		if err := OutputJSON(result, false); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode JSON: %v\n", err)
			os.Exit(CLIExitError)
		}
		if len(seeds) == 0 {
			os.Exit(CLIExitFindings)
		}
		os.Exit(CLIExitSuccess)
	}

	if len(seeds) == 0 {
		ux.Warning(fmt.Sprintf("No candidate seeds above frequency %g; try a lower --threshold", candidatesThreshold))
		os.Exit(CLIExitFindings)
	}

	ux.Title(fmt.Sprintf("Candidate Seeds (%d)", len(seeds)))
	for _, s := range seeds {
		line := fmt.Sprintf("%-12s %.2g", s.Word, s.Frequency)
		if s.Definition != "" {
			line += "  " + ux.Styles.Muted.Render(truncate(s.Definition, 60))
		}
		fmt.Println("  " + line)
	}
	if written != "" {
		ux.Success(fmt.Sprintf("Wrote %s", written))
	}
}

// truncate shortens s to max runes with an ellipsis.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
