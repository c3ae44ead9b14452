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
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jinseo0904/contextual-word-puzzle/pkg/ux"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/scoring"
)

// =============================================================================
// SOLVE COMMAND
// =============================================================================

// runSolve is the CLI handler for the "bee solve" command.
//
// It lists every playable word for an exact letter set and center,
// with scores and pangrams called out. This is the spoiler command;
// hints is the spoiler-free one.
//
// # Exit Codes
//
//   - 0: Words found
//   - 1: Letter set rejected or no playable words
//   - 2: Error
func runSolve(cmd *cobra.Command, args []string) {
	if solveLetters == "" || solveCenter == "" {
		OutputError(jsonOutput, "Missing required flag", errors.New("--letters and --center are required"))
		os.Exit(CLIExitError)
	}

	idx := loadDictionary(solveDictionary)

	center, err := parseCenterByte(solveCenter)
	if err != nil {
		OutputError(jsonOutput, "Invalid flags", err)
		os.Exit(CLIExitError)
	}

	p, err := newGenerateEngine(idx, 0).NewPuzzleFromLetters(context.Background(), solveLetters, center)
	if err != nil {
		OutputError(jsonOutput, "Solve failed", err)
		os.Exit(generationExitCode(err))
	}

	if jsonOutput {
		result := SolveResult{
			Letters:    p.Letters,
			Center:     p.Center,
			Words:      p.Words,
			Pangrams:   p.Pangrams,
			MaxScore:   p.MaxScore,
			TotalWords: p.TotalWords,
		}
		if encErr := OutputJSON(result, false); encErr != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode JSON: %v\n", encErr)
			os.Exit(CLIExitError)
		}
		os.Exit(CLIExitSuccess)
	}

	ux.Title("Solution " + strings.ToUpper(p.Letters))
	fmt.Println("  " + ux.Letters(p.Letters, p.Center[0]))
	fmt.Println()
	for _, w := range p.Words {
		fmt.Println("  " + ux.WordLine(w.Word, scoring.WordScore(w), w.IsPangram))
	}
	ux.ScoreSummary(p.TotalWords, p.MaxScore, len(p.Pangrams))
}
