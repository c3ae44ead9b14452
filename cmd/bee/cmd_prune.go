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
	"errors"
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/jinseo0904/contextual-word-puzzle/pkg/ux"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/artifacts"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/pruner"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/scoring"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/words"
)

// =============================================================================
// PRUNE COMMAND
// =============================================================================

// runPrune is the CLI handler for the "bee prune" command.
//
// It reads a puzzle artifact, reduces its word list to the balanced
// playable subset, and recomputes the score ceiling for what remains.
// Pangrams always survive. The input file is never modified; --out
// writes the pruned document as its own artifact.
//
// # Exit Codes
//
//   - 0: Pruned successfully
//   - 2: Error (unreadable artifact or a pruning invariant violation)
func runPrune(cmd *cobra.Command, args []string) {
	if pruneIn == "" {
		OutputError(jsonOutput, "Missing required flag", errors.New("--in is required"))
		os.Exit(CLIExitError)
	}

	p, err := artifacts.ReadPuzzle(pruneIn)
	if err != nil {
		OutputError(jsonOutput, "Failed to read puzzle artifact", err)
		os.Exit(CLIExitError)
	}

	cfg := pruner.Config{Target: pruneTarget, TopWords: pruneTop, RandomSample: pruneSample}
	if pruneSample < 0 {
		cfg.RandomSample = pruner.DefaultConfig().RandomSample
	}
	var rng *rand.Rand
	if pruneRandSeed != 0 {
		rng = rand.New(rand.NewSource(pruneRandSeed))
	}

	kept, err := pruner.New(cfg, rng).Prune(p.Words)
	if err != nil {
		OutputError(jsonOutput, "Pruning failed", err)
		os.Exit(CLIExitError)
	}

	pruned := &words.Puzzle{
		Letters:     p.Letters,
		Center:      p.Center,
		SeedWord:    p.SeedWord,
		SeedClue:    p.SeedClue,
		Words:       kept,
		Pangrams:    words.Pangrams(kept),
		MaxScore:    scoring.MaxScore(kept),
		TotalWords:  len(kept),
		Pruned:      true,
		GeneratedAt: p.GeneratedAt,
	}

	var written string
	if pruneOut != "" {
		path, werr := artifacts.WritePruned(pruneOut, pruned)
		if werr != nil {
			OutputError(jsonOutput, "Failed to write pruned artifact", werr)
			os.Exit(CLIExitError)
		}
		written = path
	}

	if jsonOutput {
		result := PruneResult{
			Puzzle:  pruned,
			Before:  p.TotalWords,
			After:   pruned.TotalWords,
			Written: written,
		}
		if encErr := OutputJSON(result, false); encErr != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode JSON: %v\n", encErr)
			os.Exit(CLIExitError)
		}
		os.Exit(CLIExitSuccess)
	}

	ux.Title("Pruned Word List")
	ux.Info(fmt.Sprintf("%d words kept of %d", pruned.TotalWords, p.TotalWords))
	for _, w := range pruned.Words {
		fmt.Println("  " + ux.WordLine(w.Word, scoring.WordScore(w), w.IsPangram))
	}
	ux.ScoreSummary(pruned.TotalWords, pruned.MaxScore, len(pruned.Pangrams))
	if written != "" {
		ux.Success(fmt.Sprintf("Wrote %s", written))
	}
}
