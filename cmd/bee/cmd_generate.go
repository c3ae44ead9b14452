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
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jinseo0904/contextual-word-puzzle/pkg/ux"
	"github.com/jinseo0904/contextual-word-puzzle/pkg/validation"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/artifacts"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/candidates"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/dictionary"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/engine"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/generator"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/letterset"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/words"
)

// =============================================================================
// GENERATE COMMAND
// =============================================================================

// maxConcurrentPicks caps parallel puzzle picks in batch mode.
const maxConcurrentPicks = 4

// runGenerate is the CLI handler for the "bee generate" command.
//
// In manual mode (--seed and --center) it builds the puzzle for that
// exact pair. In auto mode (--auto) the picker chooses a viable seed
// and center from the candidate pool, and --count generates several
// puzzles concurrently. --prune reduces each word list to the playable
// subset, and --out writes the artifacts.
//
// # Exit Codes
//
//   - 0: Puzzle(s) generated
//   - 1: Seed rejected, no playable words, or no viable candidate
//   - 2: Error
func runGenerate(cmd *cobra.Command, args []string) {
	if err := generateFlagsError(generateSeed, generateCenter, generateAuto, generateCount); err != nil {
		OutputError(jsonOutput, "Invalid flags", err)
		os.Exit(CLIExitError)
	}

	idx := loadDictionary(generateDictionary)
	ctx := context.Background()

	var puzzles []*words.Puzzle
	if generateAuto {
		picked, err := pickPuzzles(ctx, idx, generateCount, generateRandSeed)
		if err != nil {
			OutputError(jsonOutput, "Generation failed", err)
			os.Exit(generationExitCode(err))
		}
		puzzles = picked
	} else {
		center, err := parseCenterByte(generateCenter)
		if err != nil {
			OutputError(jsonOutput, "Invalid flags", err)
			os.Exit(CLIExitError)
		}
		p, err := newGenerateEngine(idx, generateRandSeed).NewPuzzle(ctx, generateSeed, center)
		if err != nil {
			OutputError(jsonOutput, "Generation failed", err)
			os.Exit(generationExitCode(err))
		}
		puzzles = []*words.Puzzle{p}
	}

	// The full document is always archived; the pruned document is the
	// one players get.
	var written []string
	if generateOut != "" {
		for _, p := range puzzles {
			path, werr := artifacts.WritePuzzle(generateOut, p)
			if werr != nil {
				OutputError(jsonOutput, "Failed to write puzzle artifact", werr)
				os.Exit(CLIExitError)
			}
			written = append(written, path)
		}
	}

	if generatePrune {
		eng := newGenerateEngine(idx, generateRandSeed)
		for i, p := range puzzles {
			pruned, perr := eng.PrunePuzzle(ctx, p)
			if perr != nil {
				OutputError(jsonOutput, "Pruning failed", perr)
				os.Exit(CLIExitError)
			}
			puzzles[i] = pruned
			if generateOut != "" {
				path, werr := artifacts.WritePruned(generateOut, pruned)
				if werr != nil {
					OutputError(jsonOutput, "Failed to write pruned artifact", werr)
					os.Exit(CLIExitError)
				}
				written = append(written, path)
			}
		}
	}

	if jsonOutput {
		result := GenerateResult{Puzzles: puzzles, Written: written}
		if encErr := OutputJSON(result, false); encErr != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode JSON: %v\n", encErr)
			os.Exit(CLIExitError)
		}
		os.Exit(CLIExitSuccess)
	}

	for _, p := range puzzles {
		printPuzzleSummary(p)
	}
	for _, path := range written {
		ux.Success(fmt.Sprintf("Wrote %s", path))
	}
}

// generateFlagsError rejects unusable flag combinations before any
// work happens.
func generateFlagsError(seed, center string, auto bool, count int) error {
	switch {
	case auto && (seed != "" || center != ""):
		return errors.New("--auto cannot be combined with --seed or --center")
	case !auto && seed == "":
		return errors.New("pass --seed with --center, or --auto")
	case !auto && center == "":
		return errors.New("--center is required with --seed")
	case count < 1:
		return errors.New("--count must be at least 1")
	case !auto && count > 1:
		return errors.New("--count requires --auto")
	}
	return nil
}

// parseCenterByte normalizes a center flag value to its letter.
func parseCenterByte(s string) (byte, error) {
	return validation.SanitizeCenter(s)
}

// newGenerateEngine builds an engine with CLI defaults and the given
// random seed.
func newGenerateEngine(idx *dictionary.Index, randSeed int64) *engine.Engine {
	opts := engine.DefaultOptions()
	opts.RandSeed = randSeed
	return engine.New(idx, opts)
}

// pickPuzzles runs count picker rounds, up to maxConcurrentPicks at a
// time. With a pinned seed each round gets its own offset so the
// results differ but the batch as a whole replays.
func pickPuzzles(ctx context.Context, idx *dictionary.Index, count int, randSeed int64) ([]*words.Puzzle, error) {
	puzzles := make([]*words.Puzzle, count)

	var spin *ux.ProgressSpinner
	if !jsonOutput && count > 1 {
		spin = ux.NewProgressSpinner("Picking puzzles", count)
		spin.Start()
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentPicks)
	for i := 0; i < count; i++ {
		g.Go(func() error {
			seed := randSeed
			if seed != 0 {
				seed += int64(i)
			}
			p, err := newGenerateEngine(idx, seed).PickPuzzle(gctx)
			if err != nil {
				return err
			}
			mu.Lock()
			puzzles[i] = p
			if spin != nil {
				spin.Increment()
			}
			mu.Unlock()
			return nil
		})
	}
	err := g.Wait()
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return nil, err
	}
	return puzzles, nil
}

// generationExitCode separates "this input makes no puzzle" from real
// failures.
func generationExitCode(err error) int {
	if errors.Is(err, letterset.ErrInvalidSeed) ||
		errors.Is(err, letterset.ErrInvalidCenter) ||
		errors.Is(err, generator.ErrEmptyResult) ||
		errors.Is(err, candidates.ErrNoViableSeed) {
		return CLIExitFindings
	}
	return CLIExitError
}

// printPuzzleSummary renders one puzzle's headline for the terminal.
func printPuzzleSummary(p *words.Puzzle) {
	ux.Title("Puzzle " + strings.ToUpper(p.Letters))
	fmt.Println("  " + ux.Letters(p.Letters, p.Center[0]))
	if p.SeedWord != "" {
		ux.Muted(fmt.Sprintf("Seed word: %s", p.SeedWord))
	}
	if p.Pruned {
		ux.Muted("Word list pruned to the playable subset")
	}
	ux.ScoreSummary(p.TotalWords, p.MaxScore, len(p.Pangrams))
}
