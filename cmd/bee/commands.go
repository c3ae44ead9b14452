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
	"github.com/spf13/cobra"

	"github.com/jinseo0904/contextual-word-puzzle/pkg/ux"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/candidates"
)

// --- Global Command Variables ---
var (
	jsonOutput       bool
	personalityLevel string // UX personality level (full/standard/minimal/machine)

	// --- Candidates ---
	candidatesDictionary string
	candidatesThreshold  float64
	candidatesSample     int
	candidatesOut        string

	// --- Generate ---
	generateDictionary string
	generateSeed       string
	generateCenter     string
	generateAuto       bool
	generatePrune      bool
	generateOut        string
	generateCount      int
	generateRandSeed   int64

	// --- Prune ---
	pruneIn       string
	pruneOut      string
	pruneTarget   int
	pruneTop      int
	pruneSample   int
	pruneRandSeed int64

	// --- Hints ---
	hintsIn string

	// --- Solve ---
	solveDictionary string
	solveLetters    string
	solveCenter     string

	rootCmd = &cobra.Command{
		Use:   "bee",
		Short: "A cli to build and inspect spelling bee puzzles",
		Long: `bee drives the puzzle generation pipeline from the terminal:
				validate seed words, scan for candidates, generate and prune
				puzzles, print hint matrices, and solve letter sets.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize UX personality from flag or environment
			if personalityLevel != "" {
				ux.SetPersonalityLevel(ux.ParsePersonalityLevel(personalityLevel))
			} else {
				ux.InitPersonality()
			}
		},
	}

	validateCmd = &cobra.Command{
		Use:   "validate [seed word]",
		Short: "Check whether a seed word yields a legal seven-letter set",
		Args:  cobra.ExactArgs(1),
		Run:   runValidate, // Defined in cmd_validate.go
	}

	candidatesCmd = &cobra.Command{
		Use:   "candidates",
		Short: "Scan a dictionary for seven-distinct-letter seed candidates",
		Run:   runCandidates, // Defined in cmd_candidates.go
	}

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle from a seed word or let the picker choose one",
		Run:   runGenerate, // Defined in cmd_generate.go
	}

	pruneCmd = &cobra.Command{
		Use:   "prune",
		Short: "Reduce a puzzle artifact to a balanced playable word list",
		Run:   runPrune, // Defined in cmd_prune.go
	}

	hintsCmd = &cobra.Command{
		Use:   "hints",
		Short: "Print the hint matrix for a puzzle artifact",
		Run:   runHints, // Defined in cmd_hints.go
	}

	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "List every playable word for a letter set and center",
		Run:   runSolve, // Defined in cmd_solve.go
	}
)

// init runs when the Go program starts
func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false,
		"Output machine-readable JSON instead of styled text")
	rootCmd.PersistentFlags().StringVar(&personalityLevel, "personality", "",
		"Output style: full (default), standard, minimal, or machine (scripting)")

	rootCmd.AddCommand(validateCmd)

	rootCmd.AddCommand(candidatesCmd)
	candidatesCmd.Flags().StringVar(&candidatesDictionary, "dictionary", "", "Path to the dictionary JSON file")
	candidatesCmd.Flags().Float64Var(&candidatesThreshold, "threshold", candidates.DefaultFrequencyThreshold,
		"Minimum word frequency for a candidate seed")
	candidatesCmd.Flags().IntVar(&candidatesSample, "sample", 0,
		"Randomly sample this many candidates instead of listing all")
	candidatesCmd.Flags().StringVar(&candidatesOut, "out", "",
		"Directory to write the candidate artifact into")

	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&generateDictionary, "dictionary", "", "Path to the dictionary JSON file")
	generateCmd.Flags().StringVar(&generateSeed, "seed", "", "Seed word to build the puzzle from")
	generateCmd.Flags().StringVar(&generateCenter, "center", "", "Required center letter (single a-z)")
	generateCmd.Flags().BoolVar(&generateAuto, "auto", false,
		"Let the picker choose a viable seed and center")
	generateCmd.Flags().BoolVar(&generatePrune, "prune", false,
		"Prune the word list to a balanced playable subset")
	generateCmd.Flags().StringVar(&generateOut, "out", "",
		"Directory to write puzzle artifacts into")
	generateCmd.Flags().IntVar(&generateCount, "count", 1,
		"Number of puzzles to generate (auto mode only)")
	generateCmd.Flags().Int64Var(&generateRandSeed, "rand-seed", 0,
		"Pin all random draws for reproducible output (0 = entropy)")

	rootCmd.AddCommand(pruneCmd)
	pruneCmd.Flags().StringVar(&pruneIn, "in", "", "Path to the puzzle artifact to prune")
	pruneCmd.Flags().StringVar(&pruneOut, "out", "",
		"Directory to write the pruned artifact into")
	pruneCmd.Flags().IntVar(&pruneTarget, "target", 0,
		"Playable-list size to aim for (0 = default 30)")
	pruneCmd.Flags().IntVar(&pruneTop, "top", 0,
		"Frequency-cut budget, pangrams included (0 = default 25)")
	pruneCmd.Flags().IntVar(&pruneSample, "sample", -1,
		"Random words kept beyond the frequency cut (-1 = default 5)")
	pruneCmd.Flags().Int64Var(&pruneRandSeed, "rand-seed", 0,
		"Pin the random sample for reproducible output (0 = entropy)")

	rootCmd.AddCommand(hintsCmd)
	hintsCmd.Flags().StringVar(&hintsIn, "in", "", "Path to the puzzle artifact")

	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&solveDictionary, "dictionary", "", "Path to the dictionary JSON file")
	solveCmd.Flags().StringVar(&solveLetters, "letters", "", "The seven puzzle letters")
	solveCmd.Flags().StringVar(&solveCenter, "center", "", "Required center letter (single a-z)")
}
