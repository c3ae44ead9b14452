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
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jinseo0904/contextual-word-puzzle/pkg/ux"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/letterset"
)

// =============================================================================
// VALIDATE COMMAND
// =============================================================================

// runValidate is the CLI handler for the "bee validate" command.
//
// It reduces the seed word to its canonical letter set and reports the
// possible center letters. Seeds with more than seven distinct letters
// are reduced, not rejected, so the output shows what the puzzle would
// actually use.
//
// # Exit Codes
//
//   - 0: Seed yields a legal letter set
//   - 1: Seed has too few distinct letters
func runValidate(cmd *cobra.Command, args []string) {
	seed := args[0]

	set, err := letterset.FromSeed(seed)
	if err != nil {
		if jsonOutput {
			result := ValidateResult{Seed: seed, Valid: false, Error: err.Error()}
			if encErr := OutputJSON(result, false); encErr != nil {
				fmt.Fprintf(os.Stderr, "Failed to encode JSON: %v\n", encErr)
				os.Exit(CLIExitError)
			}
			os.Exit(CLIExitFindings)
		}
		ux.Error(err.Error())
		os.Exit(CLIExitFindings)
	}

	letters := set.String()
	if jsonOutput {
		result := ValidateResult{
			Seed:          seed,
			Valid:         true,
			Letters:       letters,
			CenterOptions: centerOptions(letters),
		}
		if encErr := OutputJSON(result, false); encErr != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode JSON: %v\n", encErr)
			os.Exit(CLIExitError)
		}
		os.Exit(CLIExitSuccess)
	}

	ux.Title("Seed Validation")
	ux.Success(fmt.Sprintf("%q yields the letter set %s", seed, strings.ToUpper(letters)))
	ux.Muted(fmt.Sprintf("Center options: %s", strings.Join(centerOptions(letters), " ")))
}

// centerOptions lists each letter of the set as a one-letter string,
// in canonical order.
func centerOptions(letters string) []string {
	opts := make([]string, 0, len(letters))
	for i := 0; i < len(letters); i++ {
		opts = append(opts, string(letters[i]))
	}
	return opts
}
