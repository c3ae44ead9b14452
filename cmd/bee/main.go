// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// bee is the puzzle construction CLI.
//
// It drives the generation pipeline from the terminal: validate seed
// words, scan a dictionary for candidate seeds, generate and prune
// puzzles, print hint matrices, and solve letter sets. Every command
// takes --json for machine output; without it the output is styled for
// the terminal.
//
// Usage:
//
//	bee validate lactone
//	bee candidates --dictionary data/dictionary.json --sample 10
//	bee generate --dictionary data/dictionary.json --seed lactone --center a --prune
//	bee generate --dictionary data/dictionary.json --auto --count 5 --out ./puzzles
//	bee prune --in puzzles/puzzle_acelnot_a_2026-08-20.json --top 25 --sample 5
//	bee hints --in puzzles/puzzle_acelnot_a_2026-08-20.json
//	bee solve --dictionary data/dictionary.json --letters acelnot --center a
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(CLIExitError)
	}
}
