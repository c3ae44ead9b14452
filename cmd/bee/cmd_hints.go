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
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jinseo0904/contextual-word-puzzle/pkg/ux"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/artifacts"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/hints"
)

// =============================================================================
// HINTS COMMAND
// =============================================================================

// runHints is the CLI handler for the "bee hints" command.
//
// It prints the classic hint sheet for a puzzle artifact: a first
// letter by word length grid with row and column totals, the two
// letter prefix counts, and the headline numbers. No answer beyond a
// two-letter prefix appears in the output.
//
// # Exit Codes
//
//   - 0: Hint sheet printed
//   - 2: Error (missing or unreadable artifact)
func runHints(cmd *cobra.Command, args []string) {
	if hintsIn == "" {
		OutputError(jsonOutput, "Missing required flag", errors.New("--in is required"))
		os.Exit(CLIExitError)
	}

	p, err := artifacts.ReadPuzzle(hintsIn)
	if err != nil {
		OutputError(jsonOutput, "Failed to read puzzle artifact", err)
		os.Exit(CLIExitError)
	}

	m := hints.Build(p.Words)

	if jsonOutput {
		if encErr := OutputJSON(m, false); encErr != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode JSON: %v\n", encErr)
			os.Exit(CLIExitError)
		}
		os.Exit(CLIExitSuccess)
	}

	ux.Title("Hint Sheet " + strings.ToUpper(p.Letters))
	fmt.Println("  " + ux.Letters(p.Letters, p.Center[0]))
	fmt.Println()
	fmt.Print(renderHintGrid(m))
	fmt.Println()
	ux.Muted("Two-letter prefixes: " + renderPrefixes(m))
	ux.ScoreSummary(m.Totals.Words, m.Totals.Points, m.Totals.Pangrams)
}

// renderHintGrid lays out the first-letter by length grid as plain
// text, one row per starting letter plus a totals row. Zero cells
// print as dashes, the way the printable sheets do.
func renderHintGrid(m hints.Matrix) string {
	letters := m.FirstLetters()
	lengths := m.Lengths()
	if len(letters) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("      ")
	for _, l := range lengths {
		fmt.Fprintf(&b, "%4d", l)
	}
	b.WriteString("   tot\n")

	for _, letter := range letters {
		fmt.Fprintf(&b, "    %s:", strings.ToUpper(letter))
		for _, l := range lengths {
			if n := m.Grid[letter][l]; n > 0 {
				fmt.Fprintf(&b, "%4d", n)
			} else {
				b.WriteString("   -")
			}
		}
		fmt.Fprintf(&b, "%6d\n", m.RowTotal(letter))
	}

	b.WriteString("  tot:")
	for _, l := range lengths {
		fmt.Fprintf(&b, "%4d", m.ColumnTotal(l))
	}
	fmt.Fprintf(&b, "%6d\n", m.Totals.Words)
	return b.String()
}

// renderPrefixes joins the two-letter counts as "pr:N" pairs in
// alphabetical order.
func renderPrefixes(m hints.Matrix) string {
	keys := make([]string, 0, len(m.Prefixes))
	for k := range m.Prefixes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s:%d", k, m.Prefixes[k]))
	}
	return strings.Join(parts, " ")
}
