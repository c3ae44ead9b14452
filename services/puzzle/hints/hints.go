// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package hints derives spoiler-free summaries of a puzzle's word list.
//
// The matrix mirrors the classic printable hint sheet: a first-letter
// by word-length grid, two-letter prefix counts, and the headline
// totals players use to gauge progress without seeing any answers.
package hints

import (
	"sort"

	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/scoring"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/words"
)

// Totals are the headline numbers for a word list.
type Totals struct {
	Words    int `json:"words"`
	Points   int `json:"points"`
	Pangrams int `json:"pangrams"`
}

// Matrix is a hint sheet for one puzzle.
//
// Grid counts words by first letter and length; absent cells are zero.
// Prefixes counts words by their first two letters. Both maps are
// always non-nil after Build, even for an empty word list.
type Matrix struct {
	Grid     map[string]map[int]int `json:"grid"`
	Prefixes map[string]int         `json:"two_letter_counts"`
	Totals   Totals                 `json:"totals"`
}

// Build computes the hint matrix for a word list.
//
// # Inputs
//   - ws: the puzzle's words, typically Puzzle.Words.
//
// # Outputs
//   - Matrix: counts only, no word text beyond two-letter prefixes.
func Build(ws []words.Word) Matrix {
	m := Matrix{
		Grid:     make(map[string]map[int]int),
		Prefixes: make(map[string]int),
	}
	for _, w := range ws {
		if len(w.Word) < 2 {
			continue
		}
		first := w.Word[:1]
		row := m.Grid[first]
		if row == nil {
			row = make(map[int]int)
			m.Grid[first] = row
		}
		row[len(w.Word)]++
		m.Prefixes[w.Word[:2]]++

		m.Totals.Words++
		m.Totals.Points += scoring.WordScore(w)
		if w.IsPangram {
			m.Totals.Pangrams++
		}
	}
	return m
}

// FirstLetters returns the grid's row keys in alphabetical order.
func (m Matrix) FirstLetters() []string {
	out := make([]string, 0, len(m.Grid))
	for k := range m.Grid {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Lengths returns every word length present, ascending. Grid columns
// render in this order.
func (m Matrix) Lengths() []int {
	seen := make(map[int]struct{})
	for _, row := range m.Grid {
		for l := range row {
			seen[l] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	sort.Ints(out)
	return out
}

// RowTotal sums one letter's row.
func (m Matrix) RowTotal(letter string) int {
	n := 0
	for _, c := range m.Grid[letter] {
		n += c
	}
	return n
}

// ColumnTotal sums one length's column across all letters.
func (m Matrix) ColumnTotal(length int) int {
	n := 0
	for _, row := range m.Grid {
		n += row[length]
	}
	return n
}
