// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package scoring implements pangram detection, point values, and
// play-time word checking. Every function here is pure and total:
// identical inputs always produce identical results, with no side
// effects, which is what the serving layer leans on for real-time
// validation.
package scoring

import (
	"fmt"
	"strings"

	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/letterset"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/words"
)

// PangramBonus is added on top of a pangram's length score.
const PangramBonus = 7

// Score returns the point value for a playable word: 1 point for a
// minimum-length word, the word's length otherwise, plus PangramBonus
// when the word is a pangram.
func Score(word string, pangram bool) int {
	points := len(word)
	if len(word) == words.MinLength {
		points = 1
	}
	if pangram {
		points += PangramBonus
	}
	return points
}

// IsPangram reports whether word uses every letter of the puzzle
// alphabet exactly.
func IsPangram(word string, set letterset.LetterSet) bool {
	return set.IsPangram(word)
}

// WordScore returns the point value of a generated word.
func WordScore(w words.Word) int {
	return Score(w.Word, w.IsPangram)
}

// MaxScore sums the point values over a word list. Recompute it after
// pruning; pruned puzzles never inherit the unpruned ceiling.
func MaxScore(ws []words.Word) int {
	total := 0
	for _, w := range ws {
		total += WordScore(w)
	}
	return total
}

// CheckResult is the outcome of validating one played word.
type CheckResult struct {
	Word         string `json:"word"`
	Valid        bool   `json:"valid"`
	Reason       string `json:"reason,omitempty"`
	Points       int    `json:"points,omitempty"`
	IsPangram    bool   `json:"is_pangram,omitempty"`
	AlreadyFound bool   `json:"already_found,omitempty"`
}

// Check validates a played word against a puzzle and the words already
// found this session.
//
// # Description
//
// The play rules are applied in order: letters only, puzzle letters
// only, center required, minimum length, membership in the playable
// list, then duplicates. The first failure wins and its reason is
// always populated. Check never mutates its inputs; recording an
// accepted word is the session store's job.
//
// # Inputs
//
//   - p: The puzzle being played. Its word list is in canonical
//     alphabetical order.
//   - found: Words already accepted this session; nil means none.
//   - word: The raw submission. Case and surrounding space are
//     normalized before checking.
//
// # Outputs
//
//   - CheckResult: Valid with Points and IsPangram set, or invalid
//     with a human-readable Reason.
func Check(p *words.Puzzle, found map[string]bool, word string) CheckResult {
	w := strings.ToLower(strings.TrimSpace(word))
	res := CheckResult{Word: w}

	if w == "" {
		res.Reason = "no word submitted"
		return res
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			res.Reason = "words may only contain letters"
			return res
		}
	}

	setMask := letterset.WordMask(p.Letters)
	wordMask := letterset.WordMask(w)
	if outside := wordMask &^ setMask; outside != 0 {
		res.Reason = fmt.Sprintf("uses letters not in the puzzle: %s", spell(outside.Letters()))
		return res
	}
	if p.Center != "" && !wordMask.Has(p.Center[0]) {
		res.Reason = fmt.Sprintf("must contain the center letter %q", p.Center)
		return res
	}
	if len(w) < words.MinLength {
		res.Reason = fmt.Sprintf("words must be at least %d letters", words.MinLength)
		return res
	}

	entry, ok := p.Lookup(w)
	if !ok {
		res.Reason = "not in the word list"
		return res
	}
	if found[w] {
		res.AlreadyFound = true
		res.Reason = "already found"
		return res
	}

	res.Valid = true
	res.IsPangram = entry.IsPangram
	res.Points = Score(w, entry.IsPangram)
	return res
}

// spell renders a letter run as a comma-separated list for messages.
func spell(letters string) string {
	parts := make([]string, len(letters))
	for i := 0; i < len(letters); i++ {
		parts[i] = string(letters[i])
	}
	return strings.Join(parts, ", ")
}
