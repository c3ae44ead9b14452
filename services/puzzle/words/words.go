// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package words defines the puzzle value objects shared by the
// generation pipeline and the serving layer.
//
// Word lists use one canonical order everywhere: alphabetical by word.
// Generation, pruning, and artifacts all emit that order, which is what
// makes repeated runs byte-comparable and lets Puzzle lookups binary
// search.
//
// Thread Safety:
//
//	Word and Puzzle are value objects, immutable after construction,
//	and safe to share across goroutines.
package words

import (
	"sort"
	"time"
)

// MinLength is the shortest playable word.
const MinLength = 4

// Word is one playable dictionary word with its score-relevant
// metadata.
type Word struct {
	Word       string  `json:"word"`
	Frequency  float64 `json:"frequency"`
	Definition string  `json:"definition"`
	IsPangram  bool    `json:"is_pangram"`
}

// SortAlphabetical sorts a word list into canonical order in place.
func SortAlphabetical(ws []Word) {
	sort.Slice(ws, func(i, j int) bool { return ws[i].Word < ws[j].Word })
}

// Pangrams returns the pangram words of a list in ascending order.
func Pangrams(ws []Word) []string {
	var out []string
	for _, w := range ws {
		if w.IsPangram {
			out = append(out, w.Word)
		}
	}
	sort.Strings(out)
	return out
}

// Puzzle is the generated artifact: one alphabet, one center, and the
// playable word list with its score ceiling. A pruned puzzle has the
// same shape with Pruned set.
type Puzzle struct {
	Letters     string    `json:"letters"`
	Center      string    `json:"center"`
	SeedWord    string    `json:"seed_word,omitempty"`
	SeedClue    string    `json:"seed_word_clue,omitempty"`
	Words       []Word    `json:"valid_words"`
	Pangrams    []string  `json:"pangrams"`
	MaxScore    int       `json:"max_score"`
	TotalWords  int       `json:"total_words"`
	Pruned      bool      `json:"pruned,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Contains reports whether word is playable in this puzzle. Relies on
// the canonical alphabetical order of Words.
func (p *Puzzle) Contains(word string) bool {
	_, ok := p.Lookup(word)
	return ok
}

// Lookup returns the playable word record for word, if present.
func (p *Puzzle) Lookup(word string) (Word, bool) {
	i := sort.Search(len(p.Words), func(i int) bool { return p.Words[i].Word >= word })
	if i < len(p.Words) && p.Words[i].Word == word {
		return p.Words[i], true
	}
	return Word{}, false
}
