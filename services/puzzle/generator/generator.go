// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package generator enumerates the playable words for a puzzle
// alphabet.
package generator

import (
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/dictionary"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/letterset"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/words"
)

// Generate returns every dictionary word playable under set: only
// puzzle letters, center present, at least words.MinLength long.
// Pangram status is computed per word and the result is in canonical
// alphabetical order, so two runs over the same dictionary and set are
// identical.
//
// Returns a *EmptyResultError wrapping ErrEmptyResult when nothing is
// playable. That signals a poor seed or center choice; the caller
// retries with different input rather than this package retrying.
func Generate(idx *dictionary.Index, set letterset.LetterSet) ([]words.Word, error) {
	entries := idx.WordsWithLetters(set, words.MinLength)
	if len(entries) == 0 {
		return nil, &EmptyResultError{Letters: set.Letters.String(), Center: set.Center()}
	}

	out := make([]words.Word, 0, len(entries))
	for _, e := range entries {
		out = append(out, words.Word{
			Word:       e.Word,
			Frequency:  e.Frequency,
			Definition: e.Definition,
			IsPangram:  set.IsPangram(e.Word),
		})
	}
	words.SortAlphabetical(out)
	return out, nil
}
