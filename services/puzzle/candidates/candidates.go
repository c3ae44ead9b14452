// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package candidates finds seed words that can anchor a puzzle and
// picks a viable (seed, center) pair from them.
//
// A candidate seed is a dictionary word built from exactly seven
// distinct letters with enough frequency that players will recognize
// it. Picking walks candidates in random order and tries each center
// until one yields the minimum playable-word count.
package candidates

import (
	"math/rand"
	"sort"

	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/dictionary"
)

const (
	// DefaultFrequencyThreshold is the floor a word must clear to be
	// considered a recognizable seed.
	DefaultFrequencyThreshold = 7e-06

	// DefaultSampleSize is how many candidates a scan keeps for the
	// picking stage.
	DefaultSampleSize = 10

	// DefaultMinWords is the smallest playable-word count a picked
	// puzzle may have.
	DefaultMinWords = 20
)

// Seed is one candidate seed word.
type Seed struct {
	Word       string  `json:"word"`
	Frequency  float64 `json:"frequency"`
	Definition string  `json:"definition"`
}

// Scan returns every candidate seed in the dictionary: exactly seven
// distinct letters, frequency strictly above minFrequency. Results are
// ordered by descending frequency, ties alphabetical, so the most
// recognizable candidates lead.
func Scan(idx *dictionary.Index, minFrequency float64) []Seed {
	entries := idx.SevenLetterWords(minFrequency)
	out := make([]Seed, 0, len(entries))
	for _, e := range entries {
		out = append(out, Seed{Word: e.Word, Frequency: e.Frequency, Definition: e.Definition})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Frequency != out[j].Frequency {
			return out[i].Frequency > out[j].Frequency
		}
		return out[i].Word < out[j].Word
	})
	return out
}

// Sample draws n seeds without replacement; rng must be non-nil. When
// n meets or exceeds the pool it returns a copy of the whole pool.
func Sample(seeds []Seed, n int, rng *rand.Rand) []Seed {
	if n >= len(seeds) {
		out := make([]Seed, len(seeds))
		copy(out, seeds)
		return out
	}
	out := make([]Seed, 0, n)
	for _, i := range rng.Perm(len(seeds))[:n] {
		out = append(out, seeds[i])
	}
	return out
}
