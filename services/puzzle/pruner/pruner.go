// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package pruner reduces an oversized word list to a balanced playable
// subset.
//
// # Selection policy
//
// Pangrams are never pruned. Non-pangrams are selected in two passes:
// the most frequent K words (K = TopWords minus retained pangrams),
// then a random sample from whatever remains. A list already at or
// under Target passes through untouched. The random source is injected
// so tests can pin the sample; production uses an entropy-seeded
// default.
//
// Thread Safety:
//
//	A Pruner is NOT safe for concurrent use; its random source is
//	stateful. Build one per pipeline run.
package pruner

import (
	"math/rand"
	"sort"
	"time"

	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/words"
)

// Config sets the pruning targets.
type Config struct {
	// Target is the playable-list size the pruner aims for. Lists at
	// or under Target pass through untouched; pangrams are retained
	// even when that overshoots the target.
	Target int

	// TopWords is the frequency-cut budget. Retained pangrams count
	// against it; whatever is left selects the most common
	// non-pangrams.
	TopWords int

	// RandomSample is how many words are drawn at random from beyond
	// the frequency cut, keeping less common words in play.
	RandomSample int
}

// DefaultConfig returns the standard targets: thirty words, the
// twenty-five most common plus five drawn at random.
func DefaultConfig() Config {
	return Config{Target: 30, TopWords: 25, RandomSample: 5}
}

func (c Config) sanitized() Config {
	def := DefaultConfig()
	if c.Target <= 0 {
		c.Target = def.Target
	}
	if c.TopWords <= 0 {
		c.TopWords = def.TopWords
	}
	if c.RandomSample < 0 {
		c.RandomSample = 0
	}
	if c.RandomSample > c.Target {
		c.RandomSample = c.Target
	}
	return c
}

// Pruner applies the selection policy with a fixed configuration and
// random source.
type Pruner struct {
	cfg Config
	rng *rand.Rand
}

// New creates a Pruner. A nil rng gets an entropy-seeded source; tests
// pass rand.New(rand.NewSource(k)) for reproducible samples.
func New(cfg Config, rng *rand.Rand) *Pruner {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Pruner{cfg: cfg.sanitized(), rng: rng}
}

// Prune selects the playable subset of ws.
//
// # Description
//
// Lists at or under Target are returned unchanged apart from canonical
// ordering, so pruning is idempotent on already-small lists. Larger
// lists keep every pangram, the top-K non-pangrams by descending
// frequency (ties alphabetical, K = TopWords minus the pangrams kept),
// and a without-replacement random sample from the rest. When fewer
// non-pangrams exist than the frequency cut plus the reserve, all of
// them are taken; nothing is padded or duplicated.
//
// The caller recomputes MaxScore and TotalWords on the result; pruned
// puzzles never inherit the unpruned ceiling.
//
// # Outputs
//
//   - []words.Word: The pruned list in alphabetical order. Always a
//     fresh slice; the input is never mutated.
//   - error: *InsufficientWordsError when the result is empty or lost
//     every pangram the input had. That is an internal defect, not a
//     user error: log it and halt the run.
func (p *Pruner) Prune(ws []words.Word) ([]words.Word, error) {
	if len(ws) == 0 {
		return nil, &InsufficientWordsError{Reason: "input word list is empty"}
	}

	if len(ws) <= p.cfg.Target {
		out := make([]words.Word, len(ws))
		copy(out, ws)
		words.SortAlphabetical(out)
		return out, nil
	}

	var pangrams, rest []words.Word
	for _, w := range ws {
		if w.IsPangram {
			pangrams = append(pangrams, w)
		} else {
			rest = append(rest, w)
		}
	}

	k := p.cfg.TopWords - len(pangrams)
	if k < 0 {
		k = 0
	}

	var selected []words.Word
	if len(rest) <= k+p.cfg.RandomSample {
		selected = rest
	} else {
		sort.Slice(rest, func(i, j int) bool {
			if rest[i].Frequency != rest[j].Frequency {
				return rest[i].Frequency > rest[j].Frequency
			}
			return rest[i].Word < rest[j].Word
		})
		selected = append(selected, rest[:k]...)
		remainder := rest[k:]
		for _, i := range p.rng.Perm(len(remainder))[:p.cfg.RandomSample] {
			selected = append(selected, remainder[i])
		}
	}

	out := make([]words.Word, 0, len(pangrams)+len(selected))
	out = append(out, pangrams...)
	out = append(out, selected...)
	words.SortAlphabetical(out)

	if len(out) == 0 {
		return nil, &InsufficientWordsError{Reason: "selection produced an empty list"}
	}
	if len(pangrams) > 0 && len(words.Pangrams(out)) == 0 {
		return nil, &InsufficientWordsError{Reason: "selection dropped every pangram"}
	}
	return out, nil
}
