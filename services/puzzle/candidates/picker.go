// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package candidates

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/dictionary"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/generator"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/letterset"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/words"
)

// Result is a picked puzzle source: the winning seed, its alphabet
// with the chosen center, and the playable words already generated
// while evaluating it.
type Result struct {
	Seed  Seed
	Set   letterset.LetterSet
	Words []words.Word
}

// Picker selects a (seed, center) pair whose puzzle clears the minimum
// word count.
//
// # Description
//
// Seeds are walked in an order drawn from the Picker's random source
// and evaluated concurrently, up to Parallelism at a time. Each worker
// tries its seed's centers in a pre-drawn random order and stops at
// the first center meeting MinWords. The first winning seed cancels
// the rest of the group. All randomness is drawn before workers start,
// so a fixed source with Parallelism 1 replays exactly.
//
// Thread Safety:
//
//	Pick may not be called concurrently on one Picker; the random
//	source is stateful. The workers it spawns internally only share
//	the immutable index.
type Picker struct {
	// MinWords is the acceptance floor for a (seed, center) pair.
	MinWords int

	// Parallelism caps concurrent seed evaluations. Values below 1
	// are treated as 1.
	Parallelism int

	rng randSource
}

// randSource is the part of *rand.Rand the picker draws from.
type randSource interface {
	Perm(n int) []int
}

// NewPicker builds a Picker; rng must be non-nil.
func NewPicker(minWords, parallelism int, rng randSource) *Picker {
	if minWords <= 0 {
		minWords = DefaultMinWords
	}
	if parallelism < 1 {
		parallelism = 1
	}
	return &Picker{MinWords: minWords, Parallelism: parallelism, rng: rng}
}

// Pick evaluates seeds until one yields a playable puzzle.
//
// Returns *NoViableSeedError wrapping ErrNoViableSeed when every
// candidate is exhausted; the caller rescans with a lower threshold or
// a bigger sample.
func (p *Picker) Pick(ctx context.Context, idx *dictionary.Index, seeds []Seed) (*Result, error) {
	if len(seeds) == 0 {
		return nil, &NoViableSeedError{Tried: 0, MinWords: p.MinWords}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Draw all randomness up front: the seed walk order and one
	// center order per seed. Workers then never touch the source.
	order := p.rng.Perm(len(seeds))
	centerOrders := make([][]int, len(seeds))
	for i := range seeds {
		centerOrders[i] = p.rng.Perm(letterset.Size)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.Parallelism)

	var mu sync.Mutex
	var picked *Result

	for _, i := range order {
		seed := seeds[i]
		centers := centerOrders[i]
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return nil
			default:
			}
			res, ok := p.evaluate(idx, seed, centers)
			if !ok {
				return nil
			}
			mu.Lock()
			if picked == nil {
				picked = res
				cancel()
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	mu.Lock()
	defer mu.Unlock()
	if picked == nil {
		return nil, &NoViableSeedError{Tried: len(seeds), MinWords: p.MinWords}
	}
	return picked, nil
}

// EvaluateSeed tries one seed's centers in the given order and returns
// the first viable result. centerOrder indexes into the alphabet's
// ascending letters; nil means ascending. Used directly by batch
// generation, which walks its own seed list.
func (p *Picker) EvaluateSeed(idx *dictionary.Index, seed Seed, centerOrder []int) (*Result, bool) {
	return p.evaluate(idx, seed, centerOrder)
}

func (p *Picker) evaluate(idx *dictionary.Index, seed Seed, centerOrder []int) (*Result, bool) {
	alphabet, err := letterset.FromSeed(seed.Word)
	if err != nil {
		// Scan guarantees seven distinct letters; anything else is a
		// stale candidate artifact and is skipped.
		return nil, false
	}

	letters := alphabet.String()
	if centerOrder == nil {
		centerOrder = make([]int, letterset.Size)
		for i := range centerOrder {
			centerOrder[i] = i
		}
	}

	for _, ci := range centerOrder {
		set, err := alphabet.WithCenter(letters[ci])
		if err != nil {
			continue
		}
		ws, err := generator.Generate(idx, set)
		if err != nil {
			continue
		}
		if len(ws) >= p.MinWords {
			return &Result{Seed: seed, Set: set, Words: ws}, true
		}
	}
	return nil, false
}
