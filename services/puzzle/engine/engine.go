// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package engine is the facade over the generation pipeline: seed
// validation, word generation, scoring, pruning, candidate picking,
// word checking, and hint building behind one instrumented API used by
// both the CLI and the HTTP layer.
//
// # Design
//
// An Engine is stateless beyond its immutable dependencies, so one
// instance serves concurrent HTTP requests without locking. Every
// operation that needs randomness draws a fresh source per call;
// setting Options.RandSeed pins those sources for reproducible runs,
// at the cost that repeated calls replay the same draws.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/candidates"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/dictionary"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/generator"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/hints"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/letterset"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/pruner"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/scoring"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/telemetry"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/words"
)

var engineTracer = otel.Tracer("puzzle.engine")

// Options tunes the pipeline behind the facade.
type Options struct {
	// MinWords is the acceptance floor for picked puzzles.
	MinWords int

	// CandidateThreshold is the frequency floor for candidate seeds.
	CandidateThreshold float64

	// SampleSize is how many candidates each pick attempt draws.
	SampleSize int

	// Parallelism caps concurrent seed evaluations during picking.
	Parallelism int

	// Pruning sets the word-list reduction targets.
	Pruning pruner.Config

	// RandSeed pins every random draw when non-zero. Zero seeds each
	// operation from entropy.
	RandSeed int64

	// Metrics receives operation counters when non-nil.
	Metrics *telemetry.Metrics
}

// DefaultOptions returns the standard pipeline settings.
func DefaultOptions() Options {
	return Options{
		MinWords:           candidates.DefaultMinWords,
		CandidateThreshold: candidates.DefaultFrequencyThreshold,
		SampleSize:         candidates.DefaultSampleSize,
		Parallelism:        4,
		Pruning:            pruner.DefaultConfig(),
	}
}

// Engine composes the generation pipeline over one loaded dictionary.
//
// Thread Safety:
//
//	Safe for concurrent use. The index is immutable and every
//	operation builds its own random source.
type Engine struct {
	idx  *dictionary.Index
	opts Options
}

// New builds an Engine. Zero or negative option values fall back to
// the defaults.
func New(idx *dictionary.Index, opts Options) *Engine {
	def := DefaultOptions()
	if opts.MinWords < 1 {
		opts.MinWords = def.MinWords
	}
	if opts.CandidateThreshold < 0 {
		opts.CandidateThreshold = def.CandidateThreshold
	}
	if opts.SampleSize < 1 {
		opts.SampleSize = def.SampleSize
	}
	if opts.Parallelism < 1 {
		opts.Parallelism = def.Parallelism
	}
	return &Engine{idx: idx, opts: opts}
}

// Index returns the dictionary the engine serves from.
func (e *Engine) Index() *dictionary.Index { return e.idx }

// newRand builds the per-operation random source.
func (e *Engine) newRand() *rand.Rand {
	seed := e.opts.RandSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// ValidateSeed reduces a raw seed word to its canonical puzzle
// alphabet. Fails with a *letterset.SeedError when the seed has too
// few distinct letters.
func (e *Engine) ValidateSeed(seed string) (letterset.Letters, error) {
	return letterset.FromSeed(seed)
}

// NewPuzzle builds the full puzzle for a seed word and center letter.
//
// # Description
//
// Validates the seed, designates the center, enumerates the playable
// words, and assembles the scored puzzle document. The result carries
// the seed word and its dictionary definition as the puzzle clue when
// the seed is a dictionary entry.
//
// # Inputs
//
//   - ctx: Context for tracing
//   - seed: Raw seed word; case and punctuation are tolerated
//   - center: Required center letter, must be one of the seed's letters
//
// # Outputs
//
//   - *words.Puzzle: The complete unpruned puzzle
//   - error: Seed, center, or empty-result failure
func (e *Engine) NewPuzzle(ctx context.Context, seed string, center byte) (*words.Puzzle, error) {
	ctx, span := engineTracer.Start(ctx, "Engine.NewPuzzle",
		trace.WithAttributes(
			attribute.String("seed", seed),
			attribute.String("center", string(center)),
		))
	defer span.End()
	start := time.Now()

	letters, err := letterset.FromSeed(seed)
	if err != nil {
		e.recordGeneration(ctx, span, start, "invalid_seed", err)
		return nil, err
	}
	set, err := letters.WithCenter(center)
	if err != nil {
		e.recordGeneration(ctx, span, start, "invalid_center", err)
		return nil, err
	}

	ws, err := generator.Generate(e.idx, set)
	if err != nil {
		e.recordGeneration(ctx, span, start, "empty", err)
		return nil, err
	}

	seedWord := normalizeSeed(seed)
	seedClue := ""
	if entry, ok := e.idx.Entry(seedWord); ok {
		seedClue = entry.Definition
	}

	p := buildPuzzle(set, seedWord, seedClue, ws)
	span.SetAttributes(
		attribute.Int("puzzle.words", p.TotalWords),
		attribute.Int("puzzle.max_score", p.MaxScore),
	)
	e.recordGeneration(ctx, span, start, "ok", nil)
	telemetry.LoggerWithTrace(ctx, slog.Default()).Info("Generated puzzle",
		slog.String("letters", p.Letters),
		slog.String("center", p.Center),
		slog.Int("words", p.TotalWords),
		slog.Int("max_score", p.MaxScore))
	return p, nil
}

// NewPuzzleFromLetters builds the puzzle for an explicit alphabet.
//
// The letters must contain exactly seven distinct letters; the center
// must be one of them. Used by the solver path, where no seed word
// exists.
func (e *Engine) NewPuzzleFromLetters(ctx context.Context, lettersStr string, center byte) (*words.Puzzle, error) {
	ctx, span := engineTracer.Start(ctx, "Engine.NewPuzzleFromLetters",
		trace.WithAttributes(
			attribute.String("letters", lettersStr),
			attribute.String("center", string(center)),
		))
	defer span.End()
	start := time.Now()

	letters, err := letterset.FromLetters(lettersStr)
	if err != nil {
		e.recordGeneration(ctx, span, start, "invalid_seed", err)
		return nil, err
	}
	set, err := letters.WithCenter(center)
	if err != nil {
		e.recordGeneration(ctx, span, start, "invalid_center", err)
		return nil, err
	}

	ws, err := generator.Generate(e.idx, set)
	if err != nil {
		e.recordGeneration(ctx, span, start, "empty", err)
		return nil, err
	}

	p := buildPuzzle(set, "", "", ws)
	span.SetAttributes(attribute.Int("puzzle.words", p.TotalWords))
	e.recordGeneration(ctx, span, start, "ok", nil)
	return p, nil
}

// PickPuzzle scans the dictionary for candidate seeds, samples a
// batch, and picks the first one whose puzzle clears MinWords.
//
// Returns candidates.ErrNoViableSeed (wrapped) when the whole sample
// falls short; callers retry with a lower threshold or bigger sample.
func (e *Engine) PickPuzzle(ctx context.Context) (*words.Puzzle, error) {
	ctx, span := engineTracer.Start(ctx, "Engine.PickPuzzle")
	defer span.End()
	start := time.Now()

	rng := e.newRand()
	pool := candidates.Scan(e.idx, e.opts.CandidateThreshold)
	sample := candidates.Sample(pool, e.opts.SampleSize, rng)
	span.SetAttributes(
		attribute.Int("candidates.pool", len(pool)),
		attribute.Int("candidates.sampled", len(sample)),
	)
	// The event timestamps the scan/evaluate boundary within the span.
	telemetry.AddSpanEvent(span, "sample_drawn")
	if e.opts.Metrics != nil {
		e.opts.Metrics.SeedsEvaluated.Add(ctx, int64(len(sample)))
	}

	picker := candidates.NewPicker(e.opts.MinWords, e.opts.Parallelism, rng)
	res, err := picker.Pick(ctx, e.idx, sample)
	if err != nil {
		e.recordGeneration(ctx, span, start, "no_viable_seed", err)
		telemetry.LoggerWithTrace(ctx, slog.Default()).Warn("No viable seed in sample",
			slog.Int("sampled", len(sample)),
			slog.Int("min_words", e.opts.MinWords))
		return nil, err
	}

	p := buildPuzzle(res.Set, res.Seed.Word, res.Seed.Definition, res.Words)
	span.SetAttributes(
		attribute.String("puzzle.seed", res.Seed.Word),
		attribute.Int("puzzle.words", p.TotalWords),
	)
	e.recordGeneration(ctx, span, start, "ok", nil)
	telemetry.LoggerWithTrace(ctx, slog.Default()).Info("Picked puzzle",
		slog.String("seed", p.SeedWord),
		slog.String("letters", p.Letters),
		slog.String("center", p.Center),
		slog.Int("words", p.TotalWords))
	return p, nil
}

// PrunePuzzle reduces a puzzle's word list to the configured playable
// subset and rescores it. The input puzzle is never mutated.
func (e *Engine) PrunePuzzle(ctx context.Context, p *words.Puzzle) (*words.Puzzle, error) {
	ctx, span := engineTracer.Start(ctx, "Engine.PrunePuzzle",
		trace.WithAttributes(
			attribute.String("letters", p.Letters),
			attribute.Int("words.before", len(p.Words)),
		))
	defer span.End()

	pr := pruner.New(e.opts.Pruning, e.newRand())
	pruned, err := pr.Prune(p.Words)
	if err != nil {
		telemetry.RecordError(span, err)
		if e.opts.Metrics != nil {
			e.opts.Metrics.ErrorsTotal.Add(ctx, 1, metric.WithAttributes(
				attribute.String("component", "pruner"),
			))
		}
		return nil, fmt.Errorf("prune %s: %w", p.Letters, err)
	}

	out := &words.Puzzle{
		Letters:     p.Letters,
		Center:      p.Center,
		SeedWord:    p.SeedWord,
		SeedClue:    p.SeedClue,
		Words:       pruned,
		Pangrams:    words.Pangrams(pruned),
		MaxScore:    scoring.MaxScore(pruned),
		TotalWords:  len(pruned),
		Pruned:      true,
		GeneratedAt: p.GeneratedAt,
	}
	if out.GeneratedAt.IsZero() {
		out.GeneratedAt = time.Now().UTC()
	}

	span.SetAttributes(attribute.Int("words.after", out.TotalWords))
	telemetry.SetSpanOK(span)
	if e.opts.Metrics != nil {
		e.opts.Metrics.PrunesTotal.Add(ctx, 1)
	}
	return out, nil
}

// CheckWord validates a played word against a puzzle and the session's
// found set.
func (e *Engine) CheckWord(ctx context.Context, p *words.Puzzle, found map[string]bool, word string) scoring.CheckResult {
	res := scoring.Check(p, found, word)
	if e.opts.Metrics != nil {
		result := "invalid"
		switch {
		case res.Valid:
			result = "valid"
		case res.AlreadyFound:
			result = "duplicate"
		}
		e.opts.Metrics.WordChecksTotal.Add(ctx, 1, metric.WithAttributes(
			attribute.String("result", result),
		))
	}
	return res
}

// Hints builds the hint matrix for a puzzle's playable words.
func (e *Engine) Hints(ctx context.Context, p *words.Puzzle) hints.Matrix {
	m := hints.Build(p.Words)
	if e.opts.Metrics != nil {
		e.opts.Metrics.HintBuildsTotal.Add(ctx, 1)
	}
	return m
}

// recordGeneration stamps a generation outcome onto the span and the
// optional metrics.
func (e *Engine) recordGeneration(ctx context.Context, span trace.Span, start time.Time, status string, err error) {
	if err != nil {
		telemetry.RecordError(span, err)
	} else {
		telemetry.SetSpanOK(span)
	}
	if e.opts.Metrics == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("status", status))
	e.opts.Metrics.GenerationsTotal.Add(ctx, 1, attrs)
	e.opts.Metrics.GenerationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
}

// buildPuzzle assembles the scored puzzle document from a generated
// word list, which Generate already returns in canonical order.
func buildPuzzle(set letterset.LetterSet, seedWord, seedClue string, ws []words.Word) *words.Puzzle {
	return &words.Puzzle{
		Letters:     set.Letters.String(),
		Center:      string(set.Center()),
		SeedWord:    seedWord,
		SeedClue:    seedClue,
		Words:       ws,
		Pangrams:    words.Pangrams(ws),
		MaxScore:    scoring.MaxScore(ws),
		TotalWords:  len(ws),
		GeneratedAt: time.Now().UTC(),
	}
}

// normalizeSeed lowercases a seed and strips everything but letters,
// matching the tolerance of letterset.FromSeed.
func normalizeSeed(seed string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(seed) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
