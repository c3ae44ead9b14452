// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package session tracks in-flight games for the serving layer.
//
// The store owns all mutability. Callers read immutable snapshots,
// run the pure word check, and feed accepted results back through
// Apply. Two racing submissions of the same word both pass the check;
// Apply resolves the race under the write lock, so the word and its
// points are only counted once.
//
// Thread Safety:
//
//	Safe for concurrent use.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/scoring"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/words"
)

// State is an immutable snapshot of one game.
//
// Found preserves the order words were accepted in.
type State struct {
	ID         string    `json:"session_id"`
	Found      []string  `json:"found_words"`
	Score      int       `json:"score"`
	CreatedAt  time.Time `json:"created_at"`
	LastActive time.Time `json:"last_active"`
}

type record struct {
	puzzle     *words.Puzzle
	found      map[string]bool
	order      []string
	score      int
	createdAt  time.Time
	lastActive time.Time
}

// Store holds active sessions keyed by UUID.
type Store struct {
	mu   sync.RWMutex
	byID map[string]*record
	now  func() time.Time
}

// NewStore returns an empty session store.
func NewStore() *Store {
	return &Store{byID: make(map[string]*record), now: time.Now}
}

// Create opens a session for p and returns its initial state.
func (s *Store) Create(p *words.Puzzle) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	now := s.now()
	r := &record{
		puzzle:     p,
		found:      make(map[string]bool),
		createdAt:  now,
		lastActive: now,
	}
	s.byID[id] = r

	sessionsCreated.Inc()
	sessionsActive.Set(float64(len(s.byID)))
	return snapshot(id, r)
}

// Puzzle returns the puzzle a session plays against. Puzzles are
// immutable, so the pointer is shared.
func (s *Store) Puzzle(id string) (*words.Puzzle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.byID[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return r.puzzle, nil
}

// State returns a snapshot of the session.
func (s *Store) State(id string) (State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.byID[id]
	if !ok {
		return State{}, &NotFoundError{ID: id}
	}
	return snapshot(id, r), nil
}

// Found returns a copy of the session's found-word set and marks the
// session active. Taking the write lock here keeps struggling players
// alive: every guess refreshes the idle clock, not just correct ones.
func (s *Store) Found(id string) (map[string]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.byID[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	r.lastActive = s.now()

	out := make(map[string]bool, len(r.found))
	for w := range r.found {
		out[w] = true
	}
	return out, nil
}

// Apply records a check result against the session and returns the
// updated state. Invalid results only refresh the idle clock; a word
// that was already applied is not counted again.
func (s *Store) Apply(id string, res scoring.CheckResult) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.byID[id]
	if !ok {
		return State{}, &NotFoundError{ID: id}
	}
	r.lastActive = s.now()

	if res.Valid && !r.found[res.Word] {
		r.found[res.Word] = true
		r.order = append(r.order, res.Word)
		r.score += res.Points
		wordsAccepted.Inc()
	}
	return snapshot(id, r), nil
}

// Sweep evicts sessions idle longer than maxIdle and reports how many
// were dropped.
func (s *Store) Sweep(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxIdle)
	n := 0
	for id, r := range s.byID {
		if r.lastActive.Before(cutoff) {
			delete(s.byID, id)
			n++
		}
	}
	sessionsActive.Set(float64(len(s.byID)))
	return n
}

// SweepLoop runs Sweep every interval until ctx is canceled.
func (s *Store) SweepLoop(ctx context.Context, interval, maxIdle time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := s.Sweep(maxIdle); n > 0 {
				slog.Debug("swept idle sessions", slog.Int("evicted", n))
			}
		}
	}
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

func snapshot(id string, r *record) State {
	return State{
		ID:         id,
		Found:      append([]string(nil), r.order...),
		Score:      r.score,
		CreatedAt:  r.createdAt,
		LastActive: r.lastActive,
	}
}
