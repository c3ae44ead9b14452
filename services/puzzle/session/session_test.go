// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/scoring"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/words"
)

func testPuzzle() *words.Puzzle {
	return &words.Puzzle{
		Letters: "acelnot",
		Center:  "a",
		Words: []words.Word{
			{Word: "alone", Frequency: 2e-05},
			{Word: "clean", Frequency: 5e-05},
			{Word: "lactone", Frequency: 8e-06, IsPangram: true},
			{Word: "neat", Frequency: 4e-05},
		},
		Pangrams:   []string{"lactone"},
		MaxScore:   25,
		TotalWords: 4,
	}
}

func TestCreateAndState(t *testing.T) {
	s := NewStore()
	p := testPuzzle()

	st := s.Create(p)
	if len(st.ID) != 36 {
		t.Fatalf("Create() ID = %q, want UUID", st.ID)
	}
	if st.Score != 0 || len(st.Found) != 0 {
		t.Errorf("initial state = %+v, want empty", st)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}

	got, err := s.Puzzle(st.ID)
	if err != nil {
		t.Fatalf("Puzzle() error = %v", err)
	}
	if got != p {
		t.Error("Puzzle() must return the shared immutable pointer")
	}
}

func TestApplyRecordsWords(t *testing.T) {
	s := NewStore()
	st := s.Create(testPuzzle())

	st, err := s.Apply(st.ID, scoring.CheckResult{Word: "alone", Valid: true, Points: 5})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if st.Score != 5 {
		t.Errorf("Score = %d, want 5", st.Score)
	}

	st, err = s.Apply(st.ID, scoring.CheckResult{Word: "lactone", Valid: true, Points: 14, IsPangram: true})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if st.Score != 19 {
		t.Errorf("Score = %d, want 19", st.Score)
	}
	if len(st.Found) != 2 || st.Found[0] != "alone" || st.Found[1] != "lactone" {
		t.Errorf("Found = %v, want acceptance order [alone lactone]", st.Found)
	}
}

func TestApplyDedupes(t *testing.T) {
	s := NewStore()
	st := s.Create(testPuzzle())

	res := scoring.CheckResult{Word: "alone", Valid: true, Points: 5}
	if _, err := s.Apply(st.ID, res); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	st, err := s.Apply(st.ID, res)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if st.Score != 5 || len(st.Found) != 1 {
		t.Errorf("repeated Apply counted twice: score %d, found %v", st.Score, st.Found)
	}
}

func TestApplyInvalidResult(t *testing.T) {
	s := NewStore()
	st := s.Create(testPuzzle())

	st, err := s.Apply(st.ID, scoring.CheckResult{Word: "zzz", Reason: "not in the word list"})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if st.Score != 0 || len(st.Found) != 0 {
		t.Errorf("invalid result changed state: %+v", st)
	}
}

func TestUnknownSession(t *testing.T) {
	s := NewStore()

	if _, err := s.State("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("State() error = %v, want ErrNotFound", err)
	}
	if _, err := s.Found("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Found() error = %v, want ErrNotFound", err)
	}
	if _, err := s.Apply("nope", scoring.CheckResult{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Apply() error = %v, want ErrNotFound", err)
	}

	var nf *NotFoundError
	_, err := s.Puzzle("nope")
	if !errors.As(err, &nf) || nf.ID != "nope" {
		t.Errorf("Puzzle() error = %v, want *NotFoundError{nope}", err)
	}
}

func TestFoundSnapshotIsIsolated(t *testing.T) {
	s := NewStore()
	st := s.Create(testPuzzle())
	if _, err := s.Apply(st.ID, scoring.CheckResult{Word: "neat", Valid: true, Points: 1}); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	found, err := s.Found(st.ID)
	if err != nil {
		t.Fatalf("Found() error = %v", err)
	}
	found["clean"] = true

	again, err := s.Found(st.ID)
	if err != nil {
		t.Fatalf("Found() error = %v", err)
	}
	if len(again) != 1 || !again["neat"] {
		t.Errorf("snapshot mutation leaked into store: %v", again)
	}
}

func TestSweep(t *testing.T) {
	s := NewStore()
	now := time.Date(2025, 11, 2, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	fresh := s.Create(testPuzzle())
	stale := s.Create(testPuzzle())

	now = now.Add(31 * time.Minute)
	if _, err := s.Found(fresh.ID); err != nil {
		t.Fatalf("Found() error = %v", err)
	}

	if n := s.Sweep(30 * time.Minute); n != 1 {
		t.Errorf("Sweep() = %d, want 1", n)
	}
	if _, err := s.State(stale.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("stale session survived sweep: %v", err)
	}
	if _, err := s.State(fresh.ID); err != nil {
		t.Errorf("refreshed session was evicted: %v", err)
	}
}

func TestSweepLoop(t *testing.T) {
	s := NewStore()
	s.Create(testPuzzle())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.SweepLoop(ctx, 10*time.Millisecond, time.Nanosecond)

	deadline := time.After(2 * time.Second)
	for s.Len() != 0 {
		select {
		case <-deadline:
			t.Fatal("SweepLoop never evicted the idle session")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestConcurrentApply(t *testing.T) {
	s := NewStore()
	st := s.Create(testPuzzle())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			word := fmt.Sprintf("word%02d", i)
			if _, err := s.Apply(st.ID, scoring.CheckResult{Word: word, Valid: true, Points: 1}); err != nil {
				t.Errorf("Apply(%s) error = %v", word, err)
			}
		}(i)
	}
	wg.Wait()

	got, err := s.State(st.ID)
	if err != nil {
		t.Fatalf("State() error = %v", err)
	}
	if got.Score != 8 || len(got.Found) != 8 {
		t.Errorf("concurrent applies lost updates: score %d, found %d", got.Score, len(got.Found))
	}
}
