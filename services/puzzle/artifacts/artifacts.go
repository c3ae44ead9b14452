// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package artifacts persists and serves puzzle documents.
//
// Writers are atomic: the document lands in a temp file in the target
// directory and is renamed into place, so a reader never observes a
// half-written artifact. Filenames are canonical and date-stamped,
// which makes a directory of artifacts double as a daily puzzle
// archive.
package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/candidates"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/words"
)

const dateLayout = "2006-01-02"

// CandidateSet is the persisted output of a candidate scan.
type CandidateSet struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Threshold   float64           `json:"threshold"`
	Candidates  []candidates.Seed `json:"candidates"`
}

// PuzzleFilename returns the canonical artifact name for a puzzle,
// puzzle_<letters>_<center>_<date>.json.
func PuzzleFilename(p *words.Puzzle) string {
	return fmt.Sprintf("puzzle_%s_%s_%s.json", p.Letters, p.Center, artifactDate(p.GeneratedAt))
}

// PrunedFilename is PuzzleFilename for the pruned document.
func PrunedFilename(p *words.Puzzle) string {
	return fmt.Sprintf("pruned_%s_%s_%s.json", p.Letters, p.Center, artifactDate(p.GeneratedAt))
}

func artifactDate(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(dateLayout)
}

// WritePuzzle writes the full puzzle document to dir and returns the
// path written.
func WritePuzzle(dir string, p *words.Puzzle) (string, error) {
	return writeJSON(dir, PuzzleFilename(p), p)
}

// WritePruned writes the pruned (playable) puzzle document to dir.
func WritePruned(dir string, p *words.Puzzle) (string, error) {
	return writeJSON(dir, PrunedFilename(p), p)
}

// WriteCandidates writes a candidate scan to dir as
// candidates_<date>.json.
func WriteCandidates(dir string, cs *CandidateSet) (string, error) {
	name := fmt.Sprintf("candidates_%s.json", artifactDate(cs.GeneratedAt))
	return writeJSON(dir, name, cs)
}

// ReadPuzzle loads a puzzle artifact. The word list is re-sorted into
// canonical alphabetical order so lookups stay correct even for
// hand-edited files.
func ReadPuzzle(path string) (*words.Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading puzzle artifact: %w", err)
	}
	var p words.Puzzle
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding puzzle artifact %s: %w", filepath.Base(path), err)
	}
	if len(p.Letters) != 7 || len(p.Center) != 1 {
		return nil, fmt.Errorf("decoding puzzle artifact %s: not a puzzle document", filepath.Base(path))
	}
	words.SortAlphabetical(p.Words)
	return &p, nil
}

// ReadCandidates loads a candidate scan artifact.
func ReadCandidates(path string) (*CandidateSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading candidates artifact: %w", err)
	}
	var cs CandidateSet
	if err := json.Unmarshal(data, &cs); err != nil {
		return nil, fmt.Errorf("decoding candidates artifact %s: %w", filepath.Base(path), err)
	}
	return &cs, nil
}

// writeJSON writes v as indented JSON via temp-and-rename.
func writeJSON(dir, name string, v any) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating artifact dir: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", name, err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, "."+name+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}

	path := filepath.Join(dir, name)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	return path, nil
}
