// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package artifacts

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/candidates"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/words"
)

var testDate = time.Date(2025, 11, 2, 9, 30, 0, 0, time.UTC)

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
		Pangrams:    []string{"lactone"},
		MaxScore:    25,
		TotalWords:  4,
		GeneratedAt: testDate,
	}
}

func TestWritePuzzleAndReadBack(t *testing.T) {
	dir := t.TempDir()

	path, err := WritePuzzle(dir, testPuzzle())
	require.NoError(t, err)
	assert.Equal(t, "puzzle_acelnot_a_2025-11-02.json", filepath.Base(path))

	got, err := ReadPuzzle(path)
	require.NoError(t, err)
	assert.Equal(t, "acelnot", got.Letters)
	assert.Equal(t, "a", got.Center)
	assert.Equal(t, 25, got.MaxScore)
	assert.Equal(t, []string{"lactone"}, got.Pangrams)
	require.Len(t, got.Words, 4)
	assert.True(t, got.GeneratedAt.Equal(testDate))
}

func TestWritePrunedFilename(t *testing.T) {
	dir := t.TempDir()

	p := testPuzzle()
	p.Pruned = true
	path, err := WritePruned(dir, p)
	require.NoError(t, err)
	assert.Equal(t, "pruned_acelnot_a_2025-11-02.json", filepath.Base(path))

	got, err := ReadPuzzle(path)
	require.NoError(t, err)
	assert.True(t, got.Pruned)
}

func TestWritePuzzleOverwrites(t *testing.T) {
	dir := t.TempDir()

	_, err := WritePuzzle(dir, testPuzzle())
	require.NoError(t, err)

	p := testPuzzle()
	p.MaxScore = 99
	path, err := WritePuzzle(dir, p)
	require.NoError(t, err)

	got, err := ReadPuzzle(path)
	require.NoError(t, err)
	assert.Equal(t, 99, got.MaxScore)

	// The rename must not leave temp files behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestReadPuzzleMissing(t *testing.T) {
	_, err := ReadPuzzle(filepath.Join(t.TempDir(), "puzzle_none.json"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestReadPuzzleRejectsJunk(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "puzzle_empty.json")
	require.NoError(t, os.WriteFile(empty, []byte("{}"), 0o644))
	_, err := ReadPuzzle(empty)
	assert.ErrorContains(t, err, "not a puzzle document")

	garbled := filepath.Join(dir, "puzzle_garbled.json")
	require.NoError(t, os.WriteFile(garbled, []byte("{nope"), 0o644))
	_, err = ReadPuzzle(garbled)
	assert.Error(t, err)
}

func TestReadPuzzleRestoresCanonicalOrder(t *testing.T) {
	dir := t.TempDir()

	doc := `{"letters":"acelnot","center":"a","valid_words":[
		{"word":"tonal","frequency":1e-05},
		{"word":"alone","frequency":2e-05}
	],"pangrams":[],"max_score":10,"total_words":2,"generated_at":"2025-11-02T09:30:00Z"}`
	path := filepath.Join(dir, "puzzle_handmade.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	got, err := ReadPuzzle(path)
	require.NoError(t, err)
	require.Len(t, got.Words, 2)
	assert.Equal(t, "alone", got.Words[0].Word)
	assert.Equal(t, "tonal", got.Words[1].Word)
	assert.True(t, got.Contains("tonal"))
}

func TestWriteAndReadCandidates(t *testing.T) {
	dir := t.TempDir()

	cs := &CandidateSet{
		GeneratedAt: testDate,
		Threshold:   7e-06,
		Candidates: []candidates.Seed{
			{Word: "auction", Frequency: 9e-06, Definition: "a public sale"},
			{Word: "lactone", Frequency: 8e-06, Definition: "a cyclic ester"},
		},
	}
	path, err := WriteCandidates(dir, cs)
	require.NoError(t, err)
	assert.Equal(t, "candidates_2025-11-02.json", filepath.Base(path))

	got, err := ReadCandidates(path)
	require.NoError(t, err)
	assert.Equal(t, 7e-06, got.Threshold)
	require.Len(t, got.Candidates, 2)
	assert.Equal(t, "auction", got.Candidates[0].Word)
}
