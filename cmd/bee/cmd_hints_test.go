// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

/*
Package main provides tests for the hints command rendering.

These tests verify:
  - Grid layout with dashes for absent cells
  - Row and column totals
  - Prefix summary ordering
*/
package main

import (
	"strings"
	"testing"

	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/hints"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/words"
)

func hintFixture() hints.Matrix {
	return hints.Build([]words.Word{
		{Word: "alone"},
		{Word: "lactone", IsPangram: true},
		{Word: "lean"},
		{Word: "neat"},
		{Word: "tonal"},
	})
}

func TestRenderHintGrid(t *testing.T) {
	t.Parallel()

	got := strings.Split(strings.TrimRight(renderHintGrid(hintFixture()), "\n"), "\n")
	want := []string{
		"         4   5   7   tot",
		"    A:   -   1   -     1",
		"    L:   1   -   1     2",
		"    N:   1   -   -     1",
		"    T:   -   1   -     1",
		"  tot:   2   2   1     5",
	}

	if len(got) != len(want) {
		t.Fatalf("renderHintGrid() = %d lines, want %d:\n%s",
			len(got), len(want), strings.Join(got, "\n"))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRenderHintGridEmpty(t *testing.T) {
	t.Parallel()

	if got := renderHintGrid(hints.Build(nil)); got != "" {
		t.Errorf("renderHintGrid(empty) = %q, want empty", got)
	}
}

func TestRenderPrefixes(t *testing.T) {
	t.Parallel()

	got := renderPrefixes(hintFixture())
	want := "al:1 la:1 le:1 ne:1 to:1"
	if got != want {
		t.Errorf("renderPrefixes() = %q, want %q", got, want)
	}
}
