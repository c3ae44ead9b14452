// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package letterset

import (
	"errors"
	"testing"
)

func TestWordMask(t *testing.T) {
	tests := []struct {
		name string
		word string
		want string // expected Letters() expansion
	}{
		{name: "simple", word: "hello", want: "ehlo"},
		{name: "repeated letters collapse", word: "banana", want: "abn"},
		{name: "case folded", word: "LaCtOnE", want: "acelnot"},
		{name: "punctuation ignored", word: "back-ground!", want: "abcdgknoru"},
		{name: "empty", word: "", want: ""},
		{name: "digits ignored", word: "abc123", want: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WordMask(tt.word).Letters()
			if got != tt.want {
				t.Errorf("WordMask(%q).Letters() = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestMaskOperations(t *testing.T) {
	m := WordMask("lactone")

	if got := m.Count(); got != 7 {
		t.Errorf("Count() = %d, want 7", got)
	}
	if !m.Has('a') || !m.Has('A') {
		t.Error("Has('a') should be true for both cases")
	}
	if m.Has('z') {
		t.Error("Has('z') should be false")
	}
	if !m.ContainsAll(WordMask("clean")) {
		t.Error("ContainsAll(clean) should be true")
	}
	if m.ContainsAll(WordMask("table")) {
		t.Error("ContainsAll(table) should be false, 'b' is missing")
	}
	if !m.ContainsAll(0) {
		t.Error("ContainsAll(empty) should be true")
	}
}

func TestFromSeed(t *testing.T) {
	tests := []struct {
		name    string
		seed    string
		want    string
		wantErr bool
	}{
		{name: "exactly seven", seed: "lactone", want: "acelnot"},
		{name: "nine distinct keeps first seven", seed: "sunflower", want: "eflnors"},
		{name: "ten distinct keeps first seven", seed: "background", want: "abcdgkn"},
		{name: "case and punctuation stripped", seed: "Back-Ground!", want: "abcdgkn"},
		{name: "too few distinct", seed: "banana", wantErr: true},
		{name: "six distinct", seed: "simple", wantErr: true},
		{name: "empty", seed: "", wantErr: true},
		{name: "only punctuation", seed: "123-!?", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromSeed(tt.seed)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("FromSeed(%q) error = nil, want error", tt.seed)
				}
				if !errors.Is(err, ErrInvalidSeed) {
					t.Errorf("FromSeed(%q) error = %v, want ErrInvalidSeed", tt.seed, err)
				}
				var serr *SeedError
				if !errors.As(err, &serr) || serr.Reason == "" {
					t.Errorf("FromSeed(%q) should carry a *SeedError with a reason", tt.seed)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromSeed(%q) error = %v", tt.seed, err)
			}
			if got.String() != tt.want {
				t.Errorf("FromSeed(%q) = %q, want %q", tt.seed, got.String(), tt.want)
			}
			if got.Mask().Count() != Size {
				t.Errorf("FromSeed(%q) mask has %d letters, want %d", tt.seed, got.Mask().Count(), Size)
			}
		})
	}
}

func TestFromSeedDeterministic(t *testing.T) {
	a, err := FromSeed("background")
	if err != nil {
		t.Fatalf("FromSeed() error = %v", err)
	}
	b, err := FromSeed("background")
	if err != nil {
		t.Fatalf("FromSeed() error = %v", err)
	}
	if a != b {
		t.Errorf("FromSeed() not deterministic: %q vs %q", a.String(), b.String())
	}
}

func TestFromLetters(t *testing.T) {
	l, err := FromLetters("TONALCE")
	if err != nil {
		t.Fatalf("FromLetters() error = %v", err)
	}
	if l.String() != "acelnot" {
		t.Errorf("FromLetters() = %q, want %q", l.String(), "acelnot")
	}

	if _, err := FromLetters("abcdef"); !errors.Is(err, ErrInvalidSeed) {
		t.Errorf("FromLetters(six) error = %v, want ErrInvalidSeed", err)
	}
	if _, err := FromLetters("abcdefgh"); !errors.Is(err, ErrInvalidSeed) {
		t.Errorf("FromLetters(eight) error = %v, want ErrInvalidSeed", err)
	}
}

func TestWithCenter(t *testing.T) {
	l, err := FromSeed("lactone")
	if err != nil {
		t.Fatalf("FromSeed() error = %v", err)
	}

	set, err := l.WithCenter('a')
	if err != nil {
		t.Fatalf("WithCenter('a') error = %v", err)
	}
	if set.Center() != 'a' {
		t.Errorf("Center() = %q, want 'a'", set.Center())
	}
	if set.String() != "acelnot/a" {
		t.Errorf("String() = %q, want %q", set.String(), "acelnot/a")
	}

	// Uppercase centers are folded.
	set, err = l.WithCenter('T')
	if err != nil {
		t.Fatalf("WithCenter('T') error = %v", err)
	}
	if set.Center() != 't' {
		t.Errorf("Center() = %q, want 't'", set.Center())
	}

	_, err = l.WithCenter('z')
	if err == nil {
		t.Fatal("WithCenter('z') error = nil, want error")
	}
	if !errors.Is(err, ErrInvalidCenter) {
		t.Errorf("WithCenter('z') error = %v, want ErrInvalidCenter", err)
	}
}

func TestAllows(t *testing.T) {
	set := mustSet(t, "lactone", 'a')

	tests := []struct {
		word string
		want bool
	}{
		{"clean", true},
		{"lactone", true},
		{"cello", false}, // no center letter
		{"table", false}, // 'b' outside the alphabet
		{"", false},
		{"aaaa", true}, // repeats of the center alone are letter-legal
	}

	for _, tt := range tests {
		if got := set.Allows(tt.word); got != tt.want {
			t.Errorf("Allows(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestIsPangram(t *testing.T) {
	set := mustSet(t, "lactone", 'a')

	tests := []struct {
		word string
		want bool
	}{
		{"lactone", true},
		{"octanal", false}, // only six of the seven letters
		{"octane", false},  // missing 'l'
		{"clean", false},
		{"lactones", false}, // 's' outside the alphabet breaks equality
	}

	for _, tt := range tests {
		if got := set.IsPangram(tt.word); got != tt.want {
			t.Errorf("IsPangram(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func mustSet(t *testing.T, seed string, center byte) LetterSet {
	t.Helper()
	l, err := FromSeed(seed)
	if err != nil {
		t.Fatalf("FromSeed(%q) error = %v", seed, err)
	}
	set, err := l.WithCenter(center)
	if err != nil {
		t.Fatalf("WithCenter(%q) error = %v", center, err)
	}
	return set
}
