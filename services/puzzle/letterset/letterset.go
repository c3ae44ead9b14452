// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package letterset implements the seven-letter puzzle alphabet and its
// bitmask representation.
//
// Every word and alphabet is reduced to a 26-bit mask (bit i set when
// letter 'a'+i occurs), so subset and pangram tests are single mask
// comparisons. That is what keeps full-dictionary scans cheap.
//
// Thread Safety:
//
//	Letters and LetterSet are immutable values; all functions are safe
//	for concurrent use.
package letterset

import (
	"fmt"
	"math/bits"
	"strings"
)

// Size is the number of distinct letters in a puzzle alphabet.
const Size = 7

// Mask is a bitmask over the lowercase alphabet: bit i represents the
// letter 'a'+i. The zero Mask contains no letters.
type Mask uint32

// WordMask returns the mask of distinct letters in word. Uppercase is
// folded; characters outside a-z are ignored, so callers that need
// strictly alphabetic input validate that separately.
func WordMask(word string) Mask {
	var m Mask
	for i := 0; i < len(word); i++ {
		c := lower(word[i])
		if c >= 'a' && c <= 'z' {
			m |= 1 << (c - 'a')
		}
	}
	return m
}

// Has reports whether the mask contains the letter c.
func (m Mask) Has(c byte) bool {
	c = lower(c)
	if c < 'a' || c > 'z' {
		return false
	}
	return m&(1<<(c-'a')) != 0
}

// ContainsAll reports whether every letter of sub is present in m.
func (m Mask) ContainsAll(sub Mask) bool {
	return sub&^m == 0
}

// Count returns the number of distinct letters in the mask.
func (m Mask) Count() int {
	return bits.OnesCount32(uint32(m))
}

// Letters expands the mask to its letters in ascending a-z order.
func (m Mask) Letters() string {
	var b strings.Builder
	b.Grow(m.Count())
	for i := 0; i < 26; i++ {
		if m&(1<<i) != 0 {
			b.WriteByte('a' + byte(i))
		}
	}
	return b.String()
}

// Letters is a validated puzzle alphabet: exactly Size distinct
// lowercase letters held in ascending order, with no center assigned.
type Letters struct {
	letters string
	mask    Mask
}

// FromSeed derives the puzzle alphabet from a seed word.
//
// # Description
//
// The seed is lowercased and every non-alphabetic character is dropped
// before the distinct letters are counted. Fewer than Size distinct
// letters fails with a *SeedError wrapping ErrInvalidSeed. More than
// Size distinct letters keeps the alphabetically first Size, the same
// ascending order the alphabet is rendered in everywhere else, so the
// reduction is deterministic: one seed always yields one alphabet.
//
// # Inputs
//
//   - seed: Raw seed word. Mixed case, spaces, and punctuation are
//     tolerated and stripped.
//
// # Outputs
//
//   - Letters: The canonical Size-letter alphabet.
//   - error: Non-nil when too few distinct letters remain.
func FromSeed(seed string) (Letters, error) {
	mask := WordMask(seed)
	n := mask.Count()
	if n < Size {
		return Letters{}, &SeedError{
			Seed:   seed,
			Reason: fmt.Sprintf("needs at least %d distinct letters, found %d", Size, n),
		}
	}
	letters := mask.Letters()
	if n > Size {
		letters = letters[:Size]
		mask = WordMask(letters)
	}
	return Letters{letters: letters, mask: mask}, nil
}

// FromLetters builds the alphabet from an explicit letter string, which
// must contain exactly Size distinct letters.
func FromLetters(s string) (Letters, error) {
	mask := WordMask(s)
	if n := mask.Count(); n != Size {
		return Letters{}, &SeedError{
			Seed:   s,
			Reason: fmt.Sprintf("expected exactly %d distinct letters, found %d", Size, n),
		}
	}
	return Letters{letters: mask.Letters(), mask: mask}, nil
}

// String returns the alphabet in canonical ascending order.
func (l Letters) String() string { return l.letters }

// Mask returns the alphabet's bitmask.
func (l Letters) Mask() Mask { return l.mask }

// Contains reports whether c is one of the puzzle letters.
func (l Letters) Contains(c byte) bool { return l.mask.Has(c) }

// WithCenter designates the required center letter, which must be one
// of the puzzle letters. Fails with a *CenterError wrapping
// ErrInvalidCenter otherwise.
func (l Letters) WithCenter(c byte) (LetterSet, error) {
	c = lower(c)
	if !l.mask.Has(c) {
		return LetterSet{}, &CenterError{Center: c, Letters: l.letters}
	}
	return LetterSet{Letters: l, center: c}, nil
}

// LetterSet is a puzzle alphabet with its required center letter.
type LetterSet struct {
	Letters
	center byte
}

// Center returns the required letter.
func (s LetterSet) Center() byte { return s.center }

// CenterMask returns the center letter as a single-bit mask.
func (s LetterSet) CenterMask() Mask {
	if s.center < 'a' || s.center > 'z' {
		return 0
	}
	return 1 << (s.center - 'a')
}

// Allows reports whether word uses only puzzle letters and contains
// the center. Length rules belong to the generator, not here.
func (s LetterSet) Allows(word string) bool {
	wm := WordMask(word)
	return s.mask.ContainsAll(wm) && wm.Has(s.center)
}

// IsPangram reports whether word uses all Size puzzle letters. Playable
// words are already subsets of the alphabet, so equality with the full
// mask is the exact test.
func (s LetterSet) IsPangram(word string) bool {
	return WordMask(word) == s.mask
}

// String renders the alphabet with its center, e.g. "acelnot/a".
func (s LetterSet) String() string {
	return s.letters + "/" + string(s.center)
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
