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
	"fmt"
)

var (
	// ErrInvalidSeed indicates a seed word that cannot produce a
	// seven-letter puzzle alphabet. User-correctable: surface the
	// reason and re-prompt for a different seed.
	ErrInvalidSeed = errors.New("invalid seed word")

	// ErrInvalidCenter indicates a center letter outside the puzzle
	// alphabet. User-correctable.
	ErrInvalidCenter = errors.New("invalid center letter")
)

// SeedError reports why a seed word was rejected.
type SeedError struct {
	// Seed is the raw input.
	Seed string

	// Reason is a human-readable explanation.
	Reason string
}

func (e *SeedError) Error() string {
	return fmt.Sprintf("invalid seed word %q: %s", e.Seed, e.Reason)
}

func (e *SeedError) Unwrap() error { return ErrInvalidSeed }

// CenterError reports a center letter that is not part of the alphabet.
type CenterError struct {
	Center  byte
	Letters string
}

func (e *CenterError) Error() string {
	return fmt.Sprintf("center letter %q is not one of the puzzle letters %q",
		string(e.Center), e.Letters)
}

func (e *CenterError) Unwrap() error { return ErrInvalidCenter }
