// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package pruner

import (
	"errors"
	"fmt"
)

// ErrInsufficientWords indicates the pruned list violated a selection
// invariant (came back empty, or lost every pangram). This is an
// internal defect, not a user-facing error: log it and halt the
// pipeline run instead of emitting a broken puzzle.
var ErrInsufficientWords = errors.New("insufficient words after pruning")

// InsufficientWordsError carries the violated invariant.
type InsufficientWordsError struct {
	Reason string
}

func (e *InsufficientWordsError) Error() string {
	return fmt.Sprintf("pruned word list violates selection invariants: %s", e.Reason)
}

func (e *InsufficientWordsError) Unwrap() error { return ErrInsufficientWords }
