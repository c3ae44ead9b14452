// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package generator

import (
	"errors"
	"fmt"
)

// ErrEmptyResult indicates a letter set and center with no playable
// words. Recoverable: the caller picks a different seed or center and
// generates again.
var ErrEmptyResult = errors.New("no playable words")

// EmptyResultError identifies the alphabet that came up empty.
type EmptyResultError struct {
	Letters string
	Center  byte
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("no playable words for letters %q with center %q",
		e.Letters, string(e.Center))
}

func (e *EmptyResultError) Unwrap() error { return ErrEmptyResult }
