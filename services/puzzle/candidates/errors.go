// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package candidates

import (
	"errors"
	"fmt"
)

// ErrNoViableSeed indicates that no candidate produced a puzzle with
// enough playable words. Recoverable: rescan with a lower frequency
// threshold or a larger sample.
var ErrNoViableSeed = errors.New("no viable seed")

// NoViableSeedError reports how the picking attempt was bounded.
type NoViableSeedError struct {
	Tried    int
	MinWords int
}

func (e *NoViableSeedError) Error() string {
	return fmt.Sprintf("no viable seed among %d candidates (minimum %d playable words)",
		e.Tried, e.MinWords)
}

func (e *NoViableSeedError) Unwrap() error { return ErrNoViableSeed }
