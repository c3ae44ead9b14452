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
	"errors"
	"fmt"
)

// ErrNotFound reports that the library has no puzzle under the
// requested ID.
var ErrNotFound = errors.New("puzzle not found")

// NotFoundError carries the missing ID.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("puzzle %q not found", e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }
