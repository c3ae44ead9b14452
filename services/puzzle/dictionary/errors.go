// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package dictionary

import (
	"errors"
	"fmt"
)

// ErrDictionaryLoad indicates a missing or malformed dictionary
// document. Fatal: there is no retry, the caller fixes the input and
// restarts.
var ErrDictionaryLoad = errors.New("dictionary load failed")

// LoadError reports why the dictionary could not be loaded.
type LoadError struct {
	// Path is the document that failed.
	Path string

	// Reason is a human-readable explanation.
	Reason string

	// Err is the underlying cause, when one exists.
	Err error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load dictionary %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("load dictionary %s: %s", e.Path, e.Reason)
}

func (e *LoadError) Unwrap() error { return ErrDictionaryLoad }
