// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package validation provides input validation for user-supplied puzzle text.
//
// Seeds, guesses, and center letters arrive from HTTP requests and CLI
// arguments. These validators reject anything outside plain ASCII
// letters before the input reaches file naming or logging, so a crafted
// "word" can never smuggle path separators or control characters.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// wordPattern matches playable word text: lowercase ASCII letters only.
// Max length 45 covers the longest headline dictionary entries.
var wordPattern = regexp.MustCompile(`^[a-z]{1,45}$`)

// ValidateWord validates a player guess or seed word.
//
// Valid words:
//   - 1-45 characters
//   - Lowercase letters a-z only (callers normalize case first)
//
// Returns an error if the word is invalid.
func ValidateWord(word string) error {
	if word == "" {
		return fmt.Errorf("word cannot be empty")
	}

	if !wordPattern.MatchString(word) {
		return fmt.Errorf("invalid word format: %q (must be 1-45 ASCII letters)", word)
	}

	return nil
}

// SanitizeWord normalizes and validates user word input.
// Returns the lowercase word if valid, or an error if invalid.
//
// Example:
//
//	word, err := validation.SanitizeWord(req.Word)
//	if err != nil {
//	    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
//	    return
//	}
func SanitizeWord(word string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(word))
	if err := ValidateWord(normalized); err != nil {
		return "", err
	}
	return normalized, nil
}

// ValidateCenter validates a center-letter argument: exactly one
// ASCII letter.
func ValidateCenter(center string) error {
	if center == "" {
		return fmt.Errorf("center letter cannot be empty")
	}
	if len(center) != 1 {
		return fmt.Errorf("center must be a single letter, got %q", center)
	}
	c := center[0] | 0x20
	if c < 'a' || c > 'z' {
		return fmt.Errorf("center must be a letter a-z, got %q", center)
	}
	return nil
}

// SanitizeCenter normalizes and validates a center letter, returning
// it as a lowercase byte.
func SanitizeCenter(center string) (byte, error) {
	normalized := strings.ToLower(strings.TrimSpace(center))
	if err := ValidateCenter(normalized); err != nil {
		return 0, err
	}
	return normalized[0], nil
}
