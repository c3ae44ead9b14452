// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

// PersonalityLevel sets how much styling the CLI emits.
type PersonalityLevel string

const (
	// PersonalityFull enables the complete honeycomb treatment
	PersonalityFull PersonalityLevel = "full"

	// PersonalityStandard keeps colors and icons without the box art
	PersonalityStandard PersonalityLevel = "standard"

	// PersonalityMinimal is icons and plain text only
	PersonalityMinimal PersonalityLevel = "minimal"

	// PersonalityMachine is stable line-oriented output for scripts
	PersonalityMachine PersonalityLevel = "machine"
)

var (
	levelMu      sync.RWMutex
	currentLevel = PersonalityFull
)

// CurrentLevel returns the active personality level.
func CurrentLevel() PersonalityLevel {
	levelMu.RLock()
	defer levelMu.RUnlock()
	return currentLevel
}

// SetPersonalityLevel overrides the active level.
func SetPersonalityLevel(level PersonalityLevel) {
	levelMu.Lock()
	defer levelMu.Unlock()
	currentLevel = level
}

// MachineMode reports whether output must stay plain and parseable.
// Every print helper checks this before styling anything.
func MachineMode() bool {
	return CurrentLevel() == PersonalityMachine
}

// ParsePersonalityLevel maps a flag or environment value to a level.
// Unknown values fall back to standard.
func ParsePersonalityLevel(s string) PersonalityLevel {
	switch strings.ToLower(s) {
	case "full", "f":
		return PersonalityFull
	case "standard", "std", "s":
		return PersonalityStandard
	case "minimal", "min", "m":
		return PersonalityMinimal
	case "machine", "quiet", "q":
		return PersonalityMachine
	default:
		return PersonalityStandard
	}
}

// InitPersonality picks the level for this run. The PUZZLE_PERSONALITY
// environment variable wins; piped or redirected output drops to
// machine; a terminal gets the full treatment.
func InitPersonality() {
	if env := os.Getenv("PUZZLE_PERSONALITY"); env != "" {
		SetPersonalityLevel(ParsePersonalityLevel(env))
		return
	}
	if !isTerminal() {
		SetPersonalityLevel(PersonalityMachine)
		return
	}
	SetPersonalityLevel(PersonalityFull)
}

func isTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
