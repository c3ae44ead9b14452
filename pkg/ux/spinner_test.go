// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package ux

import (
	"errors"
	"strings"
	"testing"
)

func TestNewSpinner_Defaults(t *testing.T) {
	spin := NewSpinner("Scanning dictionary...")
	if spin.message != "Scanning dictionary..." {
		t.Errorf("message = %q", spin.message)
	}
	if spin.spinType != SpinnerDots {
		t.Errorf("default type = %v, want SpinnerDots", spin.spinType)
	}
}

func TestSpinner_WithType(t *testing.T) {
	for _, typ := range []SpinnerType{SpinnerDots, SpinnerComb, SpinnerPulse} {
		spin := NewSpinner("working").WithType(typ)
		if spin.spinType != typ {
			t.Errorf("WithType(%v) = %v", typ, spin.spinType)
		}
		if len(spinnerFrames[typ]) == 0 {
			t.Errorf("no frames registered for type %v", typ)
		}
	}
}

func TestSpinner_MachineMode(t *testing.T) {
	withLevel(t, PersonalityMachine)

	spin := NewSpinner("picking seed")
	got := captureStdout(spin.Start)
	if got != "PROGRESS: picking seed\n" {
		t.Errorf("machine Start output = %q", got)
	}
	// Stop must not block waiting for an animation that never ran
	spin.Stop()
}

func TestSpinner_StartStop(t *testing.T) {
	withLevel(t, PersonalityFull)

	spin := NewSpinner("generating")
	_ = captureStdout(func() {
		spin.Start()
		spin.UpdateMessage("still generating")
		spin.Stop()
	})
}

func TestSpinner_DoubleStartAndStop(t *testing.T) {
	withLevel(t, PersonalityMachine)

	spin := NewSpinner("once")
	_ = captureStdout(func() {
		spin.Start()
		spin.Start()
	})
	spin.Stop()
	spin.Stop()
}

func TestWithSpinner_Success(t *testing.T) {
	withLevel(t, PersonalityMachine)

	var ran bool
	got := captureStdout(func() {
		if err := WithSpinner("loading", func() error {
			ran = true
			return nil
		}); err != nil {
			t.Errorf("WithSpinner() error = %v", err)
		}
	})
	if !ran {
		t.Error("WithSpinner never ran the function")
	}
	if !strings.Contains(got, "OK: loading") {
		t.Errorf("success output = %q", got)
	}
}

func TestWithSpinner_Error(t *testing.T) {
	withLevel(t, PersonalityMachine)

	wantErr := errors.New("dictionary missing")
	var got error
	_ = captureStderr(func() {
		_ = captureStdout(func() {
			got = WithSpinner("loading", func() error { return wantErr })
		})
	})
	if !errors.Is(got, wantErr) {
		t.Errorf("WithSpinner() error = %v, want %v", got, wantErr)
	}
}

func TestProgressSpinner_Increment(t *testing.T) {
	withLevel(t, PersonalityFull)

	p := NewProgressSpinner("generating puzzles", 3)
	p.Increment()
	p.Increment()

	p.mu.Lock()
	msg := p.message
	p.mu.Unlock()
	if !strings.Contains(msg, "[2/3]") {
		t.Errorf("message = %q, want progress [2/3]", msg)
	}
}

func TestProgressSpinner_SetProgress(t *testing.T) {
	withLevel(t, PersonalityFull)

	p := NewProgressSpinner("generating puzzles", 10)
	p.SetProgress(7)

	p.mu.Lock()
	msg := p.message
	p.mu.Unlock()
	if !strings.Contains(msg, "[7/10]") {
		t.Errorf("message = %q, want progress [7/10]", msg)
	}
}
