// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package dictionary loads the word corpus and serves letter-set
// queries over a precomputed bitmask index.
//
// # Design
//
// The corpus is a JSON document mapping each word to its frequency and
// definition. At load time every word's distinct-letter set is reduced
// to a 26-bit mask, so a letter-set query is one linear pass with two
// mask comparisons per word. That holds up at hundreds of thousands of
// entries without any auxiliary index structure.
//
// Thread Safety:
//
//	The Index is immutable after Load and safe for unlocked concurrent
//	reads. Load itself is not reentrant on the same path, but callers
//	load once at startup.
package dictionary

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jinseo0904/contextual-word-puzzle/pkg/validation"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/letterset"
)

// MaxDictionaryFileSize caps the corpus document at 256MB. Anything
// larger is treated as malformed input rather than loaded into memory.
const MaxDictionaryFileSize = 256 * 1024 * 1024

// Entry is one dictionary record.
type Entry struct {
	Word       string  `json:"word"`
	Frequency  float64 `json:"frequency"`
	Definition string  `json:"definition"`
}

// LoadOptions tunes dictionary loading.
type LoadOptions struct {
	// MinFrequency drops entries whose frequency is strictly below the
	// floor. Zero keeps every entry; the upstream corpus preparation
	// uses small floors to shed noise words.
	MinFrequency float64
}

// DefaultLoadOptions returns the standard loader settings.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{}
}

// indexed is the scan-side view of an entry: the word, its letter
// mask, and its frequency, kept in ascending word order.
type indexed struct {
	word string
	mask letterset.Mask
	freq float64
}

// Index is the loaded, immutable dictionary.
type Index struct {
	entries map[string]Entry
	scan    []indexed
}

type entryJSON struct {
	Frequency  float64 `json:"frequency"`
	Definition string  `json:"definition"`
}

// Load reads a JSON dictionary document and builds the bitmask index.
//
// # Description
//
// The document must be a single JSON object mapping lowercase words to
// {"frequency": number, "definition": string}. Any deviation fails
// with a *LoadError wrapping ErrDictionaryLoad: a missing or
// unreadable file, a document that is not such a mapping, a word key
// validation.ValidateWord rejects, or a negative frequency. Load
// failures are fatal by contract; the caller fixes the input and
// restarts rather than retrying.
//
// # Inputs
//
//   - path: Dictionary document location.
//   - opts: Optional load settings (nil uses defaults).
//
// # Outputs
//
//   - *Index: Ready for concurrent queries.
//   - error: Non-nil when the source is missing or malformed.
func Load(path string, opts *LoadOptions) (*Index, error) {
	start := time.Now()
	if opts == nil {
		defaults := DefaultLoadOptions()
		opts = &defaults
	}

	info, err := os.Stat(path)
	if err != nil {
		loadErrors.Inc()
		return nil, &LoadError{Path: path, Reason: "cannot read dictionary", Err: err}
	}
	if info.Size() > MaxDictionaryFileSize {
		loadErrors.Inc()
		return nil, &LoadError{
			Path:   path,
			Reason: fmt.Sprintf("document is %d bytes, limit is %d", info.Size(), MaxDictionaryFileSize),
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		loadErrors.Inc()
		return nil, &LoadError{Path: path, Reason: "cannot read dictionary", Err: err}
	}

	var raw map[string]entryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		loadErrors.Inc()
		return nil, &LoadError{
			Path:   path,
			Reason: "not a word to {frequency, definition} mapping",
			Err:    err,
		}
	}

	idx := &Index{entries: make(map[string]Entry, len(raw))}
	for word, e := range raw {
		if err := validation.ValidateWord(word); err != nil {
			loadErrors.Inc()
			return nil, &LoadError{Path: path, Reason: "bad word key", Err: err}
		}
		if e.Frequency < 0 {
			loadErrors.Inc()
			return nil, &LoadError{
				Path:   path,
				Reason: fmt.Sprintf("word %q has negative frequency %g", word, e.Frequency),
			}
		}
		if e.Frequency < opts.MinFrequency {
			continue
		}
		idx.entries[word] = Entry{Word: word, Frequency: e.Frequency, Definition: e.Definition}
	}

	idx.scan = make([]indexed, 0, len(idx.entries))
	for word, e := range idx.entries {
		idx.scan = append(idx.scan, indexed{word: word, mask: letterset.WordMask(word), freq: e.Frequency})
	}
	sort.Slice(idx.scan, func(i, j int) bool { return idx.scan[i].word < idx.scan[j].word })

	loadDuration.Observe(time.Since(start).Seconds())
	entriesLoaded.Set(float64(len(idx.entries)))
	return idx, nil
}

// Contains reports whether word is a dictionary entry.
func (idx *Index) Contains(word string) bool {
	_, ok := idx.entries[word]
	return ok
}

// Entry returns the record for word.
func (idx *Index) Entry(word string) (Entry, bool) {
	e, ok := idx.entries[word]
	return e, ok
}

// Len returns the number of entries in the index.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Words returns every entry word in ascending order. The slice is a
// fresh copy; callers may keep it.
func (idx *Index) Words() []string {
	out := make([]string, len(idx.scan))
	for i, it := range idx.scan {
		out[i] = it.word
	}
	return out
}

// WordsWithLetters returns every entry playable under set: characters
// all within the puzzle letters, length at least minLength, and the
// center present. Results come back in ascending word order.
//
// The test per word is the two mask comparisons described in the
// package comment; no allocation happens until the first hit.
func (idx *Index) WordsWithLetters(set letterset.LetterSet, minLength int) []Entry {
	timer := prometheus.NewTimer(scanDuration)
	defer timer.ObserveDuration()

	setMask := set.Mask()
	centerMask := set.CenterMask()

	var out []Entry
	for _, it := range idx.scan {
		if len(it.word) < minLength {
			continue
		}
		if it.mask&^setMask != 0 {
			continue
		}
		if it.mask&centerMask == 0 {
			continue
		}
		out = append(out, idx.entries[it.word])
	}
	return out
}

// SevenLetterWords returns entries built from exactly letterset.Size
// distinct letters with frequency strictly above minFrequency. This is
// the candidate pool for seed selection; the frequency floor keeps
// obscure words from anchoring puzzles.
func (idx *Index) SevenLetterWords(minFrequency float64) []Entry {
	var out []Entry
	for _, it := range idx.scan {
		if it.mask.Count() != letterset.Size {
			continue
		}
		if it.freq <= minFrequency {
			continue
		}
		out = append(out, idx.entries[it.word])
	}
	return out
}
