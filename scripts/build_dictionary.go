// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// build_dictionary merges a word frequency CSV with a compact
// definitions document into the dictionary JSON the puzzle service
// loads at startup.
//
// Usage:
//
//	go run scripts/build_dictionary.go frequencies.csv definitions.json > dictionary.json
//
// The frequency CSV holds one word,frequency row per line; a header
// row is skipped when present. The definitions document is a JSON
// object mapping words to definition strings, and words absent from
// it get a placeholder definition. Rows whose word fails
// validation.ValidateWord after folding, and rows with a non-positive
// frequency, are dropped and counted on stderr, so the output always
// passes the loader's validation.
package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jinseo0904/contextual-word-puzzle/pkg/validation"
)

// noDefinition is the placeholder for words the definitions document
// does not cover.
const noDefinition = "No definition available"

// dictEntry is one output record. The word itself is the JSON key.
type dictEntry struct {
	Frequency  float64 `json:"frequency"`
	Definition string  `json:"definition"`
}

func main() {
	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Fprintln(os.Stderr, "usage: go run scripts/build_dictionary.go frequencies.csv [definitions.json]")
		os.Exit(1)
	}

	// Read the frequency list
	freqs, skipped, err := readFrequencies(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading frequencies: %v\n", err)
		os.Exit(1)
	}

	// Read the definitions, when given
	defs := map[string]string{}
	if len(os.Args) == 3 {
		defs, err = readDefinitions(os.Args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading definitions: %v\n", err)
			os.Exit(1)
		}
	}

	// Merge into the loader's document shape
	doc := make(map[string]dictEntry, len(freqs))
	missing := 0
	for word, freq := range freqs {
		def, ok := defs[word]
		if !ok {
			def = noDefinition
			missing++
		}
		doc[word] = dictEntry{Frequency: freq, Definition: def}
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding dictionary: %v\n", err)
		os.Exit(1)
	}
	out = append(out, '\n')
	if _, err := os.Stdout.Write(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing dictionary: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Built %d entries (%d without a definition, %d rows skipped)\n",
		len(doc), missing, skipped)
}

// readFrequencies parses a word,frequency CSV into a map. Words fold
// to lowercase; a duplicate word keeps its highest frequency. The
// skipped count covers words validation.ValidateWord rejects and
// non-positive frequencies.
func readFrequencies(path string) (map[string]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	r.TrimLeadingSpace = true

	freqs := make(map[string]float64)
	skipped := 0
	for line := 1; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, err
		}

		word := strings.ToLower(strings.TrimSpace(rec[0]))
		freq, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			if line == 1 {
				// Header row
				continue
			}
			return nil, 0, fmt.Errorf("line %d: frequency %q: %w", line, rec[1], err)
		}
		if validation.ValidateWord(word) != nil || freq <= 0 {
			skipped++
			continue
		}
		if freq > freqs[word] {
			freqs[word] = freq
		}
	}
	return freqs, skipped, nil
}

// readDefinitions parses the compact definitions document, a JSON
// object mapping words to definition strings. Keys fold to lowercase
// so lookups match the frequency list.
func readDefinitions(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("not a word to definition mapping: %w", err)
	}

	defs := make(map[string]string, len(raw))
	for word, def := range raw {
		defs[strings.ToLower(word)] = def
	}
	return defs, nil
}
