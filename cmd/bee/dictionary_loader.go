// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jinseo0904/contextual-word-puzzle/pkg/ux"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/dictionary"
)

// loadDictionary loads and indexes the corpus, exiting the process on
// failure. A spinner shows during the load in styled mode; JSON mode
// keeps stdout clean for the result document.
func loadDictionary(path string) *dictionary.Index {
	if path == "" {
		OutputError(jsonOutput, "Missing required flag", errors.New("--dictionary is required"))
		os.Exit(CLIExitError)
	}

	if jsonOutput {
		idx, err := dictionary.Load(path, nil)
		if err != nil {
			OutputError(true, "Failed to load dictionary", err)
			os.Exit(CLIExitError)
		}
		return idx
	}

	var idx *dictionary.Index
	err := ux.WithSpinner(fmt.Sprintf("Loading dictionary %s", path), func() error {
		var loadErr error
		idx, loadErr = dictionary.Load(path, nil)
		return loadErr
	})
	if err != nil {
		os.Exit(CLIExitError)
	}
	return idx
}
