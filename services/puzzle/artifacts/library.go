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
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/words"
)

// Library serves pre-generated puzzle artifacts from one directory.
//
// # Description
//
// IDs are artifact filenames without the .json extension, so
// puzzle_acelnot_a_2025-11-02.json is served as
// puzzle_acelnot_a_2025-11-02. Watch keeps the library in sync with
// the directory: changes are debounced and then the whole directory is
// reloaded, which is cheap because puzzle archives stay small.
//
// # Thread Safety
//
// Safe for concurrent use. Reads take an RLock; reloads swap the map
// under the write lock.
type Library struct {
	dir      string
	debounce time.Duration

	mu      sync.RWMutex
	puzzles map[string]*words.Puzzle

	watcher  *fsnotify.Watcher
	done     chan struct{}
	stopOnce sync.Once
}

// LibraryOptions configures a Library.
type LibraryOptions struct {
	// DebounceWindow is how long to wait for more file events before
	// reloading. Default: 250ms.
	DebounceWindow time.Duration
}

// DefaultLibraryOptions returns sensible defaults.
func DefaultLibraryOptions() LibraryOptions {
	return LibraryOptions{DebounceWindow: 250 * time.Millisecond}
}

// NewLibrary loads every puzzle artifact under dir. Unreadable files
// are logged and skipped; a missing directory is an error.
func NewLibrary(dir string, opts *LibraryOptions) (*Library, error) {
	if opts == nil {
		defaults := DefaultLibraryOptions()
		opts = &defaults
	}
	l := &Library{
		dir:      dir,
		debounce: opts.DebounceWindow,
		puzzles:  make(map[string]*words.Puzzle),
		done:     make(chan struct{}),
	}
	if err := l.reload(); err != nil {
		return nil, err
	}
	return l, nil
}

// Get returns the puzzle stored under id.
func (l *Library) Get(id string) (*words.Puzzle, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	p, ok := l.puzzles[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return p, nil
}

// List returns the available puzzle IDs in ascending order.
func (l *Library) List() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]string, 0, len(l.puzzles))
	for id := range l.puzzles {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of loaded puzzles.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.puzzles)
}

// Watch begins following directory changes until ctx is canceled or
// Close is called. New and rewritten artifacts appear in the library
// after the debounce window; removed ones drop out.
func (l *Library) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting library watcher: %w", err)
	}
	if err := w.Add(l.dir); err != nil {
		w.Close()
		return fmt.Errorf("watching %s: %w", l.dir, err)
	}
	l.watcher = w
	go l.watchLoop(ctx)
	return nil
}

// Close stops the watcher. Safe to call more than once.
func (l *Library) Close() {
	l.stopOnce.Do(func() {
		close(l.done)
		if l.watcher != nil {
			l.watcher.Close()
		}
	})
}

// watchLoop debounces events and reloads the directory once per burst.
func (l *Library) watchLoop(ctx context.Context) {
	var timer *time.Timer
	var timerC <-chan time.Time
	dirty := false

	for {
		select {
		case <-ctx.Done():
			return
		case <-l.done:
			return
		case event, ok := <-l.watcher.Events:
			if !ok {
				return
			}
			if !isArtifactName(event.Name) {
				continue
			}
			dirty = true
			if timer == nil {
				timer = time.NewTimer(l.debounce)
				timerC = timer.C
			} else {
				timer.Reset(l.debounce)
			}
		case err, ok := <-l.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("library watcher error", slog.String("error", err.Error()))
		case <-timerC:
			if dirty {
				if err := l.reload(); err != nil {
					slog.Warn("library reload failed", slog.String("error", err.Error()))
				}
				dirty = false
			}
			timer = nil
			timerC = nil
		}
	}
}

// reload rebuilds the puzzle map from the directory contents.
func (l *Library) reload() error {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return fmt.Errorf("reading puzzle dir: %w", err)
	}

	loaded := make(map[string]*words.Puzzle)
	for _, e := range entries {
		if e.IsDir() || !isArtifactName(e.Name()) {
			continue
		}
		p, err := ReadPuzzle(filepath.Join(l.dir, e.Name()))
		if err != nil {
			slog.Warn("skipping unreadable puzzle artifact",
				slog.String("file", e.Name()),
				slog.String("error", err.Error()))
			continue
		}
		loaded[strings.TrimSuffix(e.Name(), ".json")] = p
	}

	l.mu.Lock()
	l.puzzles = loaded
	l.mu.Unlock()

	slog.Debug("puzzle library loaded",
		slog.String("dir", l.dir),
		slog.Int("puzzles", len(loaded)))
	return nil
}

// isArtifactName filters for the puzzle documents the library serves.
// Candidate scans and in-flight temp files are ignored.
func isArtifactName(path string) bool {
	base := filepath.Base(path)
	if !strings.HasSuffix(base, ".json") {
		return false
	}
	return strings.HasPrefix(base, "puzzle_") || strings.HasPrefix(base, "pruned_")
}
