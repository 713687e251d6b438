// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store persists the site configuration as a single JSON document
// on disk. Every write is a read-modify-write of the whole document with
// sibling slices preserved; the file is replaced atomically via a temp
// file and rename. A missing or corrupt file degrades to the default
// document rather than an error — readers always get something renderable.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"pagecraft/internal/models"
)

// Store manages the content document. Access is serialized with a mutex;
// concurrent HTTP writers still race at the document level (last write
// wins), which is acceptable for a single-operator tool.
type Store struct {
	path string

	mu    sync.Mutex
	doc   *models.Document
	stale bool

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// Open creates a store backed by the given file, loading the current
// document and watching the file for external edits. The parent directory
// is created if needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("store: create data dir: %w", err)
	}

	s := &Store{path: path, done: make(chan struct{})}
	s.doc = s.load()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", filepath.Dir(path), err)
	}
	s.watcher = watcher
	go s.watch()

	return s, nil
}

// Close stops the file watcher.
func (s *Store) Close() error {
	close(s.done)
	return s.watcher.Close()
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// watch marks the in-memory snapshot stale whenever the backing file is
// written outside this process. Our own saves flip the flag too, which
// just costs one extra reload on the next read.
func (s *Store) watch() {
	for {
		select {
		case <-s.done:
			return
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if event.Name != s.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				s.mu.Lock()
				s.stale = true
				s.mu.Unlock()
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("store watcher error", "error", err)
		}
	}
}

// load reads and parses the document, returning the default document when
// the file is missing or malformed.
func (s *Store) load() *models.Document {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("store read failed, using defaults", "path", s.path, "error", err)
		}
		return models.DefaultDocument()
	}

	doc := models.DefaultDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		slog.Warn("store parse failed, using defaults", "path", s.path, "error", err)
		return models.DefaultDocument()
	}
	return doc
}

// Document returns the current document snapshot, reloading from disk if
// the file changed since the last read. Callers must not mutate the
// result; use Update for writes.
func (s *Store) Document() *models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stale || s.doc == nil {
		s.doc = s.load()
		s.stale = false
	}
	return s.doc
}

// Update reloads the document, applies the mutation, and persists the
// whole document back. The mutation sees the freshest on-disk state, so
// slices the caller does not touch are carried through unchanged.
func (s *Store) Update(mutate func(doc *models.Document)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	mutate(doc)

	if err := s.save(doc); err != nil {
		return err
	}
	s.doc = doc
	s.stale = false
	return nil
}

// save writes the document to a temp file in the same directory and
// renames it over the target, so readers never observe a partial file.
func (s *Store) save(doc *models.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("store: marshal: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".site-*.json")
	if err != nil {
		return fmt.Errorf("store: temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("store: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("store: close: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("store: rename: %w", err)
	}
	return nil
}
