// Package jsondb persists the whole sentence collection as one JSON document
// on local disk, in the layout `{"sentences": [...]}`.
//
// Every store operation runs a fresh load → mutate → write-back; there is no
// cached state between operations. A process-wide mutex serializes the whole
// sequence, which closes the lost-update race for a single-process
// deployment. A multi-process deployment would need a version-checked write
// instead; that is out of scope here.
package jsondb

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gverdi/frasario-backend/internal/domain"
)

// Store is the file-backed persistence gateway. All services share one
// instance.
type Store struct {
	path string
	mu   sync.Mutex
}

// New creates a Store persisting to the given file path. The file does not
// need to exist yet; a missing file loads as the empty collection.
func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the whole collection. A missing file yields an empty
// collection; an unreadable or unparsable file is a persistence fault.
func (s *Store) Load(ctx context.Context) (*domain.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Update runs fn on the freshly loaded collection and writes the result
// back, all under the store lock. If fn returns an error the collection is
// not written.
func (s *Store) Update(ctx context.Context, fn func(*domain.Collection) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(collection); err != nil {
		return err
	}
	return s.write(collection)
}

func (s *Store) load() (*domain.Collection, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return &domain.Collection{Sentences: []domain.Sentence{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %v: %w", s.path, err, domain.ErrPersistence)
	}

	var collection domain.Collection
	if err := json.Unmarshal(data, &collection); err != nil {
		return nil, fmt.Errorf("decode %s: %v: %w", s.path, err, domain.ErrPersistence)
	}
	if collection.Sentences == nil {
		collection.Sentences = []domain.Sentence{}
	}
	return &collection, nil
}

// write replaces the document atomically: marshal to a temp file in the same
// directory, then rename over the target. A reader never observes a partial
// document.
func (s *Store) write(collection *domain.Collection) error {
	data, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection: %v: %w", err, domain.ErrPersistence)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %v: %w", dir, err, domain.ErrPersistence)
	}

	tmp, err := os.CreateTemp(dir, ".sentences-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %v: %w", err, domain.ErrPersistence)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %v: %w", tmpName, err, domain.ErrPersistence)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %v: %w", tmpName, err, domain.ErrPersistence)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename %s: %v: %w", tmpName, err, domain.ErrPersistence)
	}
	return nil
}
