package server

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/scrypster/heritage/internal/engine"
	"github.com/scrypster/heritage/internal/ingest"
)

// DatasetSource holds the dataset currently being served and swaps it
// atomically on reload. Handlers read through it, so every request
// sees one consistent dataset and a query never observes a half-built
// reload. Once published, a dataset is never mutated again, which is
// what makes the lock-free read path of the engine sound.
type DatasetSource struct {
	path string
	opts ingest.Options

	mu       sync.RWMutex
	ds       *ingest.Dataset
	eng      *engine.Engine
	loadedAt time.Time
}

// OpenDataset ingests the table at path and returns a source serving
// it.
func OpenDataset(path string, opts ingest.Options) (*DatasetSource, error) {
	s := &DatasetSource{path: path, opts: opts}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-ingests the table and swaps it in. On failure the
// previously loaded dataset stays live and the error is returned.
func (s *DatasetSource) Reload() error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("server: open dataset: %w", err)
	}
	defer f.Close()

	ds, err := ingest.ReadDataset(f, s.opts)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.ds = ds
	s.eng = engine.New(ds)
	s.loadedAt = time.Now()
	s.mu.Unlock()
	return nil
}

// Engine returns the query engine for the current dataset.
func (s *DatasetSource) Engine() *engine.Engine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.eng
}

// Dataset returns the current dataset.
func (s *DatasetSource) Dataset() *ingest.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ds
}

// DatasetPath returns the path the dataset is loaded from.
func (s *DatasetSource) DatasetPath() string {
	return s.path
}

// LoadedAt returns when the current dataset was loaded.
func (s *DatasetSource) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}
