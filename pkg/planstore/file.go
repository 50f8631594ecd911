package planstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/vastuplan/vastuplan/pkg/errors"
)

// FileStore persists one JSON file per record under a base directory.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file-backed store rooted at baseDir.
func NewFileStore(baseDir string) (*FileStore, error) {
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreWrite, err, "creating store directory %s", baseDir)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) path(id string) string {
	return filepath.Join(s.baseDir, id+".json")
}

// Put writes the record as JSON, replacing any existing file.
func (s *FileStore) Put(ctx context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreWrite, err, "encoding record %s", rec.ID)
	}
	if err := os.WriteFile(s.path(rec.ID), data, 0600); err != nil {
		return errors.Wrap(errors.ErrCodeStoreWrite, err, "writing record %s", rec.ID)
	}
	return nil
}

// Get reads a record by ID. Missing or corrupt files yield ErrNotFound.
func (s *FileStore) Get(ctx context.Context, id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(id))
	if err != nil {
		return Record{}, ErrNotFound
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// List returns up to limit records, newest first.
func (s *FileStore) List(ctx context.Context, limit int) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreRead, err, "listing %s", s.baseDir)
	}

	var out []Record
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue
		}
		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Prune removes records created before cutoff and returns their
// artifact filenames.
func (s *FileStore) Prune(ctx context.Context, cutoff time.Time) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreRead, err, "listing %s", s.baseDir)
	}

	var pruned []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(s.baseDir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			// Corrupt records are unrecoverable, remove them too.
			os.Remove(path)
			continue
		}
		if rec.CreatedAt.Before(cutoff) {
			if err := os.Remove(path); err == nil {
				pruned = append(pruned, rec.Filename)
			}
		}
	}
	return pruned, nil
}

// Close does nothing.
func (s *FileStore) Close() error {
	return nil
}

var _ Store = (*FileStore)(nil)
