// Package planstore records generated floor plans so the service can
// list recent plans and sweep stale ones.
//
// The core writes the image artifact itself; the record here is the
// metadata sidecar the caller keeps: which spec produced which file,
// and when. Backends:
//   - memory: for tests and single-process development
//   - file: JSON files, for CLI and single-instance deployments
//   - redis: for multi-instance deployments
package planstore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/vastuplan/vastuplan/pkg/plan"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a plan record does not exist.
	ErrNotFound = errors.New("plan record not found")
)

// Record describes one generated plan.
type Record struct {
	ID        string        `json:"id"`
	Spec      plan.PlotSpec `json:"spec"`
	Filename  string        `json:"filename"`
	Format    string        `json:"format"`
	CreatedAt time.Time     `json:"created_at"`
}

// NewRecord builds a record for a freshly generated plan.
func NewRecord(spec plan.PlotSpec, filename, format string) Record {
	return Record{
		ID:        uuid.NewString(),
		Spec:      spec,
		Filename:  filename,
		Format:    format,
		CreatedAt: time.Now().UTC(),
	}
}

// Store is the interface plan-record backends implement.
type Store interface {
	// Put stores a record.
	Put(ctx context.Context, rec Record) error

	// Get retrieves a record by ID. Returns ErrNotFound if absent.
	Get(ctx context.Context, id string) (Record, error)

	// List returns up to limit records, newest first.
	List(ctx context.Context, limit int) ([]Record, error)

	// Prune removes records created before cutoff and returns the
	// filenames of the pruned records so callers can delete artifacts.
	Prune(ctx context.Context, cutoff time.Time) ([]string, error)

	// Close releases backend resources.
	Close() error
}
