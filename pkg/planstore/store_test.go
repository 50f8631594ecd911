package planstore

import (
	"context"
	"testing"
	"time"

	"github.com/vastuplan/vastuplan/pkg/plan"
)

func testSpec(t *testing.T) plan.PlotSpec {
	t.Helper()
	spec, err := plan.NewPlotSpec("north", 12, 15, "rectangular", "north")
	if err != nil {
		t.Fatalf("NewPlotSpec: %v", err)
	}
	return spec
}

func storesUnderTest(t *testing.T) map[string]Store {
	t.Helper()
	fileStore, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   fileStore,
	}
}

func TestStorePutGet(t *testing.T) {
	ctx := context.Background()
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()

			rec := NewRecord(testSpec(t), "abc.png", "png")
			if err := store.Put(ctx, rec); err != nil {
				t.Fatalf("Put: %v", err)
			}

			got, err := store.Get(ctx, rec.ID)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if got.ID != rec.ID {
				t.Errorf("ID = %q, want %q", got.ID, rec.ID)
			}
			if got.Filename != "abc.png" {
				t.Errorf("Filename = %q, want %q", got.Filename, "abc.png")
			}
			if got.Spec.WidthM != 12 || got.Spec.LengthM != 15 {
				t.Errorf("spec dims = %v x %v, want 12 x 15", got.Spec.WidthM, got.Spec.LengthM)
			}
		})
	}
}

func TestStoreGetMissing(t *testing.T) {
	ctx := context.Background()
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()

			if _, err := store.Get(ctx, "no-such-id"); err != ErrNotFound {
				t.Errorf("Get missing = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestStoreListNewestFirst(t *testing.T) {
	ctx := context.Background()
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()

			spec := testSpec(t)
			now := time.Now().UTC()
			for i := 0; i < 3; i++ {
				rec := NewRecord(spec, "plan.png", "png")
				rec.CreatedAt = now.Add(time.Duration(i) * time.Minute)
				if err := store.Put(ctx, rec); err != nil {
					t.Fatalf("Put: %v", err)
				}
			}

			recs, err := store.List(ctx, 0)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(recs) != 3 {
				t.Fatalf("List returned %d records, want 3", len(recs))
			}
			for i := 1; i < len(recs); i++ {
				if recs[i].CreatedAt.After(recs[i-1].CreatedAt) {
					t.Errorf("records out of order at %d: %v after %v", i, recs[i].CreatedAt, recs[i-1].CreatedAt)
				}
			}

			limited, err := store.List(ctx, 2)
			if err != nil {
				t.Fatalf("List limited: %v", err)
			}
			if len(limited) != 2 {
				t.Errorf("List(2) returned %d records, want 2", len(limited))
			}
		})
	}
}

func TestStorePrune(t *testing.T) {
	ctx := context.Background()
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()

			spec := testSpec(t)
			now := time.Now().UTC()

			old := NewRecord(spec, "old.png", "png")
			old.CreatedAt = now.Add(-48 * time.Hour)
			fresh := NewRecord(spec, "fresh.png", "png")

			for _, rec := range []Record{old, fresh} {
				if err := store.Put(ctx, rec); err != nil {
					t.Fatalf("Put: %v", err)
				}
			}

			pruned, err := store.Prune(ctx, now.Add(-24*time.Hour))
			if err != nil {
				t.Fatalf("Prune: %v", err)
			}
			if len(pruned) != 1 || pruned[0] != "old.png" {
				t.Errorf("pruned = %v, want [old.png]", pruned)
			}

			if _, err := store.Get(ctx, old.ID); err != ErrNotFound {
				t.Errorf("pruned record still present: %v", err)
			}
			if _, err := store.Get(ctx, fresh.ID); err != nil {
				t.Errorf("fresh record lost: %v", err)
			}
		})
	}
}
