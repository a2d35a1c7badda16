package db

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"forum-directory/models"
)

// ErrDuplicateID is returned when an added record reuses an identifier that
// is already present in the directory or earlier in the same batch.
var ErrDuplicateID = errors.New("duplicate person id")

// Directory is the in-memory record store. Reads load the current snapshot
// without locking; writers are serialized and publish a new sequence.
type Directory struct {
	catalog *models.Catalog

	mu      sync.Mutex // held by writers only
	records atomic.Pointer[[]models.Person]
}

// NewDirectory creates an empty directory bound to the given union catalog.
func NewDirectory(catalog *models.Catalog) *Directory {
	d := &Directory{catalog: catalog}
	empty := []models.Person{}
	d.records.Store(&empty)
	return d
}

func (d *Directory) snapshot() []models.Person {
	return *d.records.Load()
}

// --- Reads ---

// AllRecords returns the current ordered sequence of records.
func (d *Directory) AllRecords() []models.Person {
	current := d.snapshot()
	out := make([]models.Person, len(current))
	copy(out, current)
	return out
}

// Groups returns the union catalog in order.
func (d *Directory) Groups() []string {
	return d.catalog.Names()
}

// Catalog returns the union catalog the directory was built with.
func (d *Directory) Catalog() *models.Catalog {
	return d.catalog
}

// Get looks up a single record by identifier.
func (d *Directory) Get(id int64) (models.Person, bool) {
	for _, p := range d.snapshot() {
		if p.ID == id {
			return p, true
		}
	}
	return models.Person{}, false
}

// Len returns the number of records held.
func (d *Directory) Len() int {
	return len(d.snapshot())
}

// --- Mutations ---

// AddOne appends a single record to the back of the directory.
func (d *Directory) AddOne(p models.Person) error {
	return d.AddBatch([]models.Person{p})
}

// AddBatch appends records in input order as one contiguous block. If any
// identifier collides the directory is left unchanged.
func (d *Directory) AddBatch(batch []models.Person) error {
	if len(batch) == 0 {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	current := d.snapshot()
	ids := make(map[int64]struct{}, len(current)+len(batch))
	for _, p := range current {
		ids[p.ID] = struct{}{}
	}

	next := make([]models.Person, len(current), len(current)+len(batch))
	copy(next, current)
	for _, p := range batch {
		if _, exists := ids[p.ID]; exists {
			slog.Error("Rejected batch with duplicate id", "id", p.ID, "batch_size", len(batch))
			return fmt.Errorf("add %d records: %w: %d", len(batch), ErrDuplicateID, p.ID)
		}
		ids[p.ID] = struct{}{}
		next = append(next, p.WithDefaults(d.catalog.Default()))
	}

	d.records.Store(&next)
	slog.Info("Added records", "count", len(batch), "total", len(next))
	return nil
}

// Remove deletes the record with the given identifier. Removing an unknown
// identifier is a no-op.
func (d *Directory) Remove(id int64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	current := d.snapshot()
	idx := -1
	for i, p := range current {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	next := make([]models.Person, 0, len(current)-1)
	next = append(next, current[:idx]...)
	next = append(next, current[idx+1:]...)
	d.records.Store(&next)
	slog.Info("Removed record", "id", id, "total", len(next))
}
