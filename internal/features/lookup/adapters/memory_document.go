package adapter

import (
	"maps"
	"sync"

	"order-viewer/internal/features/lookup/domain"
)

// MemoryDocument implements the Document interface in memory.
// The viewer renders its Snapshot into HTML after each submission.
type MemoryDocument struct {
	mu      sync.RWMutex
	input   string
	texts   map[domain.Target]string
	rows    []domain.ItemRow
	visible map[domain.Region]bool
}

// NewMemoryDocument returns a document in the initial page state: every
// region hidden, every target empty.
func NewMemoryDocument() *MemoryDocument {
	return &MemoryDocument{
		texts: make(map[domain.Target]string),
		visible: map[domain.Region]bool{
			domain.RegionLoader:  false,
			domain.RegionError:   false,
			domain.RegionDetails: false,
		},
	}
}

// SetInput fills the identifier input field, as a user typing would.
func (d *MemoryDocument) SetInput(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.input = value
}

// InputValue returns the raw input field contents.
func (d *MemoryDocument) InputValue() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.input
}

// SetText replaces the text of a display target.
func (d *MemoryDocument) SetText(target domain.Target, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.texts[target] = text
}

// ReplaceItems replaces the item listing.
func (d *MemoryDocument) ReplaceItems(rows []domain.ItemRow) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rows = append([]domain.ItemRow(nil), rows...)
}

// SetVisible shows or hides a region.
func (d *MemoryDocument) SetVisible(region domain.Region, visible bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.visible[region] = visible
}

// Snapshot returns a copy of the current state.
func (d *MemoryDocument) Snapshot() domain.Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return domain.Snapshot{
		Input:   d.input,
		Texts:   maps.Clone(d.texts),
		Rows:    append([]domain.ItemRow(nil), d.rows...),
		Visible: maps.Clone(d.visible),
	}
}
