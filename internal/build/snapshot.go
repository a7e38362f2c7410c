package build

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hpungsan/pcbuild/internal/catalog"
)

// Snapshot is the persisted form of a build.
type Snapshot struct {
	ID         string                         `json:"id,omitempty"`
	Selections map[catalog.Category]Selection `json:"selections"`
	TotalPrice int                            `json:"totalPrice"`
	Timestamp  string                         `json:"timestamp"`
}

// NewSnapshot captures state at now. Timestamp is ISO-8601 in UTC.
func NewSnapshot(s *State, id string, now time.Time) Snapshot {
	sels := make(map[catalog.Category]Selection, len(s.selections))
	for k, v := range s.selections {
		sels[k] = v
	}
	return Snapshot{
		ID:         id,
		Selections: sels,
		TotalPrice: s.TotalPrice(),
		Timestamp:  now.UTC().Format(time.RFC3339),
	}
}

// SavedAt parses Timestamp.
func (snap Snapshot) SavedAt() (time.Time, error) {
	return time.Parse(time.RFC3339, snap.Timestamp)
}

// Restore rebuilds a State from a snapshot. Every entry must use a known
// category whose key matches its value, with a non-empty name and a
// non-negative price; otherwise the snapshot is rejected as a whole.
func Restore(snap Snapshot) (*State, error) {
	s := New()
	for key, sel := range snap.Selections {
		if !key.Valid() {
			return nil, fmt.Errorf("snapshot: unknown category %q", key)
		}
		if sel.Category != key {
			return nil, fmt.Errorf("snapshot: entry %q has category %q", key, sel.Category)
		}
		if sel.Name == "" {
			return nil, fmt.Errorf("snapshot: entry %q has no name", key)
		}
		if sel.Price < 0 {
			return nil, fmt.Errorf("snapshot: entry %q has negative price", key)
		}
		s.selections[key] = sel
	}
	return s, nil
}

// DecodeSnapshot parses a JSON snapshot and validates it with Restore.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	if _, err := Restore(snap); err != nil {
		return nil, err
	}
	if _, err := snap.SavedAt(); err != nil {
		return nil, fmt.Errorf("snapshot: bad timestamp: %w", err)
	}
	return &snap, nil
}
