// Package build holds the in-progress selection of one component per
// category and the values derived from it.
package build

import (
	"fmt"

	"github.com/hpungsan/pcbuild/internal/catalog"
)

// Selection is the component currently chosen for a category.
type Selection struct {
	Category catalog.Category `json:"category"`
	Name     string           `json:"name"`
	Price    int              `json:"price"`
}

// State maps each category to at most one selection.
// A State is not safe for concurrent use; adapters serialize access.
type State struct {
	selections map[catalog.Category]Selection
}

// New returns an empty build.
func New() *State {
	return &State{selections: make(map[catalog.Category]Selection, catalog.Count())}
}

// Select replaces any existing selection for category.
// Passing an unknown category or a negative price is a programming error.
func (s *State) Select(category catalog.Category, name string, price int) {
	if !category.Valid() {
		panic(fmt.Sprintf("build: select with unknown category %q", category))
	}
	if price < 0 {
		panic(fmt.Sprintf("build: select %q with negative price %d", name, price))
	}
	s.selections[category] = Selection{Category: category, Name: name, Price: price}
}

// Get returns the selection for category, if any.
func (s *State) Get(category catalog.Category) (Selection, bool) {
	sel, ok := s.selections[category]
	return sel, ok
}

// TotalPrice returns the sum of all selected prices.
func (s *State) TotalPrice() int {
	total := 0
	for _, sel := range s.selections {
		total += sel.Price
	}
	return total
}

// SelectedCount returns the number of categories with a selection.
func (s *State) SelectedCount() int {
	return len(s.selections)
}

// CompletionRatio returns selected/all categories, in [0,1].
func (s *State) CompletionRatio() float64 {
	return float64(len(s.selections)) / float64(catalog.Count())
}

// IsEmpty reports whether nothing has been selected.
func (s *State) IsEmpty() bool {
	return len(s.selections) == 0
}

// MissingCategories returns the categories without a selection, in fixed order.
func (s *State) MissingCategories() []catalog.Category {
	var missing []catalog.Category
	for _, c := range catalog.Categories() {
		if _, ok := s.selections[c]; !ok {
			missing = append(missing, c)
		}
	}
	return missing
}

// Selections returns the current selections in fixed category order.
func (s *State) Selections() []Selection {
	out := make([]Selection, 0, len(s.selections))
	for _, c := range catalog.Categories() {
		if sel, ok := s.selections[c]; ok {
			out = append(out, sel)
		}
	}
	return out
}

// Clone returns an independent copy of the build.
func (s *State) Clone() *State {
	c := New()
	for k, v := range s.selections {
		c.selections[k] = v
	}
	return c
}
