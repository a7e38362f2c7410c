// Package catalog holds the fixed component categories, the component
// catalog, and the static compatibility rule set.
package catalog

import "strings"

// Category identifies one of the fixed component slots of a build.
type Category string

const (
	CPU         Category = "cpu"
	GPU         Category = "gpu"
	RAM         Category = "ram"
	Storage     Category = "storage"
	Motherboard Category = "motherboard"
	PSU         Category = "psu"
	Case        Category = "case"
)

// categories is the fixed category order used for display and diagnostics.
var categories = []Category{CPU, GPU, RAM, Storage, Motherboard, PSU, Case}

var labels = map[Category]string{
	CPU:         "Procesador",
	GPU:         "Tarjeta Gráfica",
	RAM:         "Memoria RAM",
	Storage:     "Almacenamiento",
	Motherboard: "Placa Madre",
	PSU:         "Fuente de Poder",
	Case:        "Gabinete",
}

// Categories returns the fixed category order. The returned slice is a copy.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Count returns the number of categories in a complete build.
func Count() int {
	return len(categories)
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	_, ok := labels[c]
	return ok
}

// Label returns the display label, or the raw id for unknown categories.
func (c Category) Label() string {
	if l, ok := labels[c]; ok {
		return l
	}
	return string(c)
}

// Index returns the position of c in the fixed order, or -1.
func (c Category) Index() int {
	for i, cat := range categories {
		if cat == c {
			return i
		}
	}
	return -1
}

// ParseCategory resolves a category id (case-insensitive, trimmed).
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", false
	}
	return c, true
}
