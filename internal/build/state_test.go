package build

import (
	"testing"

	"github.com/hpungsan/pcbuild/internal/catalog"
)

func TestNew_Empty(t *testing.T) {
	s := New()

	if !s.IsEmpty() {
		t.Error("IsEmpty() = false, want true")
	}
	if s.TotalPrice() != 0 {
		t.Errorf("TotalPrice() = %d, want 0", s.TotalPrice())
	}
	if s.CompletionRatio() != 0 {
		t.Errorf("CompletionRatio() = %v, want 0", s.CompletionRatio())
	}

	missing := s.MissingCategories()
	want := catalog.Categories()
	if len(missing) != len(want) {
		t.Fatalf("MissingCategories() = %v, want all %d", missing, len(want))
	}
	for i := range want {
		if missing[i] != want[i] {
			t.Errorf("MissingCategories()[%d] = %q, want %q", i, missing[i], want[i])
		}
	}
}

func TestSelect_ReplacesSameCategory(t *testing.T) {
	s := New()
	s.Select(catalog.CPU, "Intel Core i5-13400F", 199)
	s.Select(catalog.CPU, "AMD Ryzen 5 7600", 229)

	if s.SelectedCount() != 1 {
		t.Fatalf("SelectedCount() = %d, want 1", s.SelectedCount())
	}
	sel, ok := s.Get(catalog.CPU)
	if !ok {
		t.Fatal("Get(cpu) ok = false")
	}
	if sel.Name != "AMD Ryzen 5 7600" {
		t.Errorf("Name = %q, want latest selection", sel.Name)
	}
	if s.TotalPrice() != 229 {
		t.Errorf("TotalPrice() = %d, want 229", s.TotalPrice())
	}
}

func TestTotalAndRatio(t *testing.T) {
	s := New()
	prices := map[catalog.Category]int{
		catalog.CPU:         199,
		catalog.GPU:         449,
		catalog.RAM:         109,
		catalog.Motherboard: 179,
	}
	sum := 0
	for c, p := range prices {
		s.Select(c, "part-"+string(c), p)
		sum += p
	}

	if s.TotalPrice() != sum {
		t.Errorf("TotalPrice() = %d, want %d", s.TotalPrice(), sum)
	}
	if got, want := s.CompletionRatio(), 4.0/7.0; got != want {
		t.Errorf("CompletionRatio() = %v, want %v", got, want)
	}

	missing := s.MissingCategories()
	want := []catalog.Category{catalog.Storage, catalog.PSU, catalog.Case}
	if len(missing) != len(want) {
		t.Fatalf("MissingCategories() = %v, want %v", missing, want)
	}
	for i := range want {
		if missing[i] != want[i] {
			t.Errorf("MissingCategories()[%d] = %q, want %q", i, missing[i], want[i])
		}
	}
}

func TestCompletionRatio_Full(t *testing.T) {
	s := New()
	for _, c := range catalog.Categories() {
		s.Select(c, "x", 0)
	}
	if s.CompletionRatio() != 1 {
		t.Errorf("CompletionRatio() = %v, want 1", s.CompletionRatio())
	}
	if len(s.MissingCategories()) != 0 {
		t.Errorf("MissingCategories() = %v, want none", s.MissingCategories())
	}
}

func TestSelections_FixedOrder(t *testing.T) {
	s := New()
	s.Select(catalog.Case, "NZXT H5 Flow", 94)
	s.Select(catalog.CPU, "Intel Core i5-13400F", 199)
	s.Select(catalog.PSU, "Corsair RM750W", 109)

	got := s.Selections()
	want := []catalog.Category{catalog.CPU, catalog.PSU, catalog.Case}
	if len(got) != len(want) {
		t.Fatalf("Selections() len = %d, want %d", len(got), len(want))
	}
	for i, c := range want {
		if got[i].Category != c {
			t.Errorf("Selections()[%d].Category = %q, want %q", i, got[i].Category, c)
		}
	}
}

func TestClone_Independent(t *testing.T) {
	s := New()
	s.Select(catalog.GPU, "RTX 4070 Super", 599)

	c := s.Clone()
	c.Select(catalog.GPU, "RX 7600 XT", 329)
	c.Select(catalog.RAM, "32GB DDR5-5600", 109)

	sel, _ := s.Get(catalog.GPU)
	if sel.Name != "RTX 4070 Super" {
		t.Errorf("original mutated through clone: %q", sel.Name)
	}
	if s.SelectedCount() != 1 {
		t.Errorf("original SelectedCount() = %d, want 1", s.SelectedCount())
	}
}

func TestSelect_PanicsOnProgrammingErrors(t *testing.T) {
	tests := []struct {
		name     string
		category catalog.Category
		price    int
	}{
		{"unknown category", catalog.Category("monitor"), 10},
		{"negative price", catalog.CPU, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Select() did not panic")
				}
			}()
			New().Select(tt.category, "x", tt.price)
		})
	}
}
