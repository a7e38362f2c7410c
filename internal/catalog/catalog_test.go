package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories_FixedOrder(t *testing.T) {
	want := []Category{CPU, GPU, RAM, Storage, Motherboard, PSU, Case}
	assert.Equal(t, want, Categories())
	assert.Equal(t, 7, Count())

	// Mutating the returned slice must not affect the package order.
	got := Categories()
	got[0] = "monitor"
	assert.Equal(t, CPU, Categories()[0])
}

func TestCategory_Label(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{CPU, "Procesador"},
		{GPU, "Tarjeta Gráfica"},
		{RAM, "Memoria RAM"},
		{Storage, "Almacenamiento"},
		{Motherboard, "Placa Madre"},
		{PSU, "Fuente de Poder"},
		{Case, "Gabinete"},
		{Category("monitor"), "monitor"},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.category.Label())
		})
	}
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory("  GPU ")
	require.True(t, ok)
	assert.Equal(t, GPU, c)

	_, ok = ParseCategory("monitor")
	assert.False(t, ok)

	assert.Equal(t, 4, Motherboard.Index())
	assert.Equal(t, -1, Category("x").Index())
}

func TestDefault_Catalog(t *testing.T) {
	cat, rules, err := Default()
	require.NoError(t, err)
	require.NotNil(t, rules)

	for _, c := range Categories() {
		assert.NotEmpty(t, cat.Components(c), "category %s has no components", c)
	}
	assert.Equal(t, 21, cat.Len())

	cpu, ok := cat.Find(CPU, "Intel Core i5-13400F")
	require.True(t, ok)
	assert.Equal(t, CPU, cpu.Category)
	assert.Equal(t, 199, cpu.Price)

	_, ok = cat.Find(GPU, "Intel Core i5-13400F")
	assert.False(t, ok, "lookup must be scoped to the category")
}

func TestDefault_Rules(t *testing.T) {
	_, rules := MustDefault()

	allowed, constrained := rules.BoardAllowedForCPU("Intel Core i5-13400F", "Gigabyte Z790M")
	assert.True(t, constrained)
	assert.True(t, allowed)

	allowed, constrained = rules.BoardAllowedForCPU("Intel Core i5-13400F", "MSI B550M PRO")
	assert.True(t, constrained)
	assert.False(t, allowed)

	allowed, constrained = rules.BoardAllowedForCPU("Unknown CPU", "MSI B550M PRO")
	assert.False(t, constrained)
	assert.True(t, allowed)

	allowed, _ = rules.RAMAllowedForBoard("MSI B550M PRO", "32GB DDR4-3600")
	assert.True(t, allowed)
	allowed, _ = rules.RAMAllowedForBoard("Gigabyte Z790M", "16GB DDR4-3200")
	assert.False(t, allowed)

	w, ok := rules.MinimumWattage("RTX 4060 Ti 16GB")
	require.True(t, ok)
	assert.Equal(t, 550, w)
	_, ok = rules.MinimumWattage("GTX 1050")
	assert.False(t, ok)
}

func TestNewRuleSet_CopiesInput(t *testing.T) {
	boards := map[string][]string{"cpu-a": {"board-a"}}
	watts := map[string]int{"gpu-a": 300}
	rules := NewRuleSet(boards, nil, watts)

	boards["cpu-a"] = append(boards["cpu-a"], "board-b")
	watts["gpu-a"] = 900

	allowed, _ := rules.BoardAllowedForCPU("cpu-a", "board-b")
	assert.False(t, allowed)
	w, _ := rules.MinimumWattage("gpu-a")
	assert.Equal(t, 300, w)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "components: [\n"},
		{"unknown category", "components:\n  monitor:\n    - name: X\n      price: 1\n"},
		{"missing name", "components:\n  cpu:\n    - price: 1\n"},
		{"negative price", "components:\n  cpu:\n    - name: X\n      price: -1\n"},
		{"duplicate", "components:\n  cpu:\n    - name: X\n      price: 1\n    - name: X\n      price: 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := `components:
  psu:
    - name: Budget 450W
      price: 35
rules:
  power_requirements:
    Big GPU: 800
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0600))

	cat, rules, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, cat.Components(PSU), 1)
	assert.Empty(t, cat.Components(CPU))
	w, ok := rules.MinimumWattage("Big GPU")
	assert.True(t, ok)
	assert.Equal(t, 800, w)

	_, _, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	cat, _, err = LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, 21, cat.Len())
}
