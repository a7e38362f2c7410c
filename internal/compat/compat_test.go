package compat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpungsan/pcbuild/internal/build"
	"github.com/hpungsan/pcbuild/internal/catalog"
)

func defaultRules(t *testing.T) *catalog.RuleSet {
	t.Helper()
	_, rules, err := catalog.Default()
	require.NoError(t, err)
	return rules
}

func fullBuild() *build.State {
	s := build.New()
	s.Select(catalog.CPU, "Intel Core i5-13400F", 199)
	s.Select(catalog.GPU, "RTX 4060 Ti 16GB", 449)
	s.Select(catalog.RAM, "32GB DDR5-5600", 109)
	s.Select(catalog.Storage, "WD Black SN850X 2TB NVMe", 149)
	s.Select(catalog.Motherboard, "Gigabyte Z790M", 179)
	s.Select(catalog.PSU, "Corsair RM750W", 109)
	s.Select(catalog.Case, "NZXT H5 Flow", 94)
	return s
}

func TestEvaluate_FullCompatibleBuild(t *testing.T) {
	r := Evaluate(fullBuild(), defaultRules(t))

	assert.True(t, r.Compatible)
	assert.Empty(t, r.Issues)
	assert.Empty(t, r.Warnings)
}

func TestEvaluate_CPUBoard(t *testing.T) {
	rules := defaultRules(t)

	s := build.New()
	s.Select(catalog.CPU, "Intel Core i5-13400F", 199)
	s.Select(catalog.Motherboard, "Gigabyte Z790M", 179)
	r := Evaluate(s, rules)
	assert.True(t, r.Compatible)
	assert.Empty(t, r.Issues)

	s.Select(catalog.Motherboard, "MSI B550M PRO", 109)
	r = Evaluate(s, rules)
	assert.False(t, r.Compatible)
	require.Len(t, r.Issues, 1)
	assert.Equal(t, "El Intel Core i5-13400F no es compatible con la MSI B550M PRO", r.Issues[0])
}

func TestEvaluate_UnconstrainedCPU(t *testing.T) {
	s := build.New()
	s.Select(catalog.CPU, "Some Future CPU", 500)
	s.Select(catalog.Motherboard, "MSI B550M PRO", 109)

	r := Evaluate(s, defaultRules(t))
	assert.True(t, r.Compatible)
}

func TestEvaluate_RAMBoard(t *testing.T) {
	s := build.New()
	s.Select(catalog.RAM, "16GB DDR4-3200", 45)
	s.Select(catalog.Motherboard, "ASUS ROG B650M", 189)

	r := Evaluate(s, defaultRules(t))
	assert.False(t, r.Compatible)
	assert.Equal(t, []string{"La 16GB DDR4-3200 no es compatible con la ASUS ROG B650M"}, r.Issues)
}

func TestEvaluate_PowerThresholds(t *testing.T) {
	tests := []struct {
		name        string
		psu         string
		wantIssue   string
		wantWarning bool
	}{
		{"below minimum", "Generic 500W", "La fuente de 500W es insuficiente para la RTX 4060 Ti 16GB (requiere 550W mínimo)", false},
		{"one under minimum", "Generic 549W", "La fuente de 549W es insuficiente para la RTX 4060 Ti 16GB (requiere 550W mínimo)", false},
		{"exactly minimum", "Generic 550W", "", true},
		{"inside headroom", "Generic 600W", "", true},
		{"one under headroom", "Generic 649W", "", true},
		{"exactly headroom", "Generic 650W", "", false},
		{"above headroom", "Generic 700W", "", false},
	}

	rules := defaultRules(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := fullBuild()
			s.Select(catalog.PSU, tt.psu, 80)

			r := Evaluate(s, rules)
			if tt.wantIssue != "" {
				assert.False(t, r.Compatible)
				assert.Equal(t, []string{tt.wantIssue}, r.Issues)
			} else {
				assert.True(t, r.Compatible)
				assert.Empty(t, r.Issues)
			}
			if tt.wantWarning {
				assert.Equal(t, []string{"Se recomienda una fuente de mayor capacidad para mejor eficiencia"}, r.Warnings)
			} else {
				assert.Empty(t, r.Warnings)
			}
		})
	}
}

func TestEvaluate_UnparseableWattageSkipsRule(t *testing.T) {
	s := fullBuild()
	s.Select(catalog.PSU, "Mystery Power Supply", 20)

	r := Evaluate(s, defaultRules(t))
	assert.True(t, r.Compatible)
	assert.Empty(t, r.Warnings)
}

func TestEvaluate_UnknownGPUUnconstrained(t *testing.T) {
	s := fullBuild()
	s.Select(catalog.GPU, "GTX 1050", 100)
	s.Select(catalog.PSU, "Tiny 200W", 20)

	r := Evaluate(s, defaultRules(t))
	assert.True(t, r.Compatible)
}

func TestEvaluate_EmptyBuild(t *testing.T) {
	r := Evaluate(build.New(), defaultRules(t))

	assert.True(t, r.Compatible)
	assert.Empty(t, r.Issues)
	assert.Equal(t, []string{
		"Faltan componentes: Procesador, Tarjeta Gráfica, Memoria RAM, Almacenamiento, Placa Madre, Fuente de Poder, Gabinete",
	}, r.Warnings)
}

func TestEvaluate_OrderAcrossSteps(t *testing.T) {
	s := build.New()
	s.Select(catalog.CPU, "Intel Core i7-13700F", 329)
	s.Select(catalog.Motherboard, "MSI B550M PRO", 109)
	s.Select(catalog.RAM, "32GB DDR5-5600", 109)
	s.Select(catalog.GPU, "RTX 4070 Super", 599)
	s.Select(catalog.PSU, "Corsair CX600W", 69)

	r := Evaluate(s, defaultRules(t))
	assert.False(t, r.Compatible)
	assert.Equal(t, []string{
		"El Intel Core i7-13700F no es compatible con la MSI B550M PRO",
		"La 32GB DDR5-5600 no es compatible con la MSI B550M PRO",
		"La fuente de 600W es insuficiente para la RTX 4070 Super (requiere 650W mínimo)",
	}, r.Issues)
	assert.Equal(t, []string{"Faltan componentes: Almacenamiento, Gabinete"}, r.Warnings)
}

func TestEvaluate_WarningOrder(t *testing.T) {
	s := build.New()
	s.Select(catalog.GPU, "RX 7600 XT", 329)
	s.Select(catalog.PSU, "Corsair CX600W", 69)

	r := Evaluate(s, defaultRules(t))
	require.Len(t, r.Warnings, 2)
	assert.Equal(t, "Se recomienda una fuente de mayor capacidad para mejor eficiencia", r.Warnings[0])
	assert.Contains(t, r.Warnings[1], "Faltan componentes: ")
}

func TestEvaluate_Deterministic(t *testing.T) {
	rules := defaultRules(t)
	s := fullBuild()
	s.Select(catalog.PSU, "EVGA 500W Bronze", 49)
	before := s.Selections()

	first := Evaluate(s, rules)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Evaluate(s, rules))
	}
	assert.Equal(t, before, s.Selections(), "Evaluate must not mutate the build")
}

func TestParseWattage(t *testing.T) {
	tests := []struct {
		name   string
		watts  int
		wantOK bool
	}{
		{"EVGA 500W Bronze", 500, true},
		{"Corsair RM750W", 750, true},
		{"Corsair CX600W", 600, true},
		{"Seasonic 80+ 650W Gold", 650, true},
		{"1000W Titanium 1200W", 1000, true},
		{"Power Supply", 0, false},
		{"650 W", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, ok := ParseWattage(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.watts, w)
		})
	}
}
