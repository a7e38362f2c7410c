// Package compat evaluates pairwise compatibility rules over a build.
package compat

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hpungsan/pcbuild/internal/build"
	"github.com/hpungsan/pcbuild/internal/catalog"
)

// HeadroomWatts is the margin above a GPU's minimum below which a PSU
// draws a capacity warning.
const HeadroomWatts = 100

// wattageRegex matches the first "<digits>W" token of a PSU name.
var wattageRegex = regexp.MustCompile(`(\d+)W`)

// Report is the result of Evaluate. Compatible is false iff Issues is non-empty.
type Report struct {
	Compatible bool     `json:"compatible"`
	Issues     []string `json:"issues"`
	Warnings   []string `json:"warnings"`
}

// Evaluate runs every rule against the build, in fixed order and without
// early exit. It does not modify s.
func Evaluate(s *build.State, rules *catalog.RuleSet) Report {
	issues := []string{}
	warnings := []string{}

	cpu, hasCPU := s.Get(catalog.CPU)
	board, hasBoard := s.Get(catalog.Motherboard)
	ram, hasRAM := s.Get(catalog.RAM)
	gpu, hasGPU := s.Get(catalog.GPU)
	psu, hasPSU := s.Get(catalog.PSU)

	if hasCPU && hasBoard {
		if allowed, _ := rules.BoardAllowedForCPU(cpu.Name, board.Name); !allowed {
			issues = append(issues, fmt.Sprintf("El %s no es compatible con la %s", cpu.Name, board.Name))
		}
	}

	if hasRAM && hasBoard {
		if allowed, _ := rules.RAMAllowedForBoard(board.Name, ram.Name); !allowed {
			issues = append(issues, fmt.Sprintf("La %s no es compatible con la %s", ram.Name, board.Name))
		}
	}

	if hasGPU && hasPSU {
		if watts, ok := ParseWattage(psu.Name); ok {
			if required, ok := rules.MinimumWattage(gpu.Name); ok {
				switch {
				case watts < required:
					issues = append(issues, fmt.Sprintf(
						"La fuente de %dW es insuficiente para la %s (requiere %dW mínimo)",
						watts, gpu.Name, required))
				case watts < required+HeadroomWatts:
					warnings = append(warnings, "Se recomienda una fuente de mayor capacidad para mejor eficiencia")
				}
			}
		}
	}

	if missing := s.MissingCategories(); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, c := range missing {
			names[i] = c.Label()
		}
		warnings = append(warnings, "Faltan componentes: "+strings.Join(names, ", "))
	}

	return Report{
		Compatible: len(issues) == 0,
		Issues:     issues,
		Warnings:   warnings,
	}
}

// ParseWattage extracts the wattage from the first "<digits>W" token in a
// PSU name. ok is false when no such token exists.
func ParseWattage(name string) (watts int, ok bool) {
	m := wattageRegex.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	w, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return w, true
}
