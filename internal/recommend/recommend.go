// Package recommend produces advisory suggestions for a build. Suggestions
// are independent of compatibility: none of them marks a build invalid.
package recommend

import (
	"strings"

	"github.com/hpungsan/pcbuild/internal/build"
	"github.com/hpungsan/pcbuild/internal/catalog"
)

const (
	Ram4K         = "Para gaming en 4K con RTX 4070, se recomienda 32GB de RAM"
	NVMeRayTrace  = "Los juegos modernos con Ray Tracing se benefician de almacenamiento NVMe rápido"
	RamMultitask  = "Un procesador i7 funciona mejor con 32GB de RAM para multitarea"
	StorageLarger = "Considera 2TB o más para juegos modernos que requieren mucho espacio"
	CoolingI7     = "Los procesadores i7 generan calor, asegúrate de tener buena refrigeración"
)

// rule is one independent recommendation. Matching is case-sensitive
// substring containment on the stored component names.
type rule struct {
	advice string
	match  func(p parts) bool
}

type parts struct {
	cpu, gpu, ram, storage             build.Selection
	hasCPU, hasGPU, hasRAM, hasStorage bool
}

func (p parts) gpuHas(s string) bool     { return p.hasGPU && strings.Contains(p.gpu.Name, s) }
func (p parts) cpuHas(s string) bool     { return p.hasCPU && strings.Contains(p.cpu.Name, s) }
func (p parts) ramHas(s string) bool     { return p.hasRAM && strings.Contains(p.ram.Name, s) }
func (p parts) storageHas(s string) bool { return p.hasStorage && strings.Contains(p.storage.Name, s) }

var rules = []rule{
	{Ram4K, func(p parts) bool { return p.gpuHas("RTX 4070") && !p.ramHas("32GB") }},
	{NVMeRayTrace, func(p parts) bool { return p.gpuHas("RTX") && !p.storageHas("NVMe") }},
	{RamMultitask, func(p parts) bool { return p.cpuHas("i7") && (!p.hasRAM || p.ramHas("16GB")) }},
	{StorageLarger, func(p parts) bool { return p.storageHas("1TB") && p.gpuHas("RTX") }},
	{CoolingI7, func(p parts) bool { return p.cpuHas("i7") }},
}

// Recommend returns the advice of every matching rule, in rule order.
// Duplicates are not removed.
func Recommend(s *build.State) []string {
	var p parts
	p.cpu, p.hasCPU = s.Get(catalog.CPU)
	p.gpu, p.hasGPU = s.Get(catalog.GPU)
	p.ram, p.hasRAM = s.Get(catalog.RAM)
	p.storage, p.hasStorage = s.Get(catalog.Storage)

	out := []string{}
	for _, r := range rules {
		if r.match(p) {
			out = append(out, r.advice)
		}
	}
	return out
}
