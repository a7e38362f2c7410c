package catalog

// RuleSet holds the static compatibility tables. It is immutable after
// construction; a missing key means the component is unconstrained.
type RuleSet struct {
	cpuBoards  map[string]map[string]struct{}
	boardRAM   map[string]map[string]struct{}
	gpuMinWatt map[string]int
}

// NewRuleSet copies the given tables into an immutable RuleSet.
func NewRuleSet(cpuBoards, boardRAM map[string][]string, gpuMinWatt map[string]int) *RuleSet {
	r := &RuleSet{
		cpuBoards:  toSets(cpuBoards),
		boardRAM:   toSets(boardRAM),
		gpuMinWatt: make(map[string]int, len(gpuMinWatt)),
	}
	for gpu, watts := range gpuMinWatt {
		r.gpuMinWatt[gpu] = watts
	}
	return r
}

func toSets(m map[string][]string) map[string]map[string]struct{} {
	out := make(map[string]map[string]struct{}, len(m))
	for key, names := range m {
		set := make(map[string]struct{}, len(names))
		for _, n := range names {
			set[n] = struct{}{}
		}
		out[key] = set
	}
	return out
}

// BoardAllowedForCPU reports whether board may pair with cpu.
// constrained is false when the CPU has no entry.
func (r *RuleSet) BoardAllowedForCPU(cpu, board string) (allowed, constrained bool) {
	return lookup(r.cpuBoards, cpu, board)
}

// RAMAllowedForBoard reports whether ram may pair with board.
// constrained is false when the board has no entry.
func (r *RuleSet) RAMAllowedForBoard(board, ram string) (allowed, constrained bool) {
	return lookup(r.boardRAM, board, ram)
}

// MinimumWattage returns the minimum PSU wattage required by gpu.
func (r *RuleSet) MinimumWattage(gpu string) (int, bool) {
	w, ok := r.gpuMinWatt[gpu]
	return w, ok
}

func lookup(table map[string]map[string]struct{}, key, candidate string) (bool, bool) {
	set, ok := table[key]
	if !ok {
		return true, false
	}
	_, allowed := set[candidate]
	return allowed, true
}
