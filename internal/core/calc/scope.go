package calc

import "sync"

// Counts is the pair of tallies after one nested call.
type Counts struct {
	Global int
	Local  int
}

// Counter owns the tally that persists across demonstrations.
type Counter struct {
	mu     sync.Mutex
	global int
}

// Demonstrate performs calls nested increments. The global tally persists on
// the Counter while the local one starts from zero on every demonstration.
func (counter *Counter) Demonstrate(calls int) []Counts {
	local := 0
	increment := func() Counts {
		counter.mu.Lock()
		defer counter.mu.Unlock()
		counter.global++
		local++
		return Counts{Global: counter.global, Local: local}
	}

	results := make([]Counts, 0, calls)
	for i := 0; i < calls; i++ {
		results = append(results, increment())
	}
	return results
}

// Global returns the persisted tally.
func (counter *Counter) Global() int {
	counter.mu.Lock()
	defer counter.mu.Unlock()
	return counter.global
}
