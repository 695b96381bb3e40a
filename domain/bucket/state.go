package bucket

// State holds one bucket's occurrence counters plus the derived moments.
// Counters map an observed component value to how often it occurred.
// The moments are filled in by the trainer after the counting pass;
// Variance and StdDev are population statistics (no Bessel correction).
type State struct {
	Counts map[int]int

	Mean     float64
	Variance float64
	StdDev   float64
}

// NewState creates an empty bucket state
func NewState() *State {
	return &State{Counts: make(map[int]int)}
}

// Observe increments the counter for one observed value
func (st *State) Observe(value int) {
	st.Counts[value]++
}

// Total returns the sum of all occurrence counts
func (st *State) Total() int {
	total := 0
	for _, c := range st.Counts {
		total += c
	}
	return total
}

// Reset clears counters and derived moments
func (st *State) Reset() {
	st.Counts = make(map[int]int)
	st.Mean = 0
	st.Variance = 0
	st.StdDev = 0
}
