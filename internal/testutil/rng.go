package testutil

// ScriptedRNG replays queued draws, then falls back to fixed defaults.
// It satisfies battle.RNG.
type ScriptedRNG struct {
	Floats       []float64
	Ints         []int
	DefaultFloat float64
	DefaultInt   int

	FloatCalls int
	IntCalls   int
}

// NeverRNG makes every chance roll fail, every accuracy roll hit and every
// damage roll land at the top of the spread.
func NeverRNG() *ScriptedRNG {
	return &ScriptedRNG{DefaultFloat: 0.999999, DefaultInt: 0}
}

// AlwaysRNG makes every chance roll succeed.
func AlwaysRNG() *ScriptedRNG {
	return &ScriptedRNG{DefaultFloat: 0, DefaultInt: 0}
}

// Float64 returns the next queued float or DefaultFloat.
func (r *ScriptedRNG) Float64() float64 {
	r.FloatCalls++
	if len(r.Floats) > 0 {
		v := r.Floats[0]
		r.Floats = r.Floats[1:]
		return v
	}
	return r.DefaultFloat
}

// IntN returns the next queued int clamped to [0, n) or DefaultInt.
func (r *ScriptedRNG) IntN(n int) int {
	r.IntCalls++
	v := r.DefaultInt
	if len(r.Ints) > 0 {
		v = r.Ints[0]
		r.Ints = r.Ints[1:]
	}
	if v < 0 {
		v = 0
	}
	if n > 0 && v >= n {
		v = n - 1
	}
	return v
}
