package rng

// DefaultFallback is returned once a Scripted stream runs out of draws.
// It fails every chance check below 0.99.
const DefaultFallback = 0.99

// Scripted replays a fixed list of draws. Tests use it to pin roll outcomes.
type Scripted struct {
	draws    []float64
	pos      int
	Fallback float64
}

// NewScripted returns a stream that yields draws in order, then Fallback
func NewScripted(draws ...float64) *Scripted {
	return &Scripted{draws: draws, Fallback: DefaultFallback}
}

func (s *Scripted) Float64() float64 {
	if s.pos >= len(s.draws) {
		return s.Fallback
	}
	d := s.draws[s.pos]
	s.pos++
	return d
}

// IntRange maps the next draw onto [lo, hi)
func (s *Scripted) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + int(s.Float64()*float64(hi-lo))
}

// Consumed returns how many scripted draws have been used
func (s *Scripted) Consumed() int {
	return s.pos
}
