package terrain

import "math/rand"

// Source supplies uniform draws in [0,1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a math/rand generator seeded with seed.
// Each call owns its own state, so sources are safe to use on separate goroutines.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// HashSource is a counter-based stream: draw i is a pure function of (seed, i).
type HashSource struct {
	seed    int64
	counter uint64
}

// NewHashSource creates a HashSource positioned at its first draw.
func NewHashSource(seed int64) Source {
	return &HashSource{seed: seed}
}

// Float64 returns the next draw in [0,1).
func (s *HashSource) Float64() float64 {
	h := splitmix64(s.counter, s.seed)
	s.counter++
	// top 53 bits give an exactly representable value below 1
	return float64(h>>11) / (1 << 53)
}

func splitmix64(i uint64, seed int64) uint64 {
	v := i + uint64(seed)*0x9E3779B97F4A7C15
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

// SequenceSource replays fixed values, then keeps returning the last one.
// An empty sequence always yields 0.
type SequenceSource struct {
	values []float64
	next   int
}

// NewSequenceSource copies values into a new SequenceSource.
func NewSequenceSource(values ...float64) *SequenceSource {
	v := make([]float64, len(values))
	copy(v, values)
	return &SequenceSource{values: v}
}

func (s *SequenceSource) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	if s.next >= len(s.values) {
		return s.values[len(s.values)-1]
	}
	v := s.values[s.next]
	s.next++
	return v
}

// Draws reports how many values have been consumed from the sequence.
func (s *SequenceSource) Draws() int {
	return s.next
}
