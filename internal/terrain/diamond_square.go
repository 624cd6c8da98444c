package terrain

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// DefaultDecay is the fraction of the perturbation amplitude removed after each level.
const DefaultDecay = 0.55

// initialAmplitude is the half-width of the perturbation interval at the first level.
const initialAmplitude = 0.5

var (
	// ErrInvalidDimension is returned for sizes that are not 2^k+1 with k >= 1.
	ErrInvalidDimension = errors.New("terrain: grid size must be 2^k+1 with k >= 1")
	// ErrInvalidDecay is returned for decays outside the open interval (0,1).
	ErrInvalidDecay = errors.New("terrain: decay must lie in (0,1)")
	// ErrNilSource is returned when no randomness source is supplied.
	ErrNilSource = errors.New("terrain: nil randomness source")
)

// ValidateDimension checks that n-1 is a power of two and n >= 3.
func ValidateDimension(n int) error {
	if n < 3 || (n-1)&(n-2) != 0 {
		return fmt.Errorf("size %d: %w", n, ErrInvalidDimension)
	}
	return nil
}

// ValidateDecay checks that decay is finite and strictly between 0 and 1.
func ValidateDecay(decay float64) error {
	if math.IsNaN(decay) || decay <= 0 || decay >= 1 {
		return fmt.Errorf("decay %v: %w", decay, ErrInvalidDecay)
	}
	return nil
}

// Levels returns how many refinement passes a grid of size n needs: log2(n-1).
func Levels(n int) (int, error) {
	if err := ValidateDimension(n); err != nil {
		return 0, err
	}
	return bits.TrailingZeros(uint(n - 1)), nil
}

// AmplitudeSchedule lists the perturbation amplitude used at each of the given levels.
func AmplitudeSchedule(levels int, decay float64) []float64 {
	out := make([]float64, 0, max(levels, 0))
	amplitude := initialAmplitude
	for range levels {
		out = append(out, amplitude)
		amplitude -= amplitude * decay
	}
	return out
}

// Generate fills a fresh n×n grid with the Diamond-Square algorithm.
// The corners are seeded with raw draws from rng; every later cell is the
// mean of its neighbours plus a draw scaled to the current amplitude.
// Neighbour lookups wrap modulo n-1, which makes the result tileable.
func Generate(n int, decay float64, rng Source) (*HeightGrid, error) {
	if err := validate(n, decay, rng); err != nil {
		return nil, err
	}

	g := seedCorners(n, rng)
	amplitude := initialAmplitude
	for side := n - 1; side > 1; side /= 2 {
		half := side / 2
		diamondStep(g, side, half, amplitude, rng)
		squareStep(g, side, half, amplitude, rng)
		amplitude -= amplitude * decay
	}
	return g, nil
}

// Reset returns an n×n grid with only the four corners seeded and all other cells at 0.
// It consumes the same first four draws Generate would.
func Reset(n int, rng Source) (*HeightGrid, error) {
	if err := ValidateDimension(n); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNilSource
	}
	return seedCorners(n, rng), nil
}

func validate(n int, decay float64, rng Source) error {
	if err := ValidateDimension(n); err != nil {
		return err
	}
	if err := ValidateDecay(decay); err != nil {
		return err
	}
	if rng == nil {
		return ErrNilSource
	}
	return nil
}

// seedCorners draws top-left, top-right, bottom-left, bottom-right in that order.
func seedCorners(n int, rng Source) *HeightGrid {
	g := NewHeightGrid(n)
	last := n - 1
	g.Set(0, 0, rng.Float64())
	g.Set(last, 0, rng.Float64())
	g.Set(0, last, rng.Float64())
	g.Set(last, last, rng.Float64())
	return g
}

// perturb maps a [0,1) draw onto [-amplitude, +amplitude).
func perturb(rng Source, amplitude float64) float64 {
	return rng.Float64()*(amplitude*2) - amplitude
}

// diamondStep sets the centre of every side×side square from its four corners.
func diamondStep(g *HeightGrid, side, half int, amplitude float64, rng Source) {
	limit := g.size - 1
	for x := 0; x < limit; x += side {
		for y := 0; y < limit; y += side {
			avg := g.At(x, y)
			avg += g.At(x+side, y)
			avg += g.At(x, y+side)
			avg += g.At(x+side, y+side)
			avg /= 4
			g.Set(x+half, y+half, avg+perturb(rng, amplitude))
		}
	}
}

// squareStep sets every edge midpoint from its four axis neighbours, wrapping
// around the torus, and mirrors leading-edge cells onto the trailing edge.
func squareStep(g *HeightGrid, side, half int, amplitude float64, rng Source) {
	limit := g.size - 1
	for x := 0; x < limit; x += half {
		for y := (x + half) % side; y < limit; y += side {
			avg := g.At((x-half+limit)%limit, y)
			avg += g.At((x+half)%limit, y)
			avg += g.At(x, (y+half)%limit)
			avg += g.At(x, (y-half+limit)%limit)
			avg /= 4
			avg += perturb(rng, amplitude)
			g.Set(x, y, avg)

			if x == 0 {
				g.Set(limit, y, avg)
			}
			if y == 0 {
				g.Set(x, limit, avg)
			}
		}
	}
}
