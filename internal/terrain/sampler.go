package terrain

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// HeightField is a host resource that accepts a block of height samples
// placed at a given origin.
type HeightField interface {
	SetHeights(xBase, yBase int, heights [][]float64) error
}

// Apply replaces the whole field with grid. Heights are clamped to [0,1] and
// always written at origin (0,0).
func Apply(field HeightField, grid *HeightGrid) error {
	return field.SetHeights(0, 0, grid.Clamped().Rows())
}

// Sampler maps a generated grid onto integer block heights, repeating the
// grid across the world plane.
type Sampler struct {
	grid       *HeightGrid
	baseHeight int
	amp        float64
}

// NewSampler creates a sampler whose heights span baseHeight..baseHeight+amp.
func NewSampler(grid *HeightGrid, baseHeight int, amp float64) *Sampler {
	return &Sampler{
		grid:       grid,
		baseHeight: baseHeight,
		amp:        amp,
	}
}

// HeightAt computes surface height (block Y) at world X,Z.
// The trailing row and column alias the leading ones, so the period is size-1.
func (s *Sampler) HeightAt(worldX, worldZ int) int {
	period := max(s.grid.Size()-1, 1)
	h := clamp01(s.grid.At(wrap(worldX, period), wrap(worldZ, period)))
	height := float64(s.baseHeight) + h*s.amp
	if height < 0 {
		height = 0
	}
	return int(math.Floor(height))
}

func clamp01(v float64) float64 {
	return mgl64.Clamp(v, 0, 1)
}
