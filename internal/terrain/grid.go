package terrain

import "math"

// HeightGrid is a square grid of elevation samples.
// Cells are stored row-major; x is the column and y the row.
type HeightGrid struct {
	size  int
	cells []float64
}

// NewHeightGrid allocates a size×size grid with every cell at 0.
func NewHeightGrid(size int) *HeightGrid {
	return &HeightGrid{
		size:  size,
		cells: make([]float64, size*size),
	}
}

// Size returns the side length of the grid.
func (g *HeightGrid) Size() int {
	return g.size
}

func (g *HeightGrid) index(x, y int) int {
	return y*g.size + x
}

// At returns the height at column x, row y.
func (g *HeightGrid) At(x, y int) float64 {
	return g.cells[g.index(x, y)]
}

// Set stores the height at column x, row y.
func (g *HeightGrid) Set(x, y int, v float64) {
	g.cells[g.index(x, y)] = v
}

// Row returns a copy of row y.
func (g *HeightGrid) Row(y int) []float64 {
	out := make([]float64, g.size)
	copy(out, g.cells[y*g.size:(y+1)*g.size])
	return out
}

// Rows returns the grid as a freshly allocated [row][column] block.
func (g *HeightGrid) Rows() [][]float64 {
	out := make([][]float64, g.size)
	for y := range g.size {
		out[y] = g.Row(y)
	}
	return out
}

// Clone returns a deep copy.
func (g *HeightGrid) Clone() *HeightGrid {
	c := NewHeightGrid(g.size)
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both grids have the same size and bit-identical cells.
func (g *HeightGrid) Equal(o *HeightGrid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.size != o.size {
		return false
	}
	for i, v := range g.cells {
		if math.Float64bits(v) != math.Float64bits(o.cells[i]) {
			return false
		}
	}
	return true
}

// Stats summarizes the height distribution of a grid.
type Stats struct {
	Min, Max, Mean float64
}

// Stats scans every cell once.
func (g *HeightGrid) Stats() Stats {
	if len(g.cells) == 0 {
		return Stats{}
	}
	s := Stats{Min: math.Inf(1), Max: math.Inf(-1)}
	sum := 0.0
	for _, v := range g.cells {
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
		sum += v
	}
	s.Mean = sum / float64(len(g.cells))
	return s
}

// Normalized returns a copy rescaled so the lowest cell is 0 and the highest is 1.
// A flat grid maps to all zeros.
func (g *HeightGrid) Normalized() *HeightGrid {
	out := g.Clone()
	s := g.Stats()
	span := s.Max - s.Min
	for i, v := range out.cells {
		if span == 0 {
			out.cells[i] = 0
			continue
		}
		out.cells[i] = (v - s.Min) / span
	}
	return out
}

// Clamped returns a copy with every cell limited to [0,1], the range height
// field consumers accept.
func (g *HeightGrid) Clamped() *HeightGrid {
	out := g.Clone()
	for i, v := range out.cells {
		out.cells[i] = clamp01(v)
	}
	return out
}

// wrap maps any coordinate onto [0, period).
func wrap(v, period int) int {
	v %= period
	if v < 0 {
		v += period
	}
	return v
}
