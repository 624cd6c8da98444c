package terrain

// Params groups the inputs of one generation.
type Params struct {
	Size   int
	Decay  float64
	Source Source
}

// Validate reports the first problem Generate would reject.
func (p Params) Validate() error {
	return validate(p.Size, p.Decay, p.Source)
}

// Generator runs Diamond-Square with fixed parameters.
// It is not safe for concurrent use because it shares one Source.
type Generator struct {
	params Params
}

// NewGenerator creates a generator for size×size grids with the default decay
// and a math/rand source seeded with seed.
func NewGenerator(size int, seed int64) *Generator {
	return &Generator{
		params: Params{
			Size:   size,
			Decay:  DefaultDecay,
			Source: NewSource(seed),
		},
	}
}

// NewGeneratorWithParams wraps explicit parameters.
func NewGeneratorWithParams(p Params) *Generator {
	return &Generator{params: p}
}

// Params returns the generator configuration.
func (g *Generator) Params() Params {
	return g.params
}

// Generate produces a new grid. Successive calls continue the same random
// stream, so each call yields a different terrain.
func (g *Generator) Generate() (*HeightGrid, error) {
	return Generate(g.params.Size, g.params.Decay, g.params.Source)
}

// Reset produces a grid with only its corners seeded.
func (g *Generator) Reset() (*HeightGrid, error) {
	return Reset(g.params.Size, g.params.Source)
}
