package config

import (
	"encoding/json"
	"fmt"
	"io"

	"heightmap/internal/terrain"
)

// Params is the JSON document accepted by the heightmap command.
// It is shared with cmd/schema so editors can validate params files.
type Params struct {
	Size  int     `json:"size" jsonschema:"title=Grid size,description=Side length of the grid; must be 2^k+1,minimum=3,default=129"`
	Decay float64 `json:"decay" jsonschema:"title=Decay,description=Fraction of the perturbation amplitude removed per level,minimum=0,maximum=1,default=0.55"`
	Seed  int64   `json:"seed,omitempty" jsonschema:"title=Seed,description=Seed of the first grid; later grids use seed+1 and onward"`
	Count int     `json:"count,omitempty" jsonschema:"title=Count,description=Number of grids to generate,minimum=1,default=1"`
}

// DefaultParams returns params built from the current process defaults.
func DefaultParams() Params {
	return Params{
		Size:  GetSize(),
		Decay: GetDecay(),
		Count: 1,
	}
}

// LoadParams decodes a params document. Fields missing from the document
// keep their defaults.
func LoadParams(r io.Reader) (Params, error) {
	return LoadParamsOver(r, DefaultParams())
}

// LoadParamsOver decodes a params document on top of base. Fields missing from
// the document keep their base values; fields present, including a zero seed,
// replace them.
func LoadParamsOver(r io.Reader, base Params) (Params, error) {
	p := base
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return Params{}, fmt.Errorf("could not decode params: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Validate checks the params against the generator's preconditions.
func (p Params) Validate() error {
	if err := terrain.ValidateDimension(p.Size); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}
	if err := terrain.ValidateDecay(p.Decay); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}
	if p.Count < 1 {
		return fmt.Errorf("invalid params: count %d must be at least 1", p.Count)
	}
	return nil
}

// Seeds lists one seed per grid, starting at Seed.
func (p Params) Seeds() []int64 {
	seeds := make([]int64, p.Count)
	for i := range seeds {
		seeds[i] = p.Seed + int64(i)
	}
	return seeds
}

// Terrain pairs the params with a source for the given seed.
func (p Params) Terrain(seed int64) terrain.Params {
	return terrain.Params{
		Size:   p.Size,
		Decay:  p.Decay,
		Source: SourceFactory()(seed),
	}
}
