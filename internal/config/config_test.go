package config

import (
	"errors"
	"strings"
	"testing"

	"heightmap/internal/terrain"
)

// restoreDefaults puts the process-wide settings back after a test mutates them
func restoreDefaults(t *testing.T) {
	size, decay, hash := GetSize(), GetDecay(), GetUseHashRand()
	t.Cleanup(func() {
		SetSize(size)
		SetDecay(decay)
		SetUseHashRand(hash)
	})
}

func TestDefaults(t *testing.T) {
	if GetSize() != 129 {
		t.Errorf("Expected default size 129, got %d", GetSize())
	}
	if GetDecay() != terrain.DefaultDecay {
		t.Errorf("Expected default decay %v, got %v", terrain.DefaultDecay, GetDecay())
	}
	if GetUseHashRand() {
		t.Errorf("Expected math/rand sources by default")
	}
}

func TestSetSizeRejectsInvalid(t *testing.T) {
	restoreDefaults(t)

	if !SetSize(257) || GetSize() != 257 {
		t.Errorf("Expected size 257 to be accepted, got %d", GetSize())
	}
	if SetSize(100) {
		t.Errorf("Expected size 100 to be rejected")
	}
	if GetSize() != 257 {
		t.Errorf("Expected rejected size to keep 257, got %d", GetSize())
	}
}

func TestSetDecayClamps(t *testing.T) {
	restoreDefaults(t)

	SetDecay(0)
	if GetDecay() != 0.01 {
		t.Errorf("Expected decay clamped to 0.01, got %v", GetDecay())
	}
	SetDecay(3)
	if GetDecay() != 0.99 {
		t.Errorf("Expected decay clamped to 0.99, got %v", GetDecay())
	}
	SetDecay(0.3)
	if GetDecay() != 0.3 {
		t.Errorf("Expected decay 0.3, got %v", GetDecay())
	}
}

func TestSourceFactory(t *testing.T) {
	restoreDefaults(t)

	SetUseHashRand(true)
	if _, ok := SourceFactory()(1).(*terrain.HashSource); !ok {
		t.Errorf("Expected HashSource when hash rand is enabled")
	}
	SetUseHashRand(false)
	if _, ok := SourceFactory()(1).(*terrain.HashSource); ok {
		t.Errorf("Expected math/rand source when hash rand is disabled")
	}
}

func TestLoadParams(t *testing.T) {
	p, err := LoadParams(strings.NewReader(`{"size": 33, "seed": 7, "count": 3}`))
	if err != nil {
		t.Fatalf("LoadParams: %v", err)
	}
	if p.Size != 33 || p.Seed != 7 || p.Count != 3 {
		t.Errorf("Expected size 33, seed 7, count 3, got %+v", p)
	}
	if p.Decay != GetDecay() {
		t.Errorf("Expected missing decay to default to %v, got %v", GetDecay(), p.Decay)
	}
	if seeds := p.Seeds(); len(seeds) != 3 || seeds[0] != 7 || seeds[2] != 9 {
		t.Errorf("Expected seeds [7 8 9], got %v", seeds)
	}
}

func TestLoadParamsErrors(t *testing.T) {
	cases := []struct {
		doc  string
		want error
	}{
		{`{"size": 32}`, terrain.ErrInvalidDimension},
		{`{"decay": 1.5}`, terrain.ErrInvalidDecay},
	}
	for _, tc := range cases {
		if _, err := LoadParams(strings.NewReader(tc.doc)); !errors.Is(err, tc.want) {
			t.Errorf("Expected %v from LoadParams(%s), got %v", tc.want, tc.doc, err)
		}
	}
	for _, doc := range []string{`{"count": 0}`, `{"unknown": 1}`, `not json`} {
		if _, err := LoadParams(strings.NewReader(doc)); err == nil {
			t.Errorf("Expected error from LoadParams(%s), got nil", doc)
		}
	}
}

// TestLoadParamsOverKeepsBase verifies only fields present in the document replace the base
func TestLoadParamsOverKeepsBase(t *testing.T) {
	base := Params{Size: 65, Decay: 0.4, Seed: 77, Count: 2}

	p, err := LoadParamsOver(strings.NewReader(`{"count": 5}`), base)
	if err != nil {
		t.Fatalf("LoadParamsOver: %v", err)
	}
	if want := (Params{Size: 65, Decay: 0.4, Seed: 77, Count: 5}); p != want {
		t.Errorf("Expected %+v, got %+v", want, p)
	}

	p, err = LoadParamsOver(strings.NewReader(`{"seed": 0}`), base)
	if err != nil {
		t.Fatalf("LoadParamsOver: %v", err)
	}
	if p.Seed != 0 {
		t.Errorf("Expected explicit seed 0 to replace base seed, got %d", p.Seed)
	}
}

// TestParamsTerrainGenerates verifies params feed the generator end to end
func TestParamsTerrainGenerates(t *testing.T) {
	p := Params{Size: 17, Decay: 0.5, Seed: 3, Count: 1}
	tp := p.Terrain(p.Seed)
	if err := tp.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	a, err := terrain.NewGeneratorWithParams(tp).Generate()
	if err != nil {
		t.Fatal(err)
	}
	b, err := terrain.Generate(17, 0.5, terrain.NewSource(3))
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Errorf("Expected params-driven generation to match direct generation")
	}
}
