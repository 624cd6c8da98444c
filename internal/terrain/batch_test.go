package terrain

import (
	"context"
	"errors"
	"testing"
)

// TestGenerateBatchMatchesSequential verifies parallel output equals one-at-a-time output
func TestGenerateBatchMatchesSequential(t *testing.T) {
	seeds := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	for _, newSource := range []func(int64) Source{NewSource, NewHashSource} {
		grids, err := GenerateBatch(context.Background(), 33, DefaultDecay, seeds, newSource)
		if err != nil {
			t.Fatalf("GenerateBatch: %v", err)
		}
		if len(grids) != len(seeds) {
			t.Fatalf("got %d grids, want %d", len(grids), len(seeds))
		}
		for i, seed := range seeds {
			want, err := Generate(33, DefaultDecay, newSource(seed))
			if err != nil {
				t.Fatal(err)
			}
			if !grids[i].Equal(want) {
				t.Errorf("grid %d (seed %d) Equal sequential = false, want true", i, seed)
			}
		}
	}
}

func TestGenerateBatchDefaultsToMathRand(t *testing.T) {
	grids, err := GenerateBatch(context.Background(), 9, DefaultDecay, []int64{42}, nil)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := Generate(9, DefaultDecay, NewSource(42))
	if !grids[0].Equal(want) {
		t.Errorf("grid with nil constructor Equal NewSource grid = false, want true")
	}
}

func TestGenerateBatchValidation(t *testing.T) {
	if _, err := GenerateBatch(context.Background(), 10, DefaultDecay, []int64{1}, nil); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("err = %v, want ErrInvalidDimension", err)
	}
	if _, err := GenerateBatch(context.Background(), 9, 2, []int64{1}, nil); !errors.Is(err, ErrInvalidDecay) {
		t.Errorf("err = %v, want ErrInvalidDecay", err)
	}
	nilSource := func(int64) Source { return nil }
	if _, err := GenerateBatch(context.Background(), 9, DefaultDecay, []int64{1}, nilSource); !errors.Is(err, ErrNilSource) {
		t.Errorf("err = %v, want ErrNilSource", err)
	}
}

func TestGenerateBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	grids, err := GenerateBatch(ctx, 9, DefaultDecay, []int64{1, 2, 3}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if grids != nil {
		t.Errorf("grids = %v after cancellation, want nil", grids)
	}
}

func TestGenerateBatchEmpty(t *testing.T) {
	grids, err := GenerateBatch(context.Background(), 9, DefaultDecay, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(grids) != 0 {
		t.Errorf("got %d grids, want 0", len(grids))
	}
}
