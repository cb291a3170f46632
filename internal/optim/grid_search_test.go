package optim

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestGridSearchFindsMinimum(t *testing.T) {
	gs := NewGridSearch(
		[]string{"a", "b"},
		[][]float64{
			{-1, 0, 1, 2},
			{-2, 0, 2},
		},
	)

	// Paraboloid centered at (1, 2).
	params, best, err := gs.Search(context.Background(), func(p map[string]float64) (float64, error) {
		da := p["a"] - 1
		db := p["b"] - 2
		return da*da + db*db, nil
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	if params["a"] != 1 || params["b"] != 2 {
		t.Errorf("best params = %v, want a=1 b=2", params)
	}
	if best != 0 {
		t.Errorf("best objective = %g, want 0", best)
	}
}

func TestGridSearchSkipsFailingCombinations(t *testing.T) {
	gs := NewGridSearch([]string{"x"}, [][]float64{{1, 2, 3}})

	params, best, err := gs.Search(context.Background(), func(p map[string]float64) (float64, error) {
		if p["x"] == 1 {
			return 0, errors.New("invalid combination")
		}
		return p["x"], nil
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	if params["x"] != 2 {
		t.Errorf("best x = %g, want 2", params["x"])
	}
	if best != 2 {
		t.Errorf("best objective = %g, want 2", best)
	}
}

func TestGridSearchAllFail(t *testing.T) {
	gs := NewGridSearch([]string{"x"}, [][]float64{{1, 2}})

	params, best, err := gs.Search(context.Background(), func(p map[string]float64) (float64, error) {
		return 0, errors.New("always fails")
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	if params != nil {
		t.Errorf("expected nil params, got %v", params)
	}
	if !math.IsInf(best, 1) {
		t.Errorf("best objective = %g, want +Inf", best)
	}
}

func TestGridSearchCanceledContext(t *testing.T) {
	gs := NewGridSearch([]string{"x"}, [][]float64{{1, 2}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := gs.Search(ctx, func(p map[string]float64) (float64, error) {
		t.Fatal("objective should not run after cancellation")
		return 0, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
