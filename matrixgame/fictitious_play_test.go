package matrixgame

import (
	"math"
	"math/rand"
	"testing"
)

func TestFictitiousPlay_RockPaperScissors(t *testing.T) {
	payoffs := [][]float64{
		{0, 1, -1}, // Player 0 plays rock.
		{-1, 0, 1}, // Player 0 plays scissors.
		{1, -1, 0}, // Player 0 plays paper.
	}

	p0, p1, err := FictitiousPlay(rand.New(rand.NewSource(1234)), payoffs, 20000, 0)
	if err != nil {
		t.Fatal(err)
	}

	for i := range p0 {
		if math.Abs(float64(p0[i])-1.0/3) > 0.1 || math.Abs(float64(p1[i])-1.0/3) > 0.1 {
			t.Errorf("policies %v, %v are not close to uniform", p0, p1)
		}
	}
}

func TestFictitiousPlay_DominantStrategy(t *testing.T) {
	// Row 1 beats row 0 against every column.
	payoffs := [][]float64{
		{-1, -2},
		{2, 1},
	}

	p0, p1, err := FictitiousPlay(rand.New(rand.NewSource(1)), payoffs, 1000, 0)
	if err != nil {
		t.Fatal(err)
	}
	if p0[1] < 0.99 {
		t.Errorf("player 0 policy %v should play row 1", p0)
	}
	// Column 1 minimizes player 0's utility against row 1.
	if p1[1] < 0.99 {
		t.Errorf("player 1 policy %v should play column 1", p1)
	}
}

func TestFictitiousPlay_Invalid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, _, err := FictitiousPlay(rng, nil, 10, 0); err == nil {
		t.Error("expected error for empty matrix")
	}
	if _, _, err := FictitiousPlay(rng, [][]float64{{0, 1}, {1}}, 10, 0); err == nil {
		t.Error("expected error for ragged matrix")
	}
	if _, _, err := FictitiousPlay(rng, [][]float64{{0}}, 0, 0); err == nil {
		t.Error("expected error for zero iterations")
	}
}
