package dilemma

import (
	"testing"

	"github.com/timpalpant/dilemma/strategy"
)

func TestResolve(t *testing.T) {
	testCases := []struct {
		a, b           strategy.Action
		deltaA, deltaB int
	}{
		{strategy.Cooperate, strategy.Cooperate, 1, 1},
		{strategy.Cooperate, strategy.Defect, 3, 0},
		{strategy.Defect, strategy.Cooperate, 0, 3},
		{strategy.Defect, strategy.Defect, 2, 2},
	}

	for _, tc := range testCases {
		deltaA, deltaB := Resolve(tc.a, tc.b)
		if deltaA != tc.deltaA || deltaB != tc.deltaB {
			t.Errorf("Resolve(%v, %v) = (%d, %d), expected (%d, %d)",
				tc.a, tc.b, deltaA, deltaB, tc.deltaA, tc.deltaB)
		}
	}
}

func TestResolve_Symmetric(t *testing.T) {
	for _, a := range []strategy.Action{strategy.Cooperate, strategy.Defect} {
		for _, b := range []strategy.Action{strategy.Cooperate, strategy.Defect} {
			ab0, ab1 := Resolve(a, b)
			ba0, ba1 := Resolve(b, a)
			if ab0 != ba1 || ab1 != ba0 {
				t.Errorf("Resolve(%v, %v) = (%d, %d) but Resolve(%v, %v) = (%d, %d)",
					a, b, ab0, ab1, b, a, ba0, ba1)
			}
		}
	}
}
