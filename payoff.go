package dilemma

import (
	"github.com/timpalpant/dilemma/strategy"
)

// Payoffs is the score delta awarded to each side of a pairing, indexed
// by [action of A][action of B] and holding {delta A, delta B}.
//
// Scores count years of sentence: mutual silence costs each side one,
// mutual testimony two, and the one who stays silent while the other
// testifies takes three while the testifier walks free.
var Payoffs = [2][2][2]int{
	strategy.Cooperate: {
		strategy.Cooperate: {1, 1},
		strategy.Defect:    {3, 0},
	},
	strategy.Defect: {
		strategy.Cooperate: {0, 3},
		strategy.Defect:    {2, 2},
	},
}

// Resolve returns the score deltas for A and B given the actions they
// committed to.
func Resolve(a, b strategy.Action) (int, int) {
	p := Payoffs[a][b]
	return p[0], p[1]
}
