package dilemma

import (
	"math/rand"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/dilemma/matrixgame"
	"github.com/timpalpant/dilemma/strategy"
)

// HeadToHead plays every ordered pair of kinds against each other in
// an isolated two-agent World for the given number of epochs. Entry
// [i][j] is how many points per epoch kind i saves relative to kind j
// when they meet; since lower scores are better, a positive value
// favors i. The matrix is antisymmetric.
func HeadToHead(kinds []strategy.Kind, epochs int, src strategy.Source) ([][]float64, error) {
	if epochs <= 0 {
		return nil, errors.Errorf("number of epochs must be positive, got %d", epochs)
	}

	result := make([][]float64, len(kinds))
	for i := range result {
		result[i] = make([]float64, len(kinds))
	}

	for i := range kinds {
		for j := i + 1; j < len(kinds); j++ {
			w, err := NewWorldFromRoster(RosterFromKinds([]strategy.Kind{kinds[i], kinds[j]}), src)
			if err != nil {
				return nil, err
			}
			if err := w.Run(epochs, nil); err != nil {
				return nil, err
			}

			agents := w.Agents()
			advantage := float64(agents[1].Score()-agents[0].Score()) / float64(epochs)
			result[i][j] = advantage
			result[j][i] = -advantage
			glog.V(1).Infof("%v vs %v: %.3f per epoch", kinds[i], kinds[j], advantage)
		}
	}

	return result, nil
}

// Equilibrium solves the head-to-head metagame between the given kinds
// with fictitious play, returning the weight of each kind in the
// resulting mixture.
func Equilibrium(rng *rand.Rand, kinds []strategy.Kind, epochs, nIter int) ([]float32, error) {
	payoffs, err := HeadToHead(kinds, epochs, rng)
	if err != nil {
		return nil, errors.Wrap(err, "head to head")
	}

	p0, _, err := matrixgame.FictitiousPlay(rng, payoffs, nIter, 0)
	if err != nil {
		return nil, errors.Wrap(err, "fictitious play")
	}

	return p0, nil
}
