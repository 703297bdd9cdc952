// Package matrixgame solves two-player zero-sum matrix games.
package matrixgame

import (
	"math"
	"math/rand"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// FictitiousPlay approximates a Nash equilibrium of the zero-sum game
// with the given payoff matrix, where payoffs[i][j] is the utility to
// player 0 when it plays i and player 1 plays j. With probability
// mixingLambda each player explores a uniformly random pure strategy
// instead of best-responding.
//
// Returns the average policies of player 0 and player 1.
func FictitiousPlay(rng *rand.Rand, payoffs [][]float64, nIter int, mixingLambda float64) ([]float32, []float32, error) {
	if len(payoffs) == 0 || len(payoffs[0]) == 0 {
		return nil, nil, errors.New("payoff matrix is empty")
	}
	for i, row := range payoffs {
		if len(row) != len(payoffs[0]) {
			return nil, nil, errors.Errorf("row %d has %d columns, expected %d", i, len(row), len(payoffs[0]))
		}
	}
	if nIter <= 0 {
		return nil, nil, errors.Errorf("number of iterations must be positive, got %d", nIter)
	}

	logEvery := nIter / 10
	if logEvery == 0 {
		logEvery = 1
	}

	p0PlayCounts := make([]int, len(payoffs))
	p1PlayCounts := make([]int, len(payoffs[0]))
	for i := 1; i <= nIter; i++ {
		var p0Selected int
		if rng.Float64() < mixingLambda {
			p0Selected = rng.Intn(len(p0PlayCounts))
		} else {
			p0Selected = getP0BestResponse(rng, payoffs, p1PlayCounts)
		}

		var p1Selected int
		if rng.Float64() < mixingLambda {
			p1Selected = rng.Intn(len(p1PlayCounts))
		} else {
			p1Selected = getP1BestResponse(rng, payoffs, p0PlayCounts)
		}
		p0PlayCounts[p0Selected]++
		p1PlayCounts[p1Selected]++

		if i%logEvery == 0 {
			glog.V(1).Infof("After %d iterations, player 0 weights: %v", i, normalize(p0PlayCounts))
			glog.V(1).Infof("After %d iterations, player 1 weights: %v", i, normalize(p1PlayCounts))
		}
	}

	return normalize(p0PlayCounts), normalize(p1PlayCounts), nil
}

func getP0BestResponse(rng *rand.Rand, payoffs [][]float64, p1PlayCounts []int) int {
	utilities := make([]float64, len(payoffs))
	for j, c := range p1PlayCounts {
		for i := range utilities {
			utilities[i] += float64(c) * payoffs[i][j]
		}
	}

	_, br := argMax(rng, utilities)
	return br
}

func getP1BestResponse(rng *rand.Rand, payoffs [][]float64, p0PlayCounts []int) int {
	utilities := make([]float64, len(payoffs[0]))
	for i, c := range p0PlayCounts {
		for j := range utilities {
			utilities[j] -= float64(c) * payoffs[i][j]
		}
	}

	_, br := argMax(rng, utilities)
	return br
}

func normalize(counts []int) []float32 {
	total := 0
	for _, v := range counts {
		total += v
	}

	result := make([]float32, len(counts))
	if total == 0 {
		return result
	}
	for i, v := range counts {
		result[i] = float32(v) / float32(total)
	}
	return result
}

// argMax breaks ties uniformly at random.
func argMax(rng *rand.Rand, vs []float64) (float64, int) {
	best := -math.MaxFloat64
	bestIdx := 0
	nTied := 0
	for i, v := range vs {
		if v > best {
			best = v
			bestIdx = i
			nTied = 1
		} else if v == best {
			nTied++
			if rng.Intn(nTied) == 0 {
				bestIdx = i
			}
		}
	}

	return best, bestIdx
}
