package dilemma

import (
	"sort"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/timpalpant/dilemma/strategy"
)

// World is a fixed population of agents that play every other agent
// once per epoch.
type World struct {
	runID  uuid.UUID
	agents []*Agent
	epoch  int
}

// NewWorld returns a World over the given agents. The agents must have
// unique identities in [0, len(agents)).
func NewWorld(agents []*Agent) (*World, error) {
	if err := validatePopulation(agents); err != nil {
		return nil, errors.Wrap(err, "invalid population")
	}

	return &World{
		runID:  uuid.New(),
		agents: agents,
	}, nil
}

// NewWorldFromRoster builds the population described by entries and
// returns a World over it.
func NewWorldFromRoster(entries []Entry, src strategy.Source) (*World, error) {
	agents, err := NewPopulation(entries, src)
	if err != nil {
		return nil, errors.Wrap(err, "invalid population")
	}

	return NewWorld(agents)
}

// RunID uniquely identifies this World for the lifetime of the process.
func (w *World) RunID() uuid.UUID {
	return w.runID
}

// Agents returns the population in its original order.
func (w *World) Agents() []*Agent {
	return w.agents
}

// EpochsPlayed is the number of completed epochs.
func (w *World) EpochsPlayed() int {
	return w.epoch
}

// pair is one scheduled meeting of agents i and j, i < j, by position.
type pair struct {
	i, j int
}

// pairs enumerates every unordered pair of positions exactly once in
// ascending order of i, then j.
func (w *World) pairs() []pair {
	n := len(w.agents)
	result := make([]pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			result = append(result, pair{i, j})
		}
	}
	return result
}

// Epoch plays one round between every pair of agents and returns what
// happened.
//
// All actions for the epoch are decided before any payoff or feedback
// is applied, so no strategy sees the outcome of an earlier pairing in
// the same epoch.
func (w *World) Epoch() *EpochReport {
	pairs := w.pairs()
	actions := make([][2]strategy.Action, len(pairs))
	for k, p := range pairs {
		a, b := w.agents[p.i], w.agents[p.j]
		actions[k] = [2]strategy.Action{a.Act(b.ID()), b.Act(a.ID())}
	}

	report := &EpochReport{
		RunID:    w.runID,
		Epoch:    w.epoch,
		Pairings: make([]Pairing, len(pairs)),
	}
	for k, p := range pairs {
		report.Pairings[k] = w.resolve(p, actions[k][0], actions[k][1])
	}

	report.Standings = w.standings()
	glog.V(1).Infof("Run %v: finished epoch %d (%d pairings)", w.runID, w.epoch, len(pairs))
	w.epoch++
	return report
}

// resolve applies the payoff for one pairing to both agents and then
// tells each strategy what its opponent did.
func (w *World) resolve(p pair, actionA, actionB strategy.Action) Pairing {
	a, b := w.agents[p.i], w.agents[p.j]
	deltaA, deltaB := Resolve(actionA, actionB)
	a.addScore(deltaA)
	b.addScore(deltaB)
	a.Feedback(b.ID(), actionB)
	b.Feedback(a.ID(), actionA)

	glog.V(2).Infof("Epoch %d: %d(%s) %v [+%d] vs %d(%s) %v [+%d]",
		w.epoch, a.ID(), a.Name(), actionA, deltaA, b.ID(), b.Name(), actionB, deltaB)
	return Pairing{
		A:       Contestant{ID: a.ID(), Name: a.Name()},
		B:       Contestant{ID: b.ID(), Name: b.Name()},
		ActionA: actionA,
		ActionB: actionB,
		DeltaA:  deltaA,
		DeltaB:  deltaB,
	}
}

func (w *World) standings() []Standing {
	result := make([]Standing, len(w.agents))
	for i, a := range w.agents {
		result[i] = Standing{ID: a.ID(), Name: a.Name(), Score: a.Score()}
	}
	return result
}

// Run plays the given number of epochs, handing each report to r if
// it is non-nil.
func (w *World) Run(epochs int, r Reporter) error {
	if epochs <= 0 {
		return errors.Errorf("number of epochs must be positive, got %d", epochs)
	}

	glog.Infof("Run %v: playing %d epochs with %d agents", w.runID, epochs, len(w.agents))
	for i := 0; i < epochs; i++ {
		report := w.Epoch()
		if r != nil {
			r.Report(report)
		}
	}

	return nil
}

// Leaders returns the current standings ordered from the lowest score
// (the shortest sentence) to the highest. Ties keep population order.
func (w *World) Leaders() []Standing {
	result := w.standings()
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Score < result[j].Score
	})
	return result
}
