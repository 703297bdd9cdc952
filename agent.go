package dilemma

import (
	"github.com/timpalpant/dilemma/strategy"
)

// Agent is a participant in the World. It owns its Strategy and
// accumulates a score over the course of the run.
type Agent struct {
	id       int
	score    int
	strategy strategy.Strategy
}

// NewAgent returns an Agent with the given identity and a score of zero.
func NewAgent(id int, s strategy.Strategy) *Agent {
	return &Agent{id: id, strategy: s}
}

func (a *Agent) ID() int {
	return a.id
}

func (a *Agent) Score() int {
	return a.score
}

// Name is the display name of the agent's strategy.
func (a *Agent) Name() string {
	return a.strategy.Describe()
}

func (a *Agent) Act(opponent int) strategy.Action {
	return a.strategy.Act(opponent)
}

func (a *Agent) Feedback(opponent int, action strategy.Action) {
	a.strategy.Feedback(opponent, action)
}

func (a *Agent) addScore(delta int) {
	a.score += delta
}
