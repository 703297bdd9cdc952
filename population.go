package dilemma

import (
	"github.com/pkg/errors"

	"github.com/timpalpant/dilemma/strategy"
)

var (
	// ErrTooFewAgents is returned when a population cannot form a pair.
	ErrTooFewAgents = errors.New("population needs at least 2 agents")
	// ErrDuplicateID is returned when two agents share an identity.
	ErrDuplicateID = errors.New("duplicate agent id")
	// ErrIDOutOfRange is returned when an identity does not fall in
	// [0, population size).
	ErrIDOutOfRange = errors.New("agent id out of range")
)

// Entry describes one member of a population before it is built.
type Entry struct {
	ID   int
	Kind strategy.Kind
}

// DefaultRoster is the population played when nothing else is
// configured: one agent of every strategy variant.
func DefaultRoster() []Entry {
	result := make([]Entry, len(strategy.AllKinds))
	for i, k := range strategy.AllKinds {
		result[i] = Entry{ID: i, Kind: k}
	}
	return result
}

// RosterFromKinds assigns sequential identities to the given kinds.
func RosterFromKinds(kinds []strategy.Kind) []Entry {
	result := make([]Entry, len(kinds))
	for i, k := range kinds {
		result[i] = Entry{ID: i, Kind: k}
	}
	return result
}

// NewPopulation constructs an Agent, with a fresh Strategy, for every
// entry. The source is handed to every randomized strategy.
func NewPopulation(entries []Entry, src strategy.Source) ([]*Agent, error) {
	agents := make([]*Agent, 0, len(entries))
	for i, e := range entries {
		s, err := strategy.New(e.Kind, src)
		if err != nil {
			return nil, errors.Wrapf(err, "entry %d (id %d)", i, e.ID)
		}
		agents = append(agents, NewAgent(e.ID, s))
	}

	if err := validatePopulation(agents); err != nil {
		return nil, err
	}

	return agents, nil
}

// validatePopulation checks that the agents can be paired and that
// their identities are unique and usable as opponent keys.
func validatePopulation(agents []*Agent) error {
	if len(agents) < 2 {
		return errors.Wrapf(ErrTooFewAgents, "have %d", len(agents))
	}

	seen := make(map[int]int, len(agents))
	for i, a := range agents {
		if a == nil || a.strategy == nil {
			return errors.Errorf("agent %d has no strategy", i)
		}
		if a.ID() < 0 || a.ID() >= len(agents) {
			return errors.Wrapf(ErrIDOutOfRange, "agent %d has id %d, population size %d",
				i, a.ID(), len(agents))
		}
		if j, ok := seen[a.ID()]; ok {
			return errors.Wrapf(ErrDuplicateID, "agents %d and %d both have id %d", j, i, a.ID())
		}
		seen[a.ID()] = i
	}

	return nil
}
