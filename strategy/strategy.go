// Package strategy implements the decision rules that agents use when
// playing the iterated prisoner's dilemma.
//
// Each Strategy is owned by exactly one agent. Any memory it keeps is
// keyed by the identity of the opponent it was playing, so the same
// instance can behave differently toward different opponents.
package strategy

import (
	"strings"

	"github.com/pkg/errors"
)

// Strategy decides what an agent does against a given opponent and
// learns from what that opponent did.
type Strategy interface {
	// Act returns the action to commit to against the given opponent.
	// It must not depend on the opponent's action in the current round.
	Act(opponent int) Action
	// Feedback reports the action the opponent took in the round
	// that was just resolved.
	Feedback(opponent int, action Action)
	// Describe returns a stable, human-readable name.
	Describe() string
}

// Source is the randomness used by randomized strategies.
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Kind identifies one of the strategy variants.
type Kind uint8

const (
	TitForTat Kind = iota
	AlwaysDefect
	AlwaysCooperate
	OnlyBurntOnce
	GrimTrigger
	Random
	TitForTwoTats
	TwoTitsForTat
	Pavlov
)

var kindStr = [...]string{
	"TitForTat",
	"AlwaysDefect",
	"AlwaysCooperate",
	"OnlyBurntOnce",
	"GrimTrigger",
	"Random",
	"TitForTwoTats",
	"TwoTitsForTat",
	"Pavlov",
}

// The number of distinct strategy variants.
const NumKinds = len(kindStr)

// AllKinds lists every variant in declaration order.
var AllKinds = []Kind{
	TitForTat,
	AlwaysDefect,
	AlwaysCooperate,
	OnlyBurntOnce,
	GrimTrigger,
	Random,
	TitForTwoTats,
	TwoTitsForTat,
	Pavlov,
}

// ErrUnknownKind is returned when a strategy kind cannot be resolved.
var ErrUnknownKind = errors.New("unknown strategy kind")

// ErrNilSource is returned when a randomized strategy is built
// without a source of randomness.
var ErrNilSource = errors.New("randomized strategy requires a source")

// String implements Stringer.
func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return "Invalid"
	}

	return kindStr[k]
}

// ParseKind returns the Kind with the given name, ignoring case.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindStr {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return Kind(i), nil
		}
	}

	return 0, errors.Wrapf(ErrUnknownKind, "%q", s)
}

// New returns a fresh Strategy of the given kind. The source is only
// used by Random and may be nil for every other kind.
func New(k Kind, src Source) (Strategy, error) {
	switch k {
	case TitForTat:
		return NewTitForTat(), nil
	case AlwaysDefect:
		return NewAlwaysDefect(), nil
	case AlwaysCooperate:
		return NewAlwaysCooperate(), nil
	case OnlyBurntOnce:
		return NewOnlyBurntOnce(), nil
	case GrimTrigger:
		return NewGrimTrigger(), nil
	case Random:
		if src == nil {
			return nil, ErrNilSource
		}
		return NewRandom(src), nil
	case TitForTwoTats:
		return NewTitForTwoTats(), nil
	case TwoTitsForTat:
		return NewTwoTitsForTat(), nil
	case Pavlov:
		return NewPavlov(), nil
	}

	return nil, errors.Wrapf(ErrUnknownKind, "kind %d", k)
}
