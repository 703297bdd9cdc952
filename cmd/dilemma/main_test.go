package main

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timpalpant/dilemma/strategy"
)

func TestParseRoster(t *testing.T) {
	kinds, err := parseRoster("TitForTat, alwaysdefect,,Pavlov")
	require.NoError(t, err)
	assert.Equal(t, []strategy.Kind{strategy.TitForTat, strategy.AlwaysDefect, strategy.Pavlov}, kinds)

	_, err = parseRoster("TitForTat,Saint")
	assert.Equal(t, strategy.ErrUnknownKind, errors.Cause(err))
}

func TestDefaultRoster(t *testing.T) {
	kinds, err := parseRoster(defaultRoster())
	require.NoError(t, err)
	assert.Equal(t, strategy.AllKinds, kinds)
}

func TestNewWorld(t *testing.T) {
	w, err := newWorld(RunParams{Epochs: 3, Seed: 1, Roster: defaultRoster()})
	require.NoError(t, err)
	assert.Len(t, w.Agents(), strategy.NumKinds)

	_, err = newWorld(RunParams{Epochs: 3, Seed: 1, Roster: "Pavlov"})
	assert.Error(t, err)
}

func TestUniqueKinds(t *testing.T) {
	kinds := []strategy.Kind{strategy.Pavlov, strategy.Random, strategy.Pavlov, strategy.TitForTat}
	assert.Equal(t, []strategy.Kind{strategy.Pavlov, strategy.Random, strategy.TitForTat}, uniqueKinds(kinds))
}

func TestSolveMetagame(t *testing.T) {
	params := RunParams{Epochs: 5, Seed: 1, Roster: "AlwaysDefect,AlwaysCooperate", MetagameIter: 100}
	assert.NoError(t, solveMetagame(params))

	params.Roster = "Nobody"
	assert.Error(t, solveMetagame(params))
}
