// Play an iterated prisoner's dilemma tournament between a fixed roster
// of strategies and print the transcript of every epoch.
package main

import (
	"flag"
	"math/rand"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/dilemma"
	"github.com/timpalpant/dilemma/strategy"
)

type RunParams struct {
	Epochs     int
	Seed       int64
	Roster     string
	Transcript bool
	// Iterations of fictitious play over the head-to-head metagame
	// between the roster's kinds; zero skips it.
	MetagameIter int
}

func main() {
	var params RunParams
	flag.IntVar(&params.Epochs, "epochs", 200, "Number of epochs to play")
	flag.Int64Var(&params.Seed, "seed", 1234, "Random seed used by randomized strategies")
	flag.StringVar(&params.Roster, "roster", defaultRoster(),
		"Comma-separated strategy kinds, one agent per entry")
	flag.BoolVar(&params.Transcript, "transcript", true,
		"Print the transcript to stdout (otherwise it is logged at V(1))")
	flag.IntVar(&params.MetagameIter, "metagame_iter", 0,
		"Iterations of fictitious play used to solve the head-to-head metagame (0 to skip)")
	flag.Parse()

	world, err := newWorld(params)
	if err != nil {
		glog.Fatal(err)
	}

	var reporter dilemma.Reporter = dilemma.NewGlogReporter(1)
	if params.Transcript {
		reporter = dilemma.NewTextReporter(os.Stdout)
	}

	if err := world.Run(params.Epochs, reporter); err != nil {
		glog.Fatal(err)
	}

	for i, s := range world.Leaders() {
		glog.Infof("#%d: agent %d (%s) with %d", i+1, s.ID, s.Name, s.Score)
	}

	if params.MetagameIter > 0 {
		if err := solveMetagame(params); err != nil {
			glog.Fatal(err)
		}
	}
	glog.Flush()
}

func solveMetagame(params RunParams) error {
	kinds, err := parseRoster(params.Roster)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(params.Seed))
	weights, err := dilemma.Equilibrium(rng, uniqueKinds(kinds), params.Epochs, params.MetagameIter)
	if err != nil {
		return err
	}

	for i, k := range uniqueKinds(kinds) {
		glog.Infof("Metagame weight of %v: %.3f", k, weights[i])
	}
	return nil
}

func uniqueKinds(kinds []strategy.Kind) []strategy.Kind {
	seen := make(map[strategy.Kind]bool)
	var result []strategy.Kind
	for _, k := range kinds {
		if !seen[k] {
			seen[k] = true
			result = append(result, k)
		}
	}
	return result
}

func newWorld(params RunParams) (*dilemma.World, error) {
	kinds, err := parseRoster(params.Roster)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(params.Seed))
	return dilemma.NewWorldFromRoster(dilemma.RosterFromKinds(kinds), rng)
}

func parseRoster(roster string) ([]strategy.Kind, error) {
	var kinds []strategy.Kind
	for _, name := range strings.Split(roster, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}

		k, err := strategy.ParseKind(name)
		if err != nil {
			return nil, errors.Wrap(err, "invalid -roster")
		}
		kinds = append(kinds, k)
	}

	return kinds, nil
}

func defaultRoster() string {
	names := make([]string, len(strategy.AllKinds))
	for i, k := range strategy.AllKinds {
		names[i] = k.String()
	}
	return strings.Join(names, ",")
}
