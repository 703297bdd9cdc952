package dilemma

import (
	"fmt"
	"io"

	"github.com/golang/glog"
	"github.com/google/uuid"

	"github.com/timpalpant/dilemma/strategy"
)

// Contestant names one side of a pairing.
type Contestant struct {
	ID   int
	Name string
}

// Pairing records one resolved meeting between two agents.
type Pairing struct {
	A, B             Contestant
	ActionA, ActionB strategy.Action
	DeltaA, DeltaB   int
}

// Standing is an agent's cumulative score after an epoch.
type Standing struct {
	ID    int
	Name  string
	Score int
}

// EpochReport is everything that happened during one epoch.
type EpochReport struct {
	RunID uuid.UUID
	Epoch int
	// Pairings in the order they were played.
	Pairings []Pairing
	// Standings in population order.
	Standings []Standing
}

// TotalDelta is the sum of score deltas handed out during the epoch.
func (r *EpochReport) TotalDelta() int {
	total := 0
	for _, p := range r.Pairings {
		total += p.DeltaA + p.DeltaB
	}
	return total
}

// Reporter consumes the report of each epoch as it completes.
type Reporter interface {
	Report(r *EpochReport)
}

// ReporterFunc adapts an ordinary function to a Reporter.
type ReporterFunc func(r *EpochReport)

func (f ReporterFunc) Report(r *EpochReport) {
	f(r)
}

// TextReporter writes a human-readable transcript of each epoch.
type TextReporter struct {
	w io.Writer
}

func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

func (t *TextReporter) Report(r *EpochReport) {
	for _, line := range transcript(r) {
		fmt.Fprintln(t.w, line)
	}
}

// GlogReporter writes the transcript to the info log at the given
// verbosity.
type GlogReporter struct {
	level glog.Level
}

func NewGlogReporter(level glog.Level) *GlogReporter {
	return &GlogReporter{level: level}
}

func (g *GlogReporter) Report(r *EpochReport) {
	if !glog.V(g.level) {
		return
	}

	for _, line := range transcript(r) {
		glog.Info(line)
	}
}

func transcript(r *EpochReport) []string {
	lines := make([]string, 0, 2+len(r.Pairings)+len(r.Standings))
	lines = append(lines, "", fmt.Sprintf(" Epoch %d (run %v)", r.Epoch, r.RunID))
	for _, p := range r.Pairings {
		lines = append(lines, fmt.Sprintf("%d(%s) %v and %d(%s) %v",
			p.A.ID, p.A.Name, p.ActionA, p.B.ID, p.B.Name, p.ActionB))
	}
	for _, s := range r.Standings {
		lines = append(lines, fmt.Sprintf("Agent %d: using Strategy: %s Scored: %d",
			s.ID, s.Name, s.Score))
	}
	return lines
}
