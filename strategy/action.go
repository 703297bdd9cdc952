package strategy

// Action is the choice an agent commits to in a single pairing.
type Action uint8

const (
	// Cooperate stays silent.
	Cooperate Action = iota
	// Defect testifies against the opponent.
	Defect
)

var actionStr = [...]string{
	"Cooperate",
	"Defect",
}

// String implements Stringer.
func (a Action) String() string {
	return actionStr[a]
}
