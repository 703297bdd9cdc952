package strategy

// onlyBurntOnce blacklists each opponent that ever defects against it.
type onlyBurntOnce struct {
	burnt map[int]bool
}

// NewOnlyBurntOnce returns a strategy that cooperates with an opponent
// until that opponent defects once, and defects against it forever after.
func NewOnlyBurntOnce() Strategy {
	return &onlyBurntOnce{burnt: make(map[int]bool)}
}

func (s *onlyBurntOnce) Act(opponent int) Action {
	if s.burnt[opponent] {
		return Defect
	}

	return Cooperate
}

func (s *onlyBurntOnce) Feedback(opponent int, action Action) {
	if action == Defect {
		s.burnt[opponent] = true
	}
}

func (s *onlyBurntOnce) Describe() string { return "Only Burnt Once" }

// grimTrigger holds a single flag shared across all opponents: one
// defection by anyone turns it against everyone, permanently.
type grimTrigger struct {
	triggered bool
}

// NewGrimTrigger returns a strategy that cooperates until any opponent
// defects against it, then defects against every opponent for the rest
// of the run.
func NewGrimTrigger() Strategy {
	return &grimTrigger{}
}

func (s *grimTrigger) Act(opponent int) Action {
	if s.triggered {
		return Defect
	}

	return Cooperate
}

func (s *grimTrigger) Feedback(opponent int, action Action) {
	if action == Defect {
		s.triggered = true
	}
}

func (s *grimTrigger) Describe() string { return "Grim Trigger" }
