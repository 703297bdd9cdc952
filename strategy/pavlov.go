package strategy

// pavlov keeps one flag for all opponents: whether the last action
// fed back to it was Cooperate. It does not look at its own action or
// at the payoff, so it is not the textbook win-stay/lose-shift rule.
type pavlov struct {
	lastSuccessful bool
}

// NewPavlov returns a strategy that cooperates as long as the most
// recent feedback it received, from any opponent, was Cooperate.
// It starts out cooperating.
func NewPavlov() Strategy {
	return &pavlov{lastSuccessful: true}
}

func (s *pavlov) Act(opponent int) Action {
	if s.lastSuccessful {
		return Cooperate
	}

	return Defect
}

func (s *pavlov) Feedback(opponent int, action Action) {
	s.lastSuccessful = action == Cooperate
}

func (s *pavlov) Describe() string { return "Pavlov" }
