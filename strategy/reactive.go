package strategy

// titForTat repeats whatever each opponent did to it last.
type titForTat struct {
	lastAction map[int]Action
}

// NewTitForTat returns a strategy that cooperates on first meeting and
// afterwards mirrors the opponent's most recent action.
func NewTitForTat() Strategy {
	return &titForTat{lastAction: make(map[int]Action)}
}

func (s *titForTat) Act(opponent int) Action {
	// The zero value of Action is Cooperate.
	return s.lastAction[opponent]
}

func (s *titForTat) Feedback(opponent int, action Action) {
	s.lastAction[opponent] = action
}

func (s *titForTat) Describe() string { return "TitForTat" }

// twoTitsForTat only remembers a single step of history per opponent,
// so in practice it retaliates exactly like titForTat.
type twoTitsForTat struct {
	lastAction map[int]Action
}

// NewTwoTitsForTat returns a strategy that defects if and only if the
// opponent defected in their previous meeting.
func NewTwoTitsForTat() Strategy {
	return &twoTitsForTat{lastAction: make(map[int]Action)}
}

func (s *twoTitsForTat) Act(opponent int) Action {
	if last, ok := s.lastAction[opponent]; ok && last == Defect {
		return Defect
	}

	return Cooperate
}

func (s *twoTitsForTat) Feedback(opponent int, action Action) {
	s.lastAction[opponent] = action
}

func (s *twoTitsForTat) Describe() string { return "Two Tits For Tat" }

// titForTwoTats forgives the first defection of each opponent.
type titForTwoTats struct {
	defections map[int]int
}

// NewTitForTwoTats returns a strategy that defects against an opponent
// once that opponent has defected against it at least twice in total.
func NewTitForTwoTats() Strategy {
	return &titForTwoTats{defections: make(map[int]int)}
}

func (s *titForTwoTats) Act(opponent int) Action {
	if s.defections[opponent] >= 2 {
		return Defect
	}

	return Cooperate
}

func (s *titForTwoTats) Feedback(opponent int, action Action) {
	if action == Defect {
		s.defections[opponent]++
	}
}

func (s *titForTwoTats) Describe() string { return "Tit For Two Tats" }
