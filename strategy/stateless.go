package strategy

type alwaysDefect struct{}

// NewAlwaysDefect returns a strategy that always defects.
func NewAlwaysDefect() Strategy { return alwaysDefect{} }

func (alwaysDefect) Act(opponent int) Action { return Defect }
func (alwaysDefect) Feedback(opponent int, action Action) {}
func (alwaysDefect) Describe() string { return "Always Defect" }

type alwaysCooperate struct{}

// NewAlwaysCooperate returns a strategy that always cooperates.
func NewAlwaysCooperate() Strategy { return alwaysCooperate{} }

func (alwaysCooperate) Act(opponent int) Action { return Cooperate }
func (alwaysCooperate) Feedback(opponent int, action Action) {}
func (alwaysCooperate) Describe() string { return "Always Cooperate" }

// random flips a fair coin for every decision.
type random struct {
	src Source
}

// NewRandom returns a strategy that cooperates or defects with equal
// probability, drawing from src on every call to Act.
func NewRandom(src Source) Strategy {
	return &random{src: src}
}

func (s *random) Act(opponent int) Action {
	if s.src.Intn(2) == 0 {
		return Cooperate
	}

	return Defect
}

func (s *random) Feedback(opponent int, action Action) {}

func (s *random) Describe() string { return "Random" }
