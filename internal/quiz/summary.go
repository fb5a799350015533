package quiz

// Summary holds the end-of-round figures shown to the player.
type Summary struct {
	RoundID          string
	Score            int
	Answered         int
	Planned          int // Unlimited for an uncapped cycling round
	Accuracy         float64
	Level            Level
	Timed            bool
	TimeExpired      bool
	SecondsRemaining int
}

// Summary builds a Summary from the session's current state.
func (s *Session) Summary() Summary {
	answered := s.TotalQuestionsAnswered()

	var accuracy float64
	if answered > 0 {
		accuracy = float64(s.score) / float64(answered)
	}

	return Summary{
		RoundID:          s.id,
		Score:            s.score,
		Answered:         answered,
		Planned:          s.Len(),
		Accuracy:         accuracy,
		Level:            s.level,
		Timed:            s.timed,
		TimeExpired:      s.TimeExpired(),
		SecondsRemaining: s.secondsRemaining,
	}
}
