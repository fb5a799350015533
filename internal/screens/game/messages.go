package game

// timerTickMsg is sent every quiz.TickInterval in a timed round.
type timerTickMsg struct {
	roundID string
}

// advanceMsg is sent once the post-answer feedback delay has elapsed.
// seq is the question number the feedback belongs to.
type advanceMsg struct {
	roundID string
	seq     int
}
