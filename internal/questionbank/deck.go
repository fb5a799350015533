package questionbank

import "math/rand/v2"

// Deck deals questions from a bank without end. Each pass through the bank
// is a fresh shuffle, so a question repeats only after every other question
// has been dealt once.
type Deck struct {
	bank  *Bank
	rng   *rand.Rand
	order []int
	next  int
	cycle int
}

// NewDeck returns a deck over the bank. The first shuffle happens on the
// first Draw.
func (b *Bank) NewDeck(rng *rand.Rand) *Deck {
	return &Deck{
		bank: b,
		rng:  orDefault(rng),
	}
}

// Draw deals the next question. It returns false only for an empty bank.
func (d *Deck) Draw() (Question, bool) {
	n := d.bank.Len()
	if n == 0 {
		return Question{}, false
	}
	if d.order == nil || d.next >= len(d.order) {
		d.reshuffle()
	}
	q := d.bank.questions[d.order[d.next]].clone()
	d.next++
	return q, true
}

// Cycle returns how many shuffles the deck has performed.
func (d *Deck) Cycle() int {
	return d.cycle
}

// reshuffle starts a new pass. The first card of the new pass is never the
// last card of the previous one, so no question is dealt twice in a row.
func (d *Deck) reshuffle() {
	n := d.bank.Len()
	last := -1
	if len(d.order) > 0 {
		last = d.order[len(d.order)-1]
	}

	d.order = d.rng.Perm(n)
	if n > 1 && d.order[0] == last {
		j := 1 + d.rng.IntN(n-1)
		d.order[0], d.order[j] = d.order[j], d.order[0]
	}
	d.next = 0
	d.cycle++
}
