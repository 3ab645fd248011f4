// Package numbering derives quiz numbering for a generated event: the
// ground-truth generation order and a shuffled display order, with the
// primary incoming particle pinned to index 1.
package numbering

import (
	"math/rand"

	"github.com/san-kum/chamber/internal/event"
	"github.com/san-kum/chamber/internal/particle"
)

// Map holds both directions of the quiz numbering bijection over 1..N.
// It is computed once per event and never mutated afterwards.
type Map struct {
	N         int
	Neutrinos int
	Display   map[int]int // ground-truth index -> shuffled display index
	Truth     map[int]int // shuffled display index -> ground-truth index
}

// New shuffles indices 2..N; index 1 always displays as 1.
func New(ev *event.Event, rng *rand.Rand) *Map {
	m := &Map{
		N:         ev.N,
		Neutrinos: ev.Neutrinos,
		Display:   make(map[int]int, ev.N),
		Truth:     make(map[int]int, ev.N),
	}
	if ev.N == 0 {
		return m
	}

	rest := make([]int, ev.N-1)
	for i := range rest {
		rest[i] = i + 2
	}
	rng.Shuffle(len(rest), func(i, j int) {
		rest[i], rest[j] = rest[j], rest[i]
	})

	m.Display[1] = 1
	m.Truth[1] = 1
	for i, display := range rest {
		truth := i + 2
		m.Display[truth] = display
		m.Truth[display] = truth
	}
	return m
}

// DisplayedSymbols keys every particle identity by its shuffled display
// index, the view the identification form works against.
func (m *Map) DisplayedSymbols(ev *event.Event) map[int]particle.ID {
	truth := ev.TruthSymbols()
	out := make(map[int]particle.ID, len(truth))
	for seq, id := range truth {
		out[m.Display[seq]] = id
	}
	return out
}
