package score

import (
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/chamber/internal/event"
	"github.com/san-kum/chamber/internal/numbering"
	"github.com/san-kum/chamber/internal/particle"
)

func truthFor(t *testing.T, scenario string, seed int64) (map[int]particle.ID, int) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	ev, err := event.NewRegistry().Generate(scenario, rng)
	if err != nil {
		t.Fatal(err)
	}
	m := numbering.New(ev, rng)
	return m.DisplayedSymbols(ev), ev.Neutrinos
}

func TestAllCorrectIsFullScore(t *testing.T) {
	truth, neutrinos := truthFor(t, "proton-proton", 3)

	answers := make(map[int]string, len(truth))
	for idx, id := range truth {
		answers[idx] = id.Symbol
	}

	got := Score(truth, answers, neutrinos, neutrinos)
	if math.Abs(got-100.0) > 1e-9 {
		t.Errorf("expected 100.0, got %f", got)
	}
}

func TestEmptySubmissionIsZero(t *testing.T) {
	truth, neutrinos := truthFor(t, "muon", 5)

	if got := Score(truth, map[int]string{}, NoGuess, neutrinos); got != 0 {
		t.Errorf("expected 0, got %f", got)
	}
	if got := Score(map[int]particle.ID{}, map[int]string{}, NoGuess, 0); got != 0 {
		t.Errorf("expected 0 for empty truth, got %f", got)
	}
}

func TestPartialCredit(t *testing.T) {
	truth, neutrinos := truthFor(t, "neutron", 7)
	n := len(truth)

	// Answer exactly k correctly, miss the neutrino count.
	for k := 0; k <= n; k++ {
		answers := make(map[int]string)
		i := 0
		for idx, id := range truth {
			if i >= k {
				break
			}
			answers[idx] = id.Symbol
			i++
		}

		want := float64(k) * 100.0 / float64(n+2)
		got := Score(truth, answers, neutrinos+1, neutrinos)
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("k=%d: expected %f, got %f", k, want, got)
		}
	}
}

func TestNeutrinoCountAllOrNothing(t *testing.T) {
	truth, neutrinos := truthFor(t, "pion", 11)
	n := len(truth)
	bonus := 200.0 / float64(n+2)

	// Near misses earn nothing.
	for _, guess := range []int{neutrinos - 1, neutrinos + 1, NoGuess} {
		if got := Score(truth, nil, guess, neutrinos); got != 0 {
			t.Errorf("guess %d: expected 0, got %f", guess, got)
		}
	}

	got := Score(truth, nil, neutrinos, neutrinos)
	if math.Abs(got-bonus) > 1e-9 {
		t.Errorf("exact guess: expected %f, got %f", bonus, got)
	}
}

func TestWrongSymbolEarnsNothing(t *testing.T) {
	truth, neutrinos := truthFor(t, "pair-production", 13)

	answers := make(map[int]string, len(truth))
	for idx := range truth {
		answers[idx] = "χ"
	}
	if got := Score(truth, answers, neutrinos+2, neutrinos); got != 0 {
		t.Errorf("expected 0 for all-wrong answers, got %f", got)
	}
}
