// Package score grades an identification attempt against the ground truth.
package score

import "github.com/san-kum/chamber/internal/particle"

// NoGuess marks an unanswered neutrino count.
const NoGuess = -1

// Score grades a submission in [0,100]. Truth and answers are keyed by the
// shuffled display index; answers hold the symbols the user picked. Each
// correct particle is worth one share of 100/(N+2); an exact neutrino-count
// guess is worth the remaining two shares, all or nothing.
func Score(truth map[int]particle.ID, answers map[int]string, neutrinoGuess, neutrinoTruth int) float64 {
	n := len(truth)
	if n == 0 {
		return 0
	}
	share := 100.0 / float64(n+2)

	total := 0.0
	for idx, id := range truth {
		if sym, ok := answers[idx]; ok && sym == id.Symbol {
			total += share
		}
	}
	if neutrinoGuess != NoGuess && neutrinoGuess == neutrinoTruth {
		total += 2 * share
	}
	return total
}
