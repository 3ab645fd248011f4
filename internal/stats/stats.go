// Package stats generates a batch of events for one scenario and
// summarizes its distributions, mirroring the testable bulk properties of
// the generator in a form the CLI can print.
package stats

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/chamber/internal/event"
)

// Batch holds aggregate results over a run of generated events.
type Batch struct {
	Scenario     string
	Events       int
	TrackCounts  map[int]int // top-level tracks per event -> occurrences
	NeutrinoHist map[int]int
	MeanN        float64
	MeanMomentum float64 // primary particle momentum
}

// Run generates n events and aggregates their shapes.
func Run(scenario string, n int, rng *rand.Rand) (*Batch, error) {
	reg := event.NewRegistry()
	b := &Batch{
		Scenario:     scenario,
		Events:       n,
		TrackCounts:  make(map[int]int),
		NeutrinoHist: make(map[int]int),
	}

	sumN, sumP := 0.0, 0.0
	for i := 0; i < n; i++ {
		ev, err := reg.Generate(scenario, rng)
		if err != nil {
			return nil, err
		}
		b.TrackCounts[len(ev.Tracks)]++
		b.NeutrinoHist[ev.Neutrinos]++
		sumN += float64(ev.N)
		sumP += ev.Primary().Momentum
	}
	if n > 0 {
		b.MeanN = sumN / float64(n)
		b.MeanMomentum = sumP / float64(n)
	}
	return b, nil
}

// MomentumSeries samples the primary momentum across a fresh batch, for
// plotting.
func MomentumSeries(scenario string, n int, rng *rand.Rand) ([]float64, error) {
	reg := event.NewRegistry()
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		ev, err := reg.Generate(scenario, rng)
		if err != nil {
			return nil, err
		}
		out = append(out, ev.Primary().Momentum)
	}
	return out, nil
}

// Plot renders the momentum series as an ASCII graph.
func Plot(series []float64, caption string) string {
	return asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
}

// Summary formats the batch for terminal output.
func (b *Batch) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "scenario: %s\n", b.Scenario)
	fmt.Fprintf(&sb, "events: %d\n", b.Events)
	fmt.Fprintf(&sb, "mean identifiable particles: %.2f\n", b.MeanN)
	fmt.Fprintf(&sb, "mean primary momentum: %.2f\n", b.MeanMomentum)

	fmt.Fprintf(&sb, "top-level track counts:\n")
	for _, count := range sortedKeys(b.TrackCounts) {
		fmt.Fprintf(&sb, "  %d tracks: %d events\n", count, b.TrackCounts[count])
	}
	fmt.Fprintf(&sb, "neutrino counts:\n")
	for _, count := range sortedKeys(b.NeutrinoHist) {
		fmt.Fprintf(&sb, "  %d neutrinos: %d events\n", count, b.NeutrinoHist[count])
	}
	return sb.String()
}

func sortedKeys(hist map[int]int) []int {
	keys := make([]int, 0, len(hist))
	for k := range hist {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
