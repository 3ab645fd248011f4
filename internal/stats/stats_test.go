package stats

import (
	"math/rand"
	"strings"
	"testing"
)

func TestRunNeutronBatch(t *testing.T) {
	b, err := Run("neutron", 200, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}

	// Neutron decay is structurally fixed: 3 tracks and 1 neutrino, always.
	if b.TrackCounts[3] != 200 {
		t.Errorf("expected all 200 events with 3 tracks, got %v", b.TrackCounts)
	}
	if b.NeutrinoHist[1] != 200 {
		t.Errorf("expected all 200 events with 1 neutrino, got %v", b.NeutrinoHist)
	}
	if b.MeanMomentum < 40 || b.MeanMomentum > 60 {
		t.Errorf("mean primary momentum %f outside the sampled range", b.MeanMomentum)
	}
}

func TestRunUnknownScenario(t *testing.T) {
	if _, err := Run("tau", 10, rand.New(rand.NewSource(1))); err == nil {
		t.Error("expected error for unknown scenario")
	}
}

func TestMomentumSeries(t *testing.T) {
	series, err := MomentumSeries("muon", 50, rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatal(err)
	}
	if len(series) != 50 {
		t.Fatalf("expected 50 samples, got %d", len(series))
	}
	if Plot(series, "primary momentum") == "" {
		t.Error("expected a non-empty plot")
	}
}

func TestSummaryOrderIsStable(t *testing.T) {
	b := &Batch{
		Scenario:     "pion",
		Events:       3,
		TrackCounts:  map[int]int{4: 2, 1: 1, 2: 0},
		NeutrinoHist: map[int]int{3: 2, 0: 1},
	}

	first := b.Summary()
	for i := 0; i < 20; i++ {
		if got := b.Summary(); got != first {
			t.Fatalf("summary output changed between calls:\n%s\nvs\n%s", first, got)
		}
	}
	if !strings.Contains(first, "1 tracks: 1 events\n  2 tracks: 0 events\n  4 tracks: 2 events") {
		t.Errorf("track counts not in ascending order:\n%s", first)
	}
}
