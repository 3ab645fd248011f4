package event

import (
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/chamber/internal/geom"
	"github.com/san-kum/chamber/internal/particle"
)

const tol = 1e-9

// startMomentum is the momentum vector a track carries as it leaves its
// origin.
func startMomentum(tr *Track) geom.Vec {
	return geom.FromPolar(tr.Momentum, tr.Shape.StartTangent())
}

func TestNeutronDecayShape(t *testing.T) {
	for i := 0; i < 1000; i++ {
		g := NewGenerator(rand.New(rand.NewSource(int64(i))))
		ev := g.NeutronDecay()

		if len(ev.Tracks) != 3 {
			t.Fatalf("seed %d: expected 3 top-level tracks, got %d", i, len(ev.Tracks))
		}
		for _, tr := range ev.Tracks {
			if tr.Seq == 0 {
				t.Fatalf("seed %d: track %s is not numbered", i, tr.ID.Name)
			}
		}
		if ev.Neutrinos != 1 {
			t.Fatalf("seed %d: expected 1 neutrino, got %d", i, ev.Neutrinos)
		}
		if ev.Tracks[0].ID != particle.Neutron || ev.Tracks[1].ID != particle.Proton || ev.Tracks[2].ID != particle.Electron {
			t.Fatalf("seed %d: unexpected track identities", i)
		}
	}
}

func TestNeutronDecayConservation(t *testing.T) {
	for i := 0; i < 1000; i++ {
		g := NewGenerator(rand.New(rand.NewSource(int64(i))))
		ev := g.NeutronDecay()

		neutron := ev.Tracks[0]
		parent := geom.FromPolar(neutron.Momentum, neutron.Shape.EndTangent())

		sum := startMomentum(ev.Tracks[1]).Add(startMomentum(ev.Tracks[2]))
		nu := neutron.Decay.(NeutronDecay).Neutrino
		sum = sum.Add(geom.FromPolar(nu.Momentum, nu.Dir))

		if sum.Dist(parent) > tol {
			t.Fatalf("seed %d: decay products sum (%f, %f), parent (%f, %f)", i, sum.X, sum.Y, parent.X, parent.Y)
		}
	}
}

func TestMuonDecayChargeAndNeutrinos(t *testing.T) {
	for i := 0; i < 1000; i++ {
		g := NewGenerator(rand.New(rand.NewSource(int64(i))))
		ev := g.MuonDecay()

		if len(ev.Tracks) != 1 {
			t.Fatalf("seed %d: expected 1 top-level track, got %d", i, len(ev.Tracks))
		}
		if ev.Neutrinos != 2 {
			t.Fatalf("seed %d: expected 2 neutrinos, got %d", i, ev.Neutrinos)
		}

		muon := ev.Tracks[0]
		d, ok := muon.Decay.(MuonDecay)
		if !ok {
			t.Fatalf("seed %d: muon carries %T, expected MuonDecay", i, muon.Decay)
		}
		if d.Lepton.Charge != muon.ID.Charge {
			t.Fatalf("seed %d: lepton charge %d, muon charge %d", i, d.Lepton.Charge, muon.ID.Charge)
		}

		// Conservation at the vertex.
		parent := geom.FromPolar(muon.Momentum, muon.Shape.EndTangent())
		sum := geom.FromPolar(d.Lepton.Momentum, d.Lepton.Dir).
			Add(geom.FromPolar(d.NeutrinoA.Momentum, d.NeutrinoA.Dir)).
			Add(geom.FromPolar(d.NeutrinoB.Momentum, d.NeutrinoB.Dir))
		if sum.Dist(parent) > tol {
			t.Fatalf("seed %d: vertex does not conserve momentum", i)
		}
	}
}

func TestPionNeutralShape(t *testing.T) {
	want := []particle.ID{particle.PionZero, particle.Photon, particle.Electron, particle.Positron}

	for i := 0; i < 1000; i++ {
		g := NewGenerator(rand.New(rand.NewSource(int64(i))))
		ev := g.PionNeutral()

		if len(ev.Tracks) != 4 {
			t.Fatalf("seed %d: expected 4 top-level tracks, got %d", i, len(ev.Tracks))
		}
		for j, tr := range ev.Tracks {
			if tr.ID != want[j] {
				t.Fatalf("seed %d: track %d is %s, expected %s", i, j, tr.ID.Name, want[j].Name)
			}
		}
		if ev.Neutrinos != 0 {
			t.Fatalf("seed %d: expected 0 neutrinos, got %d", i, ev.Neutrinos)
		}
	}
}

func TestChargedPionChainConservation(t *testing.T) {
	for i := 0; i < 500; i++ {
		g := NewGenerator(rand.New(rand.NewSource(int64(i))))
		ev := g.pionCharged(+1)

		pion := ev.Tracks[0]
		d := pion.Decay.(PionDecay)

		// Pion vertex: muon + neutrino.
		parent := geom.FromPolar(pion.Momentum, pion.Shape.EndTangent())
		sum := geom.FromPolar(d.Muon.Momentum, d.Muon.Dir).
			Add(geom.FromPolar(d.Neutrino.Momentum, d.Neutrino.Dir))
		if sum.Dist(parent) > tol {
			t.Fatalf("seed %d: pion vertex does not conserve momentum", i)
		}

		// Muon vertex: the decay direction is the reconstructed arc's own
		// end tangent.
		arc := d.Muon.Shape(*pion.DecayAt)
		md := d.Muon.Decay
		mparent := geom.FromPolar(d.Muon.Momentum, arc.EndTangent())
		msum := geom.FromPolar(md.Lepton.Momentum, md.Lepton.Dir).
			Add(geom.FromPolar(md.NeutrinoA.Momentum, md.NeutrinoA.Dir)).
			Add(geom.FromPolar(md.NeutrinoB.Momentum, md.NeutrinoB.Dir))
		if msum.Dist(mparent) > 1e-6 {
			t.Fatalf("seed %d: muon vertex does not conserve momentum", i)
		}

		if ev.Neutrinos != 3 {
			t.Fatalf("seed %d: expected 3 neutrinos in the chain, got %d", i, ev.Neutrinos)
		}
	}
}

func TestProtonProtonConservation(t *testing.T) {
	for i := 0; i < 500; i++ {
		g := NewGenerator(rand.New(rand.NewSource(int64(i))))
		ev := g.ProtonProton()

		incoming := ev.Tracks[0]
		vertex := *incoming.DecayAt
		parent := geom.FromPolar(incoming.Momentum, incoming.Shape.EndTangent())

		// Children of the primary vertex are exactly the tracks that
		// originate on it; conversion products start on the pi0 stub end.
		sum := geom.Vec{}
		for _, tr := range ev.Tracks[1:] {
			if tr.Shape.Origin.Dist(vertex) < tol {
				sum = sum.Add(startMomentum(tr))
			}
		}
		if sum.Dist(parent) > 1e-6 {
			t.Fatalf("seed %d: primary vertex sum (%f, %f), parent (%f, %f)", i, sum.X, sum.Y, parent.X, parent.Y)
		}
	}
}

func TestProtonProtonComposition(t *testing.T) {
	sawConversion := false
	sawBare := false

	for i := 0; i < 500; i++ {
		g := NewGenerator(rand.New(rand.NewSource(int64(i))))
		ev := g.ProtonProton()

		protons, piPlus, piMinus, piZero := 0, 0, 0, 0
		for _, tr := range ev.Tracks {
			switch tr.ID {
			case particle.Proton:
				protons++
			case particle.PionPlus:
				piPlus++
			case particle.PionMinus:
				piMinus++
			case particle.PionZero:
				piZero++
			}
		}
		if protons != 3 {
			t.Fatalf("seed %d: expected 3 protons, got %d", i, protons)
		}
		if piPlus != 1 || piMinus != 1 {
			t.Fatalf("seed %d: expected exactly one charged pion pair, got %d+ %d-", i, piPlus, piMinus)
		}
		// Both charged pions decay, so the chain carries 6 neutrinos.
		if ev.Neutrinos != 6 {
			t.Fatalf("seed %d: expected 6 neutrinos, got %d", i, ev.Neutrinos)
		}
		if piZero == 1 {
			sawConversion = true
		} else {
			sawBare = true
		}
	}

	if !sawConversion || !sawBare {
		t.Error("expected both pi0 and bare outcomes across 500 events")
	}
}

func TestDecayPointOnShape(t *testing.T) {
	reg := NewRegistry()
	for _, name := range reg.List() {
		for i := 0; i < 200; i++ {
			ev, err := reg.Generate(name, rand.New(rand.NewSource(int64(i))))
			if err != nil {
				t.Fatal(err)
			}
			for _, tr := range ev.Tracks {
				if tr.DecayAt == nil {
					continue
				}
				if tr.Shape.EndPoint().Dist(*tr.DecayAt) > tol {
					t.Fatalf("%s seed %d: decay point off the %s locus by %g",
						name, i, tr.Shape.Kind, tr.Shape.EndPoint().Dist(*tr.DecayAt))
				}
			}
		}
	}
}

func TestSeqContiguous(t *testing.T) {
	reg := NewRegistry()
	for _, name := range reg.List() {
		for i := 0; i < 200; i++ {
			ev, _ := reg.Generate(name, rand.New(rand.NewSource(int64(i))))

			truth := ev.TruthSymbols()
			if len(truth) != ev.N {
				t.Fatalf("%s seed %d: %d identities for N=%d", name, i, len(truth), ev.N)
			}
			for seq := 1; seq <= ev.N; seq++ {
				if _, ok := truth[seq]; !ok {
					t.Fatalf("%s seed %d: missing identity for index %d", name, i, seq)
				}
			}
			if ev.Primary() == nil {
				t.Fatalf("%s seed %d: no primary track", name, i)
			}
		}
	}
}

func TestRegistryUnknownScenario(t *testing.T) {
	_, err := NewRegistry().Generate("tau", rand.New(rand.NewSource(1)))
	if err == nil {
		t.Fatal("expected error for unknown scenario")
	}
}

func TestGenerateSameSeedSameEvent(t *testing.T) {
	reg := NewRegistry()
	a, _ := reg.Generate(DefaultScenario, rand.New(rand.NewSource(99)))
	b, _ := reg.Generate(DefaultScenario, rand.New(rand.NewSource(99)))

	if len(a.Tracks) != len(b.Tracks) || a.N != b.N {
		t.Fatal("same seed must reproduce the same event structure")
	}
	for i := range a.Tracks {
		if math.Abs(a.Tracks[i].Momentum-b.Tracks[i].Momentum) > tol {
			t.Fatalf("track %d momentum differs across identical seeds", i)
		}
	}
}

func TestPairProductionOpeningAndConservation(t *testing.T) {
	for i := 0; i < 1000; i++ {
		g := NewGenerator(rand.New(rand.NewSource(int64(i))))
		ev := g.PairProduction()

		if len(ev.Tracks) != 3 {
			t.Fatalf("seed %d: expected 3 top-level tracks, got %d", i, len(ev.Tracks))
		}
		photon, a, b := ev.Tracks[0], ev.Tracks[1], ev.Tracks[2]
		if photon.ID != particle.Photon {
			t.Fatalf("seed %d: expected photon primary, got %s", i, photon.ID.Name)
		}

		// The pair opens symmetrically, so the shares are equal and the
		// sampled opening angle is realized exactly.
		if math.Abs(a.Momentum-b.Momentum) > tol {
			t.Errorf("seed %d: pair shares unequal: %f vs %f", i, a.Momentum, b.Momentum)
		}
		opening := math.Abs(a.Shape.StartTangent() - b.Shape.StartTangent())
		if opening > math.Pi {
			opening = 2*math.Pi - opening
		}
		if deg := opening * 180 / math.Pi; deg < 60-1e-6 || deg > 90+1e-6 {
			t.Errorf("seed %d: opening angle %f degrees out of range", i, deg)
		}

		sum := startMomentum(a).Add(startMomentum(b))
		parent := geom.FromPolar(photon.Momentum, photon.Shape.Angle)
		if sum.Dist(parent) > 1e-6 {
			t.Errorf("seed %d: conversion vertex does not conserve momentum: %v vs %v", i, sum, parent)
		}
	}
}
