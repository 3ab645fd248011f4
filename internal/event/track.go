package event

import (
	"github.com/san-kum/chamber/internal/geom"
	"github.com/san-kum/chamber/internal/particle"
)

// Track is a top-level drawable trajectory. Seq is the ground-truth
// generation-order index (1 = primary incoming particle) and is zero for
// particles that are not independently identifiable.
type Track struct {
	ID       particle.ID `json:"particle"`
	Momentum float64     `json:"momentum"`
	Seq      int         `json:"seq,omitempty"`
	Shape    geom.Shape  `json:"shape"`
	DecayAt  *geom.Vec   `json:"decay_at,omitempty"`
	Decay    Decay       `json:"-"`
}

// Decay is a tagged variant describing what a track (or nested product)
// turns into at its decay point. Each nesting level is its own variant
// rather than one flat record of optional fields.
type Decay interface {
	decay()
}

// PionDecay is the π± → μ± + ν vertex. The muon is a nested product that
// carries its own further decay.
type PionDecay struct {
	Muon     MuonProduct
	Neutrino NeutrinoRay
}

// MuonDecay is the μ → e + ν + ν̄ vertex. The two neutrinos share the
// momentum left after the charged lepton takes its cut.
type MuonDecay struct {
	Lepton    LeptonProduct
	NeutrinoA NeutrinoRay
	NeutrinoB NeutrinoRay
}

// NeutronDecay marks n → p + e⁻ + ν̄. The proton and electron are promoted
// to top-level tracks anchored at the decay point; only the antineutrino
// stays nested.
type NeutronDecay struct {
	Neutrino NeutrinoRay
}

// PairConversion marks a neutral parent (π⁰ or γ) whose products are all
// promoted to top-level tracks at the vertex.
type PairConversion struct{}

func (PionDecay) decay()      {}
func (MuonDecay) decay()      {}
func (NeutronDecay) decay()   {}
func (PairConversion) decay() {}

// MuonProduct is a muon produced inside a pion decay. It stores only the
// parameters needed to rebuild its arc at render time.
type MuonProduct struct {
	Seq      int
	Charge   int
	Momentum float64
	Dir      float64
	Radius   float64
	Sweep    float64
	Decay    MuonDecay
}

// Shape rebuilds the muon arc anchored at the parent's decay point.
func (m MuonProduct) Shape(at geom.Vec) geom.Shape {
	return geom.Arc(at, m.Dir, m.Radius, m.Sweep, geom.Handedness(m.Charge))
}

// LeptonProduct is the charged lepton emitted by a muon decay, drawn as a
// shrinking spiral.
type LeptonProduct struct {
	Seq      int
	Charge   int
	Momentum float64
	Dir      float64
	Radius   float64
	Turns    float64
}

// Shape rebuilds the lepton spiral anchored at the parent's decay point.
func (l LeptonProduct) Shape(at geom.Vec) geom.Shape {
	return geom.Spiral(at, l.Dir, l.Radius, l.Turns, geom.Handedness(l.Charge), true)
}

// NeutrinoRay is an invisible neutral product, drawn post-reveal as a ray
// from its vertex to the chamber boundary.
type NeutrinoRay struct {
	ID       particle.ID
	Dir      float64
	Momentum float64
}

// Event is one generated interaction: the ordered track list plus the
// authoritative identifiable-particle and neutrino counts, derived once at
// generation time and immutable afterwards.
type Event struct {
	Scenario  string   `json:"scenario"`
	Tracks    []*Track `json:"tracks"`
	N         int      `json:"n"`
	Neutrinos int      `json:"neutrinos"`
}

// Primary returns the incoming particle's track.
func (e *Event) Primary() *Track {
	for _, tr := range e.Tracks {
		if tr.Seq == 1 {
			return tr
		}
	}
	return nil
}

// TruthSymbols maps every ground-truth index to its particle identity,
// including nested muons and leptons.
func (e *Event) TruthSymbols() map[int]particle.ID {
	out := make(map[int]particle.ID, e.N)
	for _, tr := range e.Tracks {
		if tr.Seq > 0 {
			out[tr.Seq] = tr.ID
		}
		switch d := tr.Decay.(type) {
		case PionDecay:
			out[d.Muon.Seq] = particle.Muon(d.Muon.Charge)
			out[d.Muon.Decay.Lepton.Seq] = particle.ChargedLepton(d.Muon.Decay.Lepton.Charge)
		case MuonDecay:
			out[d.Lepton.Seq] = particle.ChargedLepton(d.Lepton.Charge)
		}
	}
	return out
}
