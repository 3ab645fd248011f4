package event

import (
	"math"
	"math/rand"

	"github.com/san-kum/chamber/internal/geom"
	"github.com/san-kum/chamber/internal/kinematics"
	"github.com/san-kum/chamber/internal/particle"
)

// Tuning constants mapping momentum to drawable curvature. Incoming
// momenta are sampled in [40,60], so radii land well inside the chamber.
const (
	arcRadiusScale    = 0.012
	arcRadiusMin      = 0.05
	spiralRadiusScale = 0.004
	spiralRadiusMin   = 0.015
	spiralRadiusMax   = 0.12
)

func arcRadius(p float64) float64 {
	return math.Max(p*arcRadiusScale, arcRadiusMin)
}

func spiralRadius(p float64) float64 {
	return geom.Clamp(p*spiralRadiusScale, spiralRadiusMin, spiralRadiusMax)
}

// Generator builds one Event per call. The only state shared between the
// draws of a single event is the monotonically increasing identity counter;
// nothing survives across calls. The random source is injected so property
// tests can run deterministically.
type Generator struct {
	rng       *rand.Rand
	chamber   geom.Rect
	seq       int
	neutrinos int
}

func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng, chamber: geom.Chamber}
}

// next allocates the next ground-truth identity index.
func (g *Generator) next() int {
	g.seq++
	return g.seq
}

func (g *Generator) neutrino(id particle.ID, p kinematics.Momentum) NeutrinoRay {
	g.neutrinos++
	return NeutrinoRay{ID: id, Dir: p.Angle, Momentum: p.Mag}
}

// uniform samples from [lo, hi).
func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// entryPoint places an incoming particle on the chamber's left edge.
func (g *Generator) entryPoint() geom.Vec {
	return geom.Vec{X: g.chamber.Min.X, Y: g.uniform(0.42, 0.58)}
}

// bandPoint samples a vertex in the chamber's central band.
func (g *Generator) bandPoint() geom.Vec {
	return geom.Vec{X: g.uniform(0.35, 0.65), Y: g.uniform(0.4, 0.6)}
}

func (g *Generator) finish(scenario string, tracks []*Track) *Event {
	return &Event{Scenario: scenario, Tracks: tracks, N: g.seq, Neutrinos: g.neutrinos}
}

// ProtonProton builds the default scenario: an incoming proton scatters on
// a chamber proton at the center, producing two protons, one charged pion
// pair and, 80% of the time, a neutral pion that converts on the spot.
func (g *Generator) ProtonProton() *Event {
	entry := g.entryPoint()
	p0 := g.uniform(40, 60)

	inShape := geom.ArcThrough(entry, g.chamber.Center(), arcRadius(p0), geom.Handedness(particle.Proton.Charge))
	// The stored vertex is the shape's own end point, never the aimed-for
	// center, so chained products join the drawn curve exactly.
	vertex := inShape.EndPoint()
	incoming := &Track{ID: particle.Proton, Momentum: p0, Seq: g.next(), Shape: inShape, DecayAt: &vertex}
	parent := kinematics.Momentum{Mag: p0, Angle: inShape.EndTangent()}
	tracks := []*Track{incoming}

	// Outgoing protons take 40-70% of the momentum, scattered symmetrically
	// at 10-15 degrees; magnitudes absorb the cosine so the pair carries
	// exactly its share of the parent vector.
	protonFrac := g.uniform(0.4, 0.7)
	scatter := g.uniform(10, 15) * math.Pi / 180
	share := kinematics.Momentum{Mag: parent.Mag * protonFrac, Angle: parent.Angle}
	outA, outB := kinematics.SymmetricPair(share, 2*scatter)
	tracks = append(tracks,
		g.protonTrack(vertex, outA),
		g.protonTrack(vertex, outB),
	)

	rest := kinematics.Momentum{Mag: parent.Mag - share.Mag, Angle: parent.Angle}

	// Optional neutral pion, carved out of the pion share before the
	// charged pair splits what is left.
	var conversion []*Track
	if g.rng.Float64() < 0.8 {
		var pz kinematics.Momentum
		pz, rest = kinematics.Split(rest, g.uniform(0.2, 0.35), 0.4, g.rng)
		conversion = g.pionZeroBurst(vertex, pz)
	}

	piA, piB := kinematics.Split(rest, g.uniform(0.35, 0.65), 0.35, g.rng)
	tracks = append(tracks, g.chargedPionTrack(vertex, piA, +1))
	tracks = append(tracks, g.chargedPionTrack(vertex, piB, -1))
	tracks = append(tracks, conversion...)

	return g.finish("proton-proton", tracks)
}

// NeutronDecay builds n → p + e⁻ + ν̄e. The neutron is invisible until
// revealed; the antineutrino closes the momentum balance by subtraction.
func (g *Generator) NeutronDecay() *Event {
	entry := g.entryPoint()
	p0 := g.uniform(40, 60)
	dir := g.uniform(-0.1, 0.1)

	targetX := g.uniform(0.35, 0.65)
	length := (targetX - entry.X) / math.Cos(dir)
	shape := geom.Straight(entry, dir, length)
	vertex := shape.EndPoint()

	parent := kinematics.Momentum{Mag: p0, Angle: dir}
	spread := g.uniform(0.15, 0.25)
	pProton := kinematics.Momentum{Mag: p0 * g.uniform(0.5, 0.7), Angle: dir + g.uniform(-spread, spread)}
	pElectron := kinematics.Momentum{Mag: p0 * g.uniform(0.2, 0.3), Angle: dir + g.uniform(-spread, spread)}
	pNu := kinematics.FromVec(parent.Vec().Sub(pProton.Vec()).Sub(pElectron.Vec()))

	neutron := &Track{
		ID: particle.Neutron, Momentum: p0, Seq: g.next(), Shape: shape,
		DecayAt: &vertex,
		Decay:   NeutronDecay{Neutrino: g.neutrino(particle.AntiNeutrino, pNu)},
	}
	return g.finish("neutron", []*Track{
		neutron,
		g.protonTrack(vertex, pProton),
		g.spiralTrack(vertex, particle.Electron, pElectron, true),
	})
}

// MuonDecay builds μ± → e± + ν + ν̄ with the lepton and both neutrinos kept
// as nested products of the single top-level muon track.
func (g *Generator) MuonDecay() *Event {
	charge := g.pickSign()
	entry := g.entryPoint()
	p0 := g.uniform(40, 60)

	shape := geom.ArcThrough(entry, g.bandPoint(), arcRadius(p0), geom.Handedness(charge))
	vertex := shape.EndPoint()

	muon := &Track{
		ID: particle.Muon(charge), Momentum: p0, Seq: g.next(), Shape: shape,
		DecayAt: &vertex,
	}
	muon.Decay = g.muonVertex(kinematics.Momentum{Mag: p0, Angle: shape.EndTangent()}, charge)
	return g.finish("muon", []*Track{muon})
}

// PionDecay picks the pion charge uniformly among π⁻, π⁺ and π⁰ and
// delegates to the matching procedure.
func (g *Generator) PionDecay() *Event {
	switch g.rng.Intn(3) {
	case 0:
		return g.pionCharged(-1)
	case 1:
		return g.pionCharged(+1)
	}
	return g.PionNeutral()
}

// pionCharged builds π± → μ± + ν at the chamber's horizontal midpoint,
// with the muon chaining into a lepton and two neutrinos.
func (g *Generator) pionCharged(charge int) *Event {
	entry := g.entryPoint()
	p0 := g.uniform(40, 60)
	target := geom.Vec{X: 0.5, Y: entry.Y + g.uniform(-0.05, 0.05)}

	shape := geom.ArcThrough(entry, target, arcRadius(p0), geom.Handedness(charge))
	vertex := shape.EndPoint()

	pMu, pNu := kinematics.Split(
		kinematics.Momentum{Mag: p0, Angle: shape.EndTangent()},
		g.uniform(0.4, 0.8), 0.1, g.rng)

	pion := &Track{
		ID: particle.Pion(charge), Momentum: p0, Seq: g.next(), Shape: shape,
		DecayAt: &vertex,
		Decay: PionDecay{
			Muon:     g.muonProduct(pMu, charge),
			Neutrino: g.neutrino(particle.Neutrino, pNu),
		},
	}
	return g.finish("pion", []*Track{pion})
}

// PionNeutral builds π⁰ → γ + e⁺ + e⁻: an invisible pion converting
// immediately into a photon plus a pair with a 60-90 degree opening.
func (g *Generator) PionNeutral() *Event {
	entry := g.entryPoint()
	p0 := g.uniform(40, 60)
	dir := g.uniform(-0.1, 0.1)

	targetX := g.uniform(0.35, 0.65)
	shape := geom.Straight(entry, dir, (targetX-entry.X)/math.Cos(dir))
	vertex := shape.EndPoint()

	pion := &Track{
		ID: particle.PionZero, Momentum: p0, Seq: g.next(), Shape: shape,
		DecayAt: &vertex, Decay: PairConversion{},
	}
	tracks := append([]*Track{pion},
		g.pionZeroProducts(vertex, kinematics.Momentum{Mag: p0, Angle: dir})...)
	return g.finish("pion-neutral", tracks)
}

// PairProduction builds γ → e⁺ + e⁻ at a random interior point. The pair
// opens symmetrically about the photon direction at a sampled 60-90
// degree angle, same construction as the π⁰ conversion.
func (g *Generator) PairProduction() *Event {
	entry := g.entryPoint()
	p0 := g.uniform(40, 60)
	dir := g.uniform(-0.1, 0.1)

	targetX := g.uniform(0.3, 0.7)
	shape := geom.Straight(entry, dir, (targetX-entry.X)/math.Cos(dir))
	vertex := shape.EndPoint()

	opening := g.uniform(60, 90) * math.Pi / 180
	pE, pP := kinematics.SymmetricPair(kinematics.Momentum{Mag: p0, Angle: dir}, opening)
	if g.pickSign() < 0 {
		pE, pP = pP, pE
	}

	photon := &Track{
		ID: particle.Photon, Momentum: p0, Seq: g.next(), Shape: shape,
		DecayAt: &vertex, Decay: PairConversion{},
	}
	return g.finish("pair-production", []*Track{
		photon,
		g.spiralTrack(vertex, particle.Electron, pE, false),
		g.spiralTrack(vertex, particle.Positron, pP, false),
	})
}

// pionZeroBurst emits the π⁰ stub track plus its conversion products,
// used by the proton-proton scenario.
func (g *Generator) pionZeroBurst(vertex geom.Vec, p kinematics.Momentum) []*Track {
	stub := geom.Straight(vertex, p.Angle, 0.02)
	at := stub.EndPoint()
	pion := &Track{
		ID: particle.PionZero, Momentum: p.Mag, Seq: g.next(), Shape: stub,
		DecayAt: &at, Decay: PairConversion{},
	}
	return append([]*Track{pion}, g.pionZeroProducts(at, kinematics.Momentum{Mag: p.Mag, Angle: p.Angle})...)
}

// pionZeroProducts splits a neutral pion's momentum into a photon and an
// e⁺e⁻ pair with a 60-90 degree opening angle.
func (g *Generator) pionZeroProducts(vertex geom.Vec, p kinematics.Momentum) []*Track {
	pGamma, pPair := kinematics.Split(p, g.uniform(0.3, 0.5), 0.5, g.rng)
	opening := g.uniform(60, 90) * math.Pi / 180
	pPos, pEle := kinematics.SymmetricPair(pPair, opening)

	end := geom.RayRectIntersect(vertex, pGamma.Angle, g.chamber)
	gamma := &Track{
		ID: particle.Photon, Momentum: pGamma.Mag, Seq: g.next(),
		Shape: geom.Straight(vertex, pGamma.Angle, end.Dist(vertex)),
	}
	return []*Track{
		gamma,
		g.spiralTrack(vertex, particle.Electron, pEle, false),
		g.spiralTrack(vertex, particle.Positron, pPos, false),
	}
}

// chargedPionTrack emits a π± that decays into a muon chain at its arc end.
func (g *Generator) chargedPionTrack(at geom.Vec, p kinematics.Momentum, charge int) *Track {
	shape := geom.Arc(at, p.Angle, arcRadius(p.Mag), g.uniform(0.18, 0.38), geom.Handedness(charge))
	vertex := shape.EndPoint()

	seq := g.next()
	pMu, pNu := kinematics.Split(
		kinematics.Momentum{Mag: p.Mag, Angle: shape.EndTangent()},
		g.uniform(0.4, 0.8), 0.1, g.rng)

	return &Track{
		ID: particle.Pion(charge), Momentum: p.Mag, Seq: seq, Shape: shape,
		DecayAt: &vertex,
		Decay: PionDecay{
			Muon:     g.muonProduct(pMu, charge),
			Neutrino: g.neutrino(particle.Neutrino, pNu),
		},
	}
}

// muonProduct builds a nested muon arc and its further decay. The decay
// direction is the arc's own end tangent, so the lepton chain stays
// anchored to the drawn curve.
func (g *Generator) muonProduct(p kinematics.Momentum, charge int) MuonProduct {
	m := MuonProduct{
		Seq: g.next(), Charge: charge, Momentum: p.Mag, Dir: p.Angle,
		Radius: arcRadius(p.Mag), Sweep: g.uniform(0.2, 0.45),
	}
	endDir := p.Angle + m.Sweep*2*math.Pi*geom.Handedness(charge)
	m.Decay = g.muonVertex(kinematics.Momentum{Mag: p.Mag, Angle: endDir}, charge)
	return m
}

// muonVertex builds μ → e + ν + ν̄: the lepton takes 40-60% at a 0.3-0.7
// rad offset and the two neutrinos split the exact remainder between them.
func (g *Generator) muonVertex(p kinematics.Momentum, charge int) MuonDecay {
	offset := g.uniform(0.3, 0.7) * float64(g.pickSign())
	pLep, rest := kinematics.SplitAt(p, g.uniform(0.4, 0.6), offset)
	pNuA, pNuB := kinematics.Split(rest, g.uniform(0.4, 0.6), 0.4, g.rng)

	return MuonDecay{
		Lepton: LeptonProduct{
			Seq: g.next(), Charge: charge, Momentum: pLep.Mag, Dir: pLep.Angle,
			Radius: spiralRadius(pLep.Mag), Turns: g.uniform(2, 3.5),
		},
		NeutrinoA: g.neutrino(particle.Neutrino, pNuA),
		NeutrinoB: g.neutrino(particle.AntiNeutrino, pNuB),
	}
}

// protonTrack emits a plain outgoing proton arc with no decay.
func (g *Generator) protonTrack(at geom.Vec, p kinematics.Momentum) *Track {
	shape := geom.Arc(at, p.Angle, arcRadius(p.Mag), g.uniform(0.3, 0.5), geom.Handedness(+1))
	return &Track{ID: particle.Proton, Momentum: p.Mag, Seq: g.next(), Shape: shape}
}

// spiralTrack emits a light charged lepton as a spiral; decay leptons
// shrink toward a center, conversion pairs grow out of the vertex.
func (g *Generator) spiralTrack(at geom.Vec, id particle.ID, p kinematics.Momentum, shrink bool) *Track {
	shape := geom.Spiral(at, p.Angle, spiralRadius(p.Mag), g.uniform(2, 3.5), geom.Handedness(id.Charge), shrink)
	return &Track{ID: id, Momentum: p.Mag, Seq: g.next(), Shape: shape}
}

func (g *Generator) pickSign() int {
	if g.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
