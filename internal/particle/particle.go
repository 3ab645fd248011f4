// Package particle defines the identities of the particles the chamber can
// produce: name, display symbol, classification and electric charge.
package particle

// Class groups particles by family.
type Class int

const (
	Baryon Class = iota
	Meson
	Lepton
	Boson
)

func (c Class) String() string {
	switch c {
	case Baryon:
		return "baryon"
	case Meson:
		return "meson"
	case Lepton:
		return "lepton"
	case Boson:
		return "boson"
	}
	return "unknown"
}

// ID identifies a particle species. Charge is in units of e.
type ID struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Class  Class  `json:"-"`
	Charge int    `json:"charge"`
}

var (
	Proton       = ID{"proton", "p", Baryon, +1}
	Neutron      = ID{"neutron", "n", Baryon, 0}
	Electron     = ID{"electron", "e⁻", Lepton, -1}
	Positron     = ID{"positron", "e⁺", Lepton, +1}
	MuonMinus    = ID{"muon", "μ⁻", Lepton, -1}
	MuonPlus     = ID{"antimuon", "μ⁺", Lepton, +1}
	PionPlus     = ID{"pion+", "π⁺", Meson, +1}
	PionMinus    = ID{"pion-", "π⁻", Meson, -1}
	PionZero     = ID{"pion0", "π⁰", Meson, 0}
	Photon       = ID{"photon", "γ", Boson, 0}
	Neutrino     = ID{"neutrino", "ν", Lepton, 0}
	AntiNeutrino = ID{"antineutrino", "ν̄", Lepton, 0}
)

// Muon returns the muon species carrying the given charge sign.
func Muon(charge int) ID {
	if charge > 0 {
		return MuonPlus
	}
	return MuonMinus
}

// ChargedLepton returns the electron-family lepton with the given charge
// sign; decay chains hand the parent's sign down unchanged.
func ChargedLepton(charge int) ID {
	if charge > 0 {
		return Positron
	}
	return Electron
}

// Pion returns the pion species carrying the given charge.
func Pion(charge int) ID {
	switch {
	case charge > 0:
		return PionPlus
	case charge < 0:
		return PionMinus
	}
	return PionZero
}

// Choices lists the symbols offered in the identification form.
func Choices() []ID {
	return []ID{
		Proton, Neutron, Electron, Positron,
		MuonMinus, MuonPlus, PionPlus, PionMinus, PionZero, Photon,
	}
}
