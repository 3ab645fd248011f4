// Package event generates bubble-chamber interactions.
//
// Each generator call builds one [Event]: an ordered list of [Track] values
// describing a collision or decay, with exact two-body momentum
// conservation at every vertex. Six scenarios are registered:
//
//   - proton-proton: elastic-looking scatter with pion production (default)
//   - neutron: n → p + e⁻ + ν̄e
//   - muon: μ± → e± + ν + ν̄
//   - pion: charge sampled uniformly among π⁻, π⁺, π⁰
//   - pion-neutral: π⁰ → γ + e⁺ + e⁻
//   - pair-production: γ → e⁺ + e⁻
//
// Decay chains nest: a charged pion carries a [PionDecay] whose muon
// carries a [MuonDecay]. Nested products are rebuilt from their stored
// parameters at render time and never appear in the top-level track list.
//
// Events are immutable once generated; the next generation replaces the
// whole value. Randomness comes from an injected *rand.Rand so tests can
// replay any scenario deterministically:
//
//	ev, err := event.NewRegistry().Generate("neutron", rand.New(rand.NewSource(1)))
package event
