package event

import (
	"fmt"
	"math/rand"
	"sort"
)

// DefaultScenario is generated when no scenario key is given.
const DefaultScenario = "proton-proton"

// Registry maps scenario keys to generator procedures.
type Registry struct {
	scenarios map[string]func(*Generator) *Event
}

func NewRegistry() *Registry {
	r := &Registry{scenarios: make(map[string]func(*Generator) *Event)}

	r.scenarios["proton-proton"] = (*Generator).ProtonProton
	r.scenarios["neutron"] = (*Generator).NeutronDecay
	r.scenarios["muon"] = (*Generator).MuonDecay
	r.scenarios["pion"] = (*Generator).PionDecay
	r.scenarios["pion-neutral"] = (*Generator).PionNeutral
	r.scenarios["pair-production"] = (*Generator).PairProduction

	return r
}

// Generate builds one self-contained event for the named scenario using
// the supplied random source.
func (r *Registry) Generate(name string, rng *rand.Rand) (*Event, error) {
	fn, ok := r.scenarios[name]
	if !ok {
		return nil, fmt.Errorf("unknown scenario: %s", name)
	}
	return fn(NewGenerator(rng)), nil
}

// List returns the registered scenario keys in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.scenarios))
	for name := range r.scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
