package config

var Presets = map[string]map[string]*Config{
	"proton-proton": {
		"wide": {
			Scenario: "proton-proton", Theme: "chamber",
			View: ViewConfig{Zoom: 0.8, ZoomStep: 1.2, HoverThrottleMs: 50},
		},
		"close-up": {
			Scenario: "proton-proton", Theme: "chamber",
			View: ViewConfig{Zoom: 2.5, ZoomStep: 1.2, HoverThrottleMs: 50},
		},
	},
	"neutron": {
		"wide": {
			Scenario: "neutron", Theme: "chamber",
			View: ViewConfig{Zoom: 1.0, ZoomStep: 1.2, HoverThrottleMs: 50},
		},
	},
	"muon": {
		"spiral": {
			Scenario: "muon", Theme: "phosphor",
			View: ViewConfig{Zoom: 1.8, ZoomStep: 1.2, HoverThrottleMs: 50},
		},
	},
	"pion": {
		"wide": {
			Scenario: "pion", Theme: "chamber",
			View: ViewConfig{Zoom: 1.0, ZoomStep: 1.2, HoverThrottleMs: 50},
		},
		"vertex": {
			Scenario: "pion", Theme: "chamber",
			View: ViewConfig{Zoom: 3.0, ZoomStep: 1.2, HoverThrottleMs: 50},
		},
	},
	"pair-production": {
		"cone": {
			Scenario: "pair-production", Theme: "film",
			View: ViewConfig{Zoom: 1.5, ZoomStep: 1.2, HoverThrottleMs: 50},
		},
	},
}

func GetPreset(scenario, name string) *Config {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	return scenarioPresets[name]
}

func ListPresets(scenario string) []string {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenarioPresets))
	for name := range scenarioPresets {
		names = append(names, name)
	}
	return names
}
