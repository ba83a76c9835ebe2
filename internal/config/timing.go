package config

import "github.com/radio-control/fhsscore/internal/antijam"

// Baseline collects the default tunables for the coordination core's
// timing-sensitive subsystems, analogous to a CB-TIMING baseline. The
// AntiJam fields and RCDeadBandTicks can be overridden via FHSSCORE_*
// environment variables (see load.go); the YAML file only supplies the
// band plan.
type Baseline struct {
	// SPEC_FULL.md §4.D: Anti-jam detector defaults.
	AntiJam antijam.Config

	// SPEC_FULL.md §4.D: external-jam sticky-flag age-out for BY_COUNT
	// mode (BY_TIME mode ages out after one window_duration_ms instead).
	// Informational: the detector uses its own fixed 1000 ms value and
	// does not read this field.
	ExternalJamAgeOutMs uint32

	// SPEC_FULL.md §9: RC reader dead-band, in CRSF ticks. Informational:
	// rc.Reader uses its own fixed 33-tick dead-band and does not read
	// this field.
	RCDeadBandTicks uint32
}

// LoadBaseline returns the coordination core's documented default
// configuration (spec §4.D's config table). WindowDurationMs and
// MinTimeBetweenRecoMs match the detector's own fallbacks for zero values;
// the other fields are deployment defaults that differ from those
// fallbacks.
func LoadBaseline() *Baseline {
	return &Baseline{
		AntiJam: antijam.Config{
			WindowSizePackets:           100,
			WindowDurationMs:            1000,
			WindowMode:                  antijam.WindowByCount,
			JamThresholdPercent:         30,
			MinBadPackets:               5,
			ConsecutiveWindowsToJam:     3,
			JamStateHoldTimeMs:          2000,
			MinTimeBetweenRecoMs:        500,
			AllowGroupSwitchSuggestions: true,
		},
		ExternalJamAgeOutMs: 1000,
		RCDeadBandTicks:     33,
	}
}
