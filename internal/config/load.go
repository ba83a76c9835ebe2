package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/radio-control/fhsscore/internal/antijam"
	"gopkg.in/yaml.v2"
)

// Config is the fully-resolved configuration for a coordination core
// instance: the timing/anti-jam baseline plus the band-plan table it
// operates against.
type Config struct {
	Baseline *Baseline
	BandPlan *BandPlan
}

// Load merges LoadBaseline() defaults, FHSSCORE_* environment overrides,
// and an optional fhsscore-band-plan.yaml file, then validates the result.
func Load() (*Config, error) {
	baseline := LoadBaseline()

	if err := applyEnvOverrides(baseline); err != nil {
		return nil, fmt.Errorf("config: applying environment overrides: %w", err)
	}

	var bandPlan *BandPlan
	if _, err := os.Stat("fhsscore-band-plan.yaml"); err == nil {
		bandPlan, err = loadBandPlanFromFile("fhsscore-band-plan.yaml")
		if err != nil {
			return nil, fmt.Errorf("config: loading fhsscore-band-plan.yaml: %w", err)
		}
	}

	cfg := &Config{Baseline: baseline, BandPlan: bandPlan}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies FHSSCORE_* environment variables to baseline.
func applyEnvOverrides(b *Baseline) error {
	if v, ok := envUint32("FHSSCORE_ANTIJAM_WINDOW_SIZE_PACKETS"); ok {
		b.AntiJam.WindowSizePackets = v
	}
	if v, ok := envUint32("FHSSCORE_ANTIJAM_WINDOW_DURATION_MS"); ok {
		b.AntiJam.WindowDurationMs = v
	}
	if v := os.Getenv("FHSSCORE_ANTIJAM_WINDOW_MODE"); v != "" {
		switch v {
		case "BY_COUNT":
			b.AntiJam.WindowMode = antijam.WindowByCount
		case "BY_TIME":
			b.AntiJam.WindowMode = antijam.WindowByTime
		default:
			return fmt.Errorf("unrecognized FHSSCORE_ANTIJAM_WINDOW_MODE %q", v)
		}
	}
	if v, ok := envUint32("FHSSCORE_ANTIJAM_JAM_THRESHOLD_PERCENT"); ok {
		b.AntiJam.JamThresholdPercent = v
	}
	if v, ok := envUint32("FHSSCORE_ANTIJAM_MIN_BAD_PACKETS"); ok {
		b.AntiJam.MinBadPackets = v
	}
	if v, ok := envUint32("FHSSCORE_ANTIJAM_CONSECUTIVE_WINDOWS_TO_JAM"); ok {
		b.AntiJam.ConsecutiveWindowsToJam = v
	}
	if v, ok := envUint32("FHSSCORE_ANTIJAM_JAM_STATE_HOLD_TIME_MS"); ok {
		b.AntiJam.JamStateHoldTimeMs = v
	}
	if v, ok := envUint32("FHSSCORE_ANTIJAM_MIN_TIME_BETWEEN_RECO_MS"); ok {
		b.AntiJam.MinTimeBetweenRecoMs = v
	}
	if v := os.Getenv("FHSSCORE_ANTIJAM_ALLOW_GROUP_SWITCH_SUGGESTIONS"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			b.AntiJam.AllowGroupSwitchSuggestions = parsed
		}
	}
	if v, ok := envUint32("FHSSCORE_RC_DEAD_BAND_TICKS"); ok {
		b.RCDeadBandTicks = v
	}
	return nil
}

func envUint32(key string) (uint32, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	parsed, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(parsed), true
}

// loadBandPlanFromFile decodes a YAML band-plan table.
func loadBandPlanFromFile(filename string) (*BandPlan, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	var plan BandPlan
	if err := yaml.NewDecoder(file).Decode(&plan); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filename, err)
	}
	return &plan, nil
}
