package config

import (
	"fmt"

	"github.com/radio-control/fhsscore/internal/antijam"
)

// Validate enforces the anti-jam config table's hard bounds (spec §4.D,
// §7): fields marked "≥1 enforced" reject zero rather than being silently
// clamped, since a zero there almost certainly indicates a misconfigured
// deployment rather than an intentional soft default.
func Validate(cfg *Config) error {
	if cfg == nil || cfg.Baseline == nil {
		return fmt.Errorf("config cannot be nil")
	}
	if err := validateAntiJam(&cfg.Baseline.AntiJam); err != nil {
		return fmt.Errorf("antijam validation failed: %w", err)
	}
	if cfg.BandPlan != nil {
		if err := validateBandPlan(cfg.BandPlan); err != nil {
			return fmt.Errorf("band plan validation failed: %w", err)
		}
	}
	return nil
}

func validateAntiJam(a *antijam.Config) error {
	if a.WindowSizePackets == 0 {
		return fmt.Errorf("window_size_packets must be >= 1, got 0")
	}
	if a.WindowMode == antijam.WindowByTime && a.WindowDurationMs == 0 {
		return fmt.Errorf("window_duration_ms must be >= 1 in BY_TIME mode, got 0")
	}
	if a.ConsecutiveWindowsToJam == 0 {
		return fmt.Errorf("consecutive_windows_to_jam must be >= 1, got 0")
	}
	if a.MinTimeBetweenRecoMs == 0 {
		return fmt.Errorf("min_time_between_reco_ms must be >= 1, got 0")
	}
	if a.JamThresholdPercent < 1 || a.JamThresholdPercent > 100 {
		return fmt.Errorf("jam_threshold_percent must be in [1,100], got %d (soft-clamp applies only within the detector, not at config load)", a.JamThresholdPercent)
	}
	return nil
}

func validateBandPlan(p *BandPlan) error {
	for domain, entry := range p.Domains {
		if entry.FreqCount < 2 {
			return fmt.Errorf("domain %q: freq_count must be >= 2, got %d", domain, entry.FreqCount)
		}
		if entry.FreqStop <= entry.FreqStart {
			return fmt.Errorf("domain %q: freq_stop_hz must be > freq_start_hz", domain)
		}
		if uint32(entry.SyncChannel) >= entry.FreqCount {
			return fmt.Errorf("domain %q: sync_channel %d out of range [0,%d)", domain, entry.SyncChannel, entry.FreqCount)
		}
	}
	if p.Primary != "" && !p.HasDomain(p.Primary) {
		return fmt.Errorf("primary domain %q not present in band plan", p.Primary)
	}
	if p.Secondary != "" && !p.HasDomain(p.Secondary) {
		return fmt.Errorf("secondary domain %q not present in band plan", p.Secondary)
	}
	return nil
}
