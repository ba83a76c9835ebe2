package antijam

// WindowMode selects how the packet ring's window boundary is detected.
type WindowMode int

const (
	// WindowByCount declares a boundary every time the ring wraps after
	// filling exactly to capacity.
	WindowByCount WindowMode = iota
	// WindowByTime declares a boundary once window_duration_ms has
	// elapsed since the last one, independent of packet count.
	WindowByTime
)

// Config holds the detector's tunables (spec §4.D). All fields are
// homogeneous primitives so the whole struct can be copied by value.
type Config struct {
	WindowSizePackets           uint32
	WindowDurationMs            uint32
	WindowMode                  WindowMode
	JamThresholdPercent         uint32
	MinBadPackets               uint32
	ConsecutiveWindowsToJam     uint32
	JamStateHoldTimeMs          uint32
	MinTimeBetweenRecoMs        uint32
	AllowGroupSwitchSuggestions bool
}

// hardened returns a copy of cfg with soft-bound fields clamped into their
// valid ranges (spec §4.D, §7: "values within soft bounds are silently
// clamped"). A WindowSizePackets of 0 is raised to 1; whether the
// resulting capacity fits the allocated ring is checked by Configure.
func (cfg Config) hardened() Config {
	out := cfg
	if out.WindowMode == WindowByTime && out.WindowDurationMs == 0 {
		out.WindowDurationMs = 1000
	}
	if out.MinTimeBetweenRecoMs == 0 {
		out.MinTimeBetweenRecoMs = 500
	}
	if out.ConsecutiveWindowsToJam == 0 {
		out.ConsecutiveWindowsToJam = 1
	}
	if out.JamThresholdPercent > 100 {
		out.JamThresholdPercent = 100
	}
	if out.JamThresholdPercent < 1 {
		out.JamThresholdPercent = 1
	}
	if out.WindowSizePackets == 0 {
		out.WindowSizePackets = 1
	}
	return out
}
