package antijam

import (
	"errors"
	"sync"
)

// JamState is the detector's debounced state machine position.
type JamState int

const (
	NotJammed JamState = iota
	Suspect
	Jammed
)

func (s JamState) String() string {
	switch s {
	case NotJammed:
		return "NOT_JAMMED"
	case Suspect:
		return "SUSPECT"
	case Jammed:
		return "JAMMED"
	default:
		return "UNKNOWN"
	}
}

// ErrCapacityIncrease is returned by Configure when the new configuration
// asks for a larger ring than the detector was originally sized for. The
// original firmware's ring is a flexible-array-member sized once at init;
// growing it on reconfigure would overflow the preallocated buffer, so
// this port rejects the request instead (spec §9 open question).
var ErrCapacityIncrease = errors.New("antijam: configure cannot increase window_size_packets beyond the capacity the detector was created with")

// HopSuggestion is the recommendation passed to a registered HopCallback.
type HopSuggestion struct {
	Recommend          bool
	Confidence         uint32
	Hint               uint32
	SuggestGroupSwitch bool
}

// HopCallback is invoked at most once per recommendation, rate-limited by
// Config.MinTimeBetweenRecoMs.
type HopCallback func(HopSuggestion)

// Report is a point-in-time snapshot of the detector's assessment.
type Report struct {
	State      JamState
	Score      uint32
	Confidence uint32
	Hint       uint32
	When       uint32
	Recommend  bool
}

type packetEntry struct {
	good bool
	ts   uint32
}

// Detector is the sliding-window packet-quality monitor (spec §4.D). The
// ring is preallocated at the initial config's window size; Configure may
// shrink it but never grow it past that original allocation.
type Detector struct {
	mu sync.Mutex

	cfg      Config
	capacity uint32

	ring  []packetEntry
	head  uint32
	count uint32
	bad   uint32

	windowStartMs uint32
	lastNowMs     uint32

	state           JamState
	streak          uint32
	lastJamChangeMs uint32

	extJamRecent bool
	extJamSinceMs uint32

	lastRecoMs uint32
	lastReport Report

	cb HopCallback
}

// NewDetector allocates a detector with cfg hardened and its ring sized to
// cfg.WindowSizePackets (clamped to at least 1). This is the maximum
// capacity Configure may ever select.
func NewDetector(cfg Config) *Detector {
	hardened := cfg.hardened()
	d := &Detector{
		cfg:      hardened,
		capacity: hardened.WindowSizePackets,
		ring:     make([]packetEntry, hardened.WindowSizePackets),
	}
	d.lastReport = Report{State: NotJammed}
	return d
}

// SetHopCallback installs (or clears, with nil) the recommendation callback.
func (d *Detector) SetHopCallback(cb HopCallback) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cb = cb
}

// Configure replaces the active configuration. If window_size_packets
// changes, ring usage (count, head, bad) is reset; the streak is always
// reset and the time window restarts at the last known "now".
func (d *Detector) Configure(cfg Config) error {
	hardened := cfg.hardened()
	d.mu.Lock()
	defer d.mu.Unlock()

	if hardened.WindowSizePackets > uint32(len(d.ring)) {
		return ErrCapacityIncrease
	}

	oldCapacity := d.capacity
	d.cfg = hardened
	d.capacity = hardened.WindowSizePackets
	if d.capacity != oldCapacity {
		d.count = 0
		d.head = 0
		d.bad = 0
	}
	d.windowStartMs = d.lastNowMs
	d.streak = 0
	return nil
}

// Reset clears accumulated packet evidence and returns the state machine
// to NotJammed, without touching configuration.
func (d *Detector) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.resetLocked()
}

func (d *Detector) resetLocked() {
	d.count = 0
	d.head = 0
	d.bad = 0
	d.windowStartMs = d.lastNowMs
	d.state = NotJammed
	d.streak = 0
	d.lastJamChangeMs = d.lastNowMs
	d.extJamRecent = false
	d.extJamSinceMs = 0
	d.lastRecoMs = 0
	d.lastReport = Report{State: NotJammed, When: d.lastNowMs}
}

// pruneOldByTime drops ring entries older than now-window_duration_ms from
// the oldest side, decrementing bad for each evicted bad entry. No-op
// outside WindowByTime mode.
func (d *Detector) pruneOldByTime(nowMs uint32) {
	if d.cfg.WindowMode != WindowByTime {
		return
	}
	dur := d.cfg.WindowDurationMs
	if dur == 0 {
		dur = 1
	}
	var cutoff uint32
	if nowMs > dur {
		cutoff = nowMs - dur
	}

	for d.count > 0 {
		tail := (d.head + d.capacity - d.count) % d.capacity
		e := d.ring[tail]
		if e.ts >= cutoff {
			break
		}
		if !e.good && d.bad > 0 {
			d.bad--
		}
		d.count--
	}
}

func (d *Detector) calcScore() (score uint32, total uint32, bad uint32) {
	total = d.count
	bad = d.bad
	if total == 0 {
		return 0, total, bad
	}
	pct := bad * 100 / total
	if d.extJamRecent {
		pct += 10
		if pct > 100 {
			pct = 100
		}
	}
	return pct, total, bad
}

func (d *Detector) isWindowJammy() bool {
	score, _, bad := d.calcScore()
	if bad < d.cfg.MinBadPackets {
		return false
	}
	return score >= d.cfg.JamThresholdPercent
}

// onWindowBoundary applies the debounced state transition table (spec
// §4.D's boundary-logic table).
func (d *Detector) onWindowBoundary(nowMs uint32) {
	if d.isWindowJammy() {
		if d.streak < 1<<31 {
			d.streak++
		}
		if d.streak >= d.cfg.ConsecutiveWindowsToJam {
			if d.state != Jammed {
				d.state = Jammed
				d.lastJamChangeMs = nowMs
			}
		} else if d.state == NotJammed {
			d.state = Suspect
			d.lastJamChangeMs = nowMs
		}
		return
	}

	d.streak = 0
	switch d.state {
	case Jammed:
		if nowMs-d.lastJamChangeMs >= d.cfg.JamStateHoldTimeMs {
			d.state = Suspect
			d.lastJamChangeMs = nowMs
		}
	case Suspect:
		score, total, _ := d.calcScore()
		if total == 0 || score < d.cfg.JamThresholdPercent/2 {
			d.state = NotJammed
			d.lastJamChangeMs = nowMs
		}
	}
}

func (d *Detector) updateReport(nowMs uint32) {
	score, total, _ := d.calcScore()

	var confidence uint32
	if total > 0 {
		var over uint32
		if score > d.cfg.JamThresholdPercent {
			over = score - d.cfg.JamThresholdPercent
		}
		base := total
		if base > 100 {
			base = 100
		}
		c := base/2 + over
		if c > 100 {
			c = 100
		}
		confidence = c
	}

	hint := score * 255 / 100

	recommend := false
	if nowMs-d.lastRecoMs >= d.cfg.MinTimeBetweenRecoMs {
		if d.state == Jammed {
			recommend = true
		} else if d.state == Suspect {
			bumped := d.cfg.JamThresholdPercent + 10
			if bumped > 100 {
				bumped = 100
			}
			if score >= bumped {
				recommend = true
			}
		}
	}

	d.lastReport = Report{
		State:      d.state,
		Score:      score,
		Confidence: confidence,
		Hint:       hint,
		When:       nowMs,
		Recommend:  recommend,
	}
}

func (d *Detector) maybeFireHopCallback(nowMs uint32) {
	if d.cb == nil || !d.lastReport.Recommend {
		return
	}
	rpt := d.lastReport
	suggestion := HopSuggestion{
		Recommend:  true,
		Confidence: rpt.Confidence,
		Hint:       rpt.Hint,
		SuggestGroupSwitch: d.cfg.AllowGroupSwitchSuggestions &&
			(rpt.Score >= 80 || d.extJamRecent),
	}
	d.lastRecoMs = nowMs
	cb := d.cb
	d.mu.Unlock()
	cb(suggestion)
	d.mu.Lock()
}

// RegisterPacket records one packet outcome at time_ms (spec §4.D).
func (d *Detector) RegisterPacket(good bool, nowMs uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.lastNowMs = nowMs
	d.pruneOldByTime(nowMs)

	if d.count == d.capacity {
		evicted := d.ring[d.head]
		if !evicted.good && d.bad > 0 {
			d.bad--
		}
	} else {
		d.count++
	}

	d.ring[d.head] = packetEntry{good: good, ts: nowMs}
	if !good {
		d.bad++
	}
	d.head = (d.head + 1) % d.capacity

	if d.cfg.WindowMode == WindowByCount && d.count == d.capacity && d.head == 0 {
		d.onWindowBoundary(nowMs)
	}

	d.updateReport(nowMs)
	d.maybeFireHopCallback(nowMs)
}

// RegisterExternalJam records an out-of-band jam signal (e.g. from a
// co-located spectrum sensor) at time_ms.
func (d *Detector) RegisterExternalJam(nowMs uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.lastNowMs = nowMs
	d.extJamRecent = true
	d.extJamSinceMs = nowMs

	d.pruneOldByTime(nowMs)
	d.updateReport(nowMs)
	d.maybeFireHopCallback(nowMs)
}

// Tick ages windows and the external-jam flag; it never fires the
// callback itself. It is safe (and expected) to call this with no new
// packet evidence since the previous call.
func (d *Detector) Tick(nowMs uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.lastNowMs = nowMs

	if d.cfg.WindowMode == WindowByTime {
		d.pruneOldByTime(nowMs)

		dur := d.cfg.WindowDurationMs
		if dur == 0 {
			dur = 1
		}
		if nowMs-d.windowStartMs >= dur {
			elapsed := nowMs - d.windowStartMs
			steps := elapsed / dur
			if steps == 0 {
				steps = 1
			}
			d.windowStartMs += steps * dur
			d.onWindowBoundary(nowMs)
		}
	}

	if d.extJamRecent {
		limit := uint32(1000)
		if d.cfg.WindowMode == WindowByTime {
			if d.cfg.WindowDurationMs != 0 {
				limit = d.cfg.WindowDurationMs
			}
		}
		if nowMs-d.extJamSinceMs >= limit {
			d.extJamRecent = false
		}
	}

	d.updateReport(nowMs)
}

// GetReport returns the most recently computed snapshot.
func (d *Detector) GetReport() Report {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastReport
}

// IsJammed reports whether the state machine currently reads JAMMED.
func (d *Detector) IsJammed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state == Jammed
}

// EvaluateHop computes a suggestion from the current state without
// touching the recommendation-pacing clock (spec's aj_evaluate_hop: a
// read-only peek, distinct from the rate-limited callback path).
func (d *Detector) EvaluateHop() HopSuggestion {
	d.mu.Lock()
	defer d.mu.Unlock()

	rpt := d.lastReport
	s := HopSuggestion{Confidence: rpt.Confidence, Hint: rpt.Hint}

	if d.state == Jammed {
		s.Recommend = true
	} else if d.state == Suspect {
		bumped := d.cfg.JamThresholdPercent + 10
		if bumped > 100 {
			bumped = 100
		}
		if rpt.Score >= bumped {
			s.Recommend = true
		}
	}

	s.SuggestGroupSwitch = d.cfg.AllowGroupSwitchSuggestions && (rpt.Score >= 80 || d.extJamRecent)
	return s
}
