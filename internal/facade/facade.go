package facade

import (
	"log"

	"github.com/radio-control/fhsscore/internal/antijam"
	"github.com/radio-control/fhsscore/internal/glock"
	"github.com/radio-control/fhsscore/internal/modeswitch"
	"github.com/radio-control/fhsscore/internal/radio"
)

// MetricsSink receives side-band counters from the façade. It is optional;
// a nil sink is a no-op. Implementations must not block (spec §5: no
// suspension points).
type MetricsSink interface {
	HopFired()
	ModeChanged(mode modeswitch.Mode)
	SwitchEnabled(enabled bool)
}

type noopMetrics struct{}

func (noopMetrics) HopFired()                       {}
func (noopMetrics) ModeChanged(mode modeswitch.Mode) {}
func (noopMetrics) SwitchEnabled(enabled bool)       {}

// Facade owns the switch, detector and barrier for the lifetime of the
// coordination core and wires their callbacks together (spec §4.F, §9):
// switch notify drives detector enable/reset, and the detector's hop
// recommendation drives the Glock barrier.
type Facade struct {
	Switch   *modeswitch.Switch
	Detector *antijam.Detector
	Barrier  *glock.Barrier

	radios  *radio.Registry
	metrics MetricsSink
	logger  *log.Logger

	prevEnabled bool
}

// Option configures optional façade collaborators.
type Option func(*Facade)

// WithMetrics installs a MetricsSink.
func WithMetrics(m MetricsSink) Option {
	return func(f *Facade) { f.metrics = m }
}

// WithLogger installs a side-band *log.Logger for façade-level events.
func WithLogger(l *log.Logger) Option {
	return func(f *Facade) { f.logger = l }
}

// WithRadioRegistry installs the driver registry a synced hop pushes
// frequencies through. Without one, a hop still advances the barrier and
// fires metrics/logging, it just has nothing to tune.
func WithRadioRegistry(r *radio.Registry) Option {
	return func(f *Facade) { f.radios = r }
}

// New constructs a Facade over an already-initialized switch, detector and
// barrier, and subscribes to their callbacks.
func New(sw *modeswitch.Switch, det *antijam.Detector, barrier *glock.Barrier, opts ...Option) *Facade {
	f := &Facade{
		Switch:   sw,
		Detector: det,
		Barrier:  barrier,
		metrics:  noopMetrics{},
	}
	for _, opt := range opts {
		opt(f)
	}

	sw.RegisterNotify(f.onSwitchNotify)
	det.SetHopCallback(f.onHopRecommendation)

	return f
}

func (f *Facade) log(format string, args ...interface{}) {
	if f.logger != nil {
		f.logger.Printf(format, args...)
	}
}

// onSwitchNotify reacts to an enabled/mode change on the switch (spec
// §4.F): only the 0→1 enable edge resets the detector, to avoid an
// immediate spurious hop from stale window data. A mode change while
// already enabled, or a 1→0 transition, is logged only — neither touches
// the detector's accumulated window.
func (f *Facade) onSwitchNotify(enabled bool, mode modeswitch.Mode, whenMs uint32) {
	f.metrics.ModeChanged(mode)
	f.metrics.SwitchEnabled(enabled)

	wasEnabled := f.prevEnabled
	f.prevEnabled = enabled

	if enabled {
		if !wasEnabled {
			f.Detector.Reset()
			f.log("facade: enabled at t=%d, detector reset, mode=%s", whenMs, mode)
			return
		}
		f.log("facade: mode changed to %s at t=%d while enabled", mode, whenMs)
		return
	}
	f.log("facade: disabled at t=%d", whenMs)
}

// onHopRecommendation reacts to the detector's rate-limited recommendation
// (spec §4.F): if the switch is enabled, it opens one Glock cycle and asks
// both radios for their synced frequency; otherwise the recommendation is
// ignored.
func (f *Facade) onHopRecommendation(s antijam.HopSuggestion) {
	if !f.Switch.IsEnabled() {
		f.log("facade: hop recommended but switch disabled, ignoring")
		return
	}
	f.fireSyncedHop()
}

func (f *Facade) fireSyncedHop() {
	f.Barrier.BeginCycle()
	f1 := f.Barrier.NextSynced(glock.RadioOne)
	f2 := f.Barrier.NextSynced(glock.RadioTwo)
	f.metrics.HopFired()
	f.log("facade: synced hop fired, radio1=%d radio2=%d", f1, f2)

	if f.radios == nil {
		return
	}
	if err := f.radios.SetFrequency(radio.RadioOne, f1); err != nil {
		f.log("facade: radio1 tune failed: %v", err)
	}
	if err := f.radios.SetFrequency(radio.RadioTwo, f2); err != nil {
		f.log("facade: radio2 tune failed: %v", err)
	}
}

// ForceSyncedHop bypasses the detector's own recommendation but still
// honors the switch's enabled flag (spec §4.F).
func (f *Facade) ForceSyncedHop() {
	if !f.Switch.IsEnabled() {
		f.log("facade: forced hop request ignored, switch disabled")
		return
	}
	f.fireSyncedHop()
}
