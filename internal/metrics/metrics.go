package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/radio-control/fhsscore/internal/antijam"
	"github.com/radio-control/fhsscore/internal/modeswitch"
)

// Collector bundles the coordination core's Prometheus metrics and
// implements facade.MetricsSink so it can be handed straight to
// facade.WithMetrics.
type Collector struct {
	registry *prometheus.Registry

	hopsTotal        prometheus.Counter
	modeChangesTotal *prometheus.CounterVec
	switchEnabled    prometheus.Gauge
	jamState         prometheus.Gauge
}

// NewCollector builds a Collector on a fresh, private registry.
func NewCollector() (*Collector, error) {
	reg := prometheus.NewRegistry()

	hops, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fhsscore_hops_total",
		Help: "Total number of Glock-synced frequency hops fired.",
	}), "fhsscore_hops_total")
	if err != nil {
		return nil, err
	}

	modeChanges, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fhsscore_mode_changes_total",
		Help: "Total number of mode-switch changes, labeled by resulting mode.",
	}, []string{"mode"}), "fhsscore_mode_changes_total")
	if err != nil {
		return nil, err
	}

	enabled, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "fhsscore_switch_enabled",
		Help: "1 if the mode switch is currently enabled, 0 otherwise.",
	}), "fhsscore_switch_enabled")
	if err != nil {
		return nil, err
	}

	jamState, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "fhsscore_jam_state",
		Help: "Current anti-jam state: 0=NOT_JAMMED, 1=SUSPECT, 2=JAMMED.",
	}), "fhsscore_jam_state")
	if err != nil {
		return nil, err
	}

	return &Collector{
		registry:         reg,
		hopsTotal:        hops,
		modeChangesTotal: modeChanges,
		switchEnabled:    enabled,
		jamState:         jamState,
	}, nil
}

// Gatherer exposes the private registry for a caller that wants to serve
// /metrics itself.
func (c *Collector) Gatherer() prometheus.Gatherer {
	return c.registry
}

// HopFired implements facade.MetricsSink.
func (c *Collector) HopFired() {
	c.hopsTotal.Inc()
}

// ModeChanged implements facade.MetricsSink.
func (c *Collector) ModeChanged(mode modeswitch.Mode) {
	c.modeChangesTotal.WithLabelValues(mode.String()).Inc()
}

// SwitchEnabled implements facade.MetricsSink.
func (c *Collector) SwitchEnabled(enabled bool) {
	if enabled {
		c.switchEnabled.Set(1)
		return
	}
	c.switchEnabled.Set(0)
}

// SetJamState records the anti-jam detector's current state, so a
// scrape reflects the last known value even between recommendations.
func (c *Collector) SetJamState(state antijam.JamState) {
	c.jamState.Set(float64(state))
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
