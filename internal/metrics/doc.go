// Package metrics collects Prometheus counters and gauges for the
// coordination core on a private registry. Nothing in this package
// exposes an HTTP endpoint; a caller that wants /metrics wires
// promhttp.HandlerFor(Collector.Gatherer(), ...) into its own server.
//
// Specification references:
//   - SPEC_FULL.md §4.F: façade-level counters, side-band only.
package metrics
