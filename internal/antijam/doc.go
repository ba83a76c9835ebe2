// Package antijam implements the sliding-window packet-quality monitor:
// a ring buffer of packet outcomes, windowed jam scoring, a debounced
// NOT_JAMMED/SUSPECT/JAMMED state machine, and a rate-limited hop
// recommendation callback.
//
// Specification references:
//   - SPEC_FULL.md §3: Data model — anti-jam context.
//   - SPEC_FULL.md §4 [MODULE D]: Anti-jam detector.
//   - SPEC_FULL.md §8: Testable properties, scenarios 1-3 and 6.
package antijam
