// Package diag holds the coordination core's diagnostic sinks: a
// bounded in-memory event ring for live introspection, and an optional
// rotating file log for anything that needs to survive a restart. Both
// are side-band — nothing in the core reads them back to make a
// decision.
//
// Specification references:
//   - SPEC_FULL.md §4.F: façade wiring. The sinks are fed by cmd/fhsssim;
//     the façade itself logs through an optional *log.Logger instead.
//   - SPEC_FULL.md ambient stack: logging and diagnostics.
package diag
