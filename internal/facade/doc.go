// Package facade wires the mode switch's change notifications to the
// anti-jam detector's enable/reset lifecycle, and the detector's hop
// recommendations to the Glock barrier's synchronized-hop sequence. It is
// the single well-known entry point an IRQ handler needs (spec §9:
// "only the IRQ entry points need a well-known handle, which can be a
// single façade pointer").
//
// Specification references:
//   - SPEC_FULL.md §4 [MODULE F]: Integration façade.
//   - SPEC_FULL.md §9: Callback indirection is an internal pub-sub, not
//     dynamic dispatch across module boundaries.
package facade
