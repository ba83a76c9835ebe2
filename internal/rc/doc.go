// Package rc converts pre-decoded CRSF RC channel values into the packed
// controller command byte the mode switch consumes.
//
// Specification references:
//   - SPEC_FULL.md §6: RC channel convention (consumed).
//   - SPEC_FULL.md §9: Open question — CH4/CH5-to-command mapping, with a
//     ±33-tick dead-band around the AUTO/LOW/HIGH thresholds.
package rc
