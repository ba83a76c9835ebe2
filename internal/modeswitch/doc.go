// Package modeswitch implements the enable/mode policy layer that
// arbitrates local (receiver-side) and authenticated-controller changes
// to whether anti-jam recommendations are honored and which aggressiveness
// mode governs them.
//
// Specification references:
//   - SPEC_FULL.md §3: Data model — switch context.
//   - SPEC_FULL.md §4 [MODULE E]: Mode switch.
//   - SPEC_FULL.md §6: Controller command wire format, RC channel convention.
//   - SPEC_FULL.md §8: Testable properties, scenario 5.
package modeswitch
