// Package radio holds the two-slot driver registry the façade pushes a
// computed frequency through after a barrier hop. It knows nothing
// about sequences, bands, or jam state; it only routes a frequency
// value to whichever concrete driver is attached to RADIO_1 or
// RADIO_2.
//
// Specification references:
//   - SPEC_FULL.md §4.F: façade-to-radio wiring after a synced hop.
//   - SPEC_FULL.md Non-goals: no SPI/serial transport is implemented
//     here; Driver is the seam a real radio binding plugs into.
package radio
