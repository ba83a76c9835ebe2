// Package glock implements the cross-radio hop barrier: the coordination
// primitive that guarantees both radios of a diversity pair land on the
// same sequence index for a given hop cycle, while only one of them ever
// advances the cursor.
//
// Specification references:
//   - SPEC_FULL.md §3: Data model — Glock state (armed, cursor, epoch).
//   - SPEC_FULL.md §4 [MODULE C]: Glock barrier.
//   - SPEC_FULL.md §5: Concurrency model — read-modify-write on
//     (armed, cursor) must be indivisible relative to call sites.
package glock
