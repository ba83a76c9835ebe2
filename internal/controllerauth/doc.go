// Package controllerauth verifies that an enable/mode command actually
// came from the authenticated controller before it reaches the mode
// switch. A paired link authenticates with a key shared at pairing
// time, not a multi-tenant key server, so verification here is a
// signature check against a pre-shared secret or a fixed public key,
// never a network round trip.
//
// Specification references:
//   - SPEC_FULL.md §4.E, §6: packed controller command byte and the
//     controller-only permission boundary.
//   - SPEC_FULL.md Non-goals: the coordination core performs no
//     cryptography itself; this package is the trusted boundary that
//     hands the core an already-authenticated command byte.
package controllerauth
