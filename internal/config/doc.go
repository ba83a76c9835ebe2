// Package config loads the coordination core's tunables: the anti-jam
// detector baseline and the domain band-plan table, merged from compiled
// defaults, environment overrides, and an optional YAML file.
//
// Specification references:
//   - SPEC_FULL.md §4.D: Anti-jam detector configuration table.
//   - SPEC_FULL.md §6: Band table format.
package config
