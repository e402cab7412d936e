// Package engineconfig centralizes the engine's tunable knobs: the
// stopping-rule threshold and cap, and the theta grid's range and
// resolution. A Config is built once via New and its functional options,
// then captured into every session at construction time — never read
// live from a process-wide singleton.
//
// Config also loads from YAML via Load/LoadFile, for deployments that pin
// SE_THRESHOLD at the more lenient 0.65 rather than the library default of
// 0.3.
package engineconfig
