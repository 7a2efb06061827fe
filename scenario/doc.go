// Package scenario describes counting-out runs as data and executes them on
// a circular.Sequence.
//
// A scenario file names the values standing in the circle, where counting
// starts, how far each count goes, and which elimination semantics to use:
//
//	# demo.yaml
//	name: demo
//	values: [aaa, bbb, ccc, ddd, eee]
//	start: 1
//	step: 3
//	mode: run   # or "once"
//
// The same scenario in TOML:
//
//	name = "demo"
//	values = ["aaa", "bbb", "ccc", "ddd", "eee"]
//	start = 1
//	step = 3
//	mode = "once"
//
// Modes
//
//   - ModeRun:  one EliminateRun; each count continues after the last removal.
//   - ModeOnce: EliminateOnce until empty; each count restarts at head.
//
// Unknown fields are rejected in both formats.
package scenario
