// Package sim groups the operating-systems concept simulators.
//
// # Reading Guide
//
// Start with these two engines; everything else feeds or presents them:
//   - fcfs/schedule.go: non-preemptive first-come-first-served scheduling
//   - lru/simulate.go: least-recently-used page replacement, one Step per reference
//
// # Architecture
//
// Engines are pure functions over validated input. Sub-packages:
//   - sim/fcfs/: scheduler engine, roster editing, Gantt timeline, summary
//   - sim/lru/: paging engine, reference-string and frame-count parsing, summary
//   - sim/replay/: paced, cancellable playback of a computed result
//   - sim/scenario/: YAML and TOML scenario files
//   - sim/trace/: run records, optionally zstd or gzip compressed
//
// Raw text is parsed and validated at the boundary (cmd/, api/) before an
// engine is called. Engines panic only on programmer errors, never on user input.
package sim
