// Package aggregate fuses the domain scorers into one wellness bundle.
//
// # Architecture
//
// Scorers register by domain in a Registry and share a single interface:
// Name, Domain, and Score over an immutable Snapshot. The Engine fans a
// run out to every registered scorer concurrently, bounds each one with
// a timeout, and joins the results before fusing.
//
// # Failure isolation
//
// A scorer failing or overrunning its budget never sinks the run: its
// domain is substituted with a neutral degraded placeholder (score 50,
// Unavailable), the failure is recorded in the bundle diagnostics, and
// the wellness weights are renormalized over whatever remains. The run
// as a whole fails only when no domain produced a usable result.
//
// # Determinism
//
// Outside of the run ID and timestamp, a bundle is a pure function of
// its snapshot: scorers run concurrently but results are collected into
// the fixed evaluation order (fitness, sleep, mood) before any ranking
// or tie-break, so repeated runs produce identical output.
package aggregate
