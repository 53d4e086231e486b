// Package graph provides a read-only facade over a frozen workflow.Workflow.
//
// # Why this package exists
//
// internal/workflow already exposes the full read accessor set spec §4.6
// requires. This facade exists so callers outside the core (a backend
// emitter, a demo CLI) depend on a small, stable View interface rather than
// reaching into internal/workflow directly — the same separation the
// teacher's original internal/graph.Manager drew between the executor and
// its two storage backends, with the execution-state half of that contract
// (MarkRunning/MarkCompleted/MarkFailed/MarkSkipped) removed: execution is
// out of scope here (spec §1), so there is no mutable state left to guard.
//
// # Thread-safety
//
// View wraps an already-frozen Workflow (internal/workflow's Build is the
// only mutation entry point), so every View method is safe to call
// concurrently without additional locking.
package graph
