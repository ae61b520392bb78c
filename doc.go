// Package eevdf implements an Earliest Eligible Virtual Deadline First
// (EEVDF) run queue: the core data structure of a preemptive, weighted
// thread scheduler.
//
// A Queue tracks a global virtual clock and a set of weighted Nodes (thread
// handles) ordered by virtual deadline in an augmented red-black tree. Add
// enqueues a node with zero lag; Schedule advances the virtual clock by the
// elapsed physical time, accounts the outgoing node, and selects the
// eligible node with the earliest deadline.
//
// The package is single-threaded and non-reentrant: callers must serialize
// all operations on a given Queue themselves (see the package-level
// concurrency notes in the operations' doc comments). No operation blocks,
// allocates on the hot path, or performs I/O.
package eevdf
