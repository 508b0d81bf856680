// Package kuzco provides concurrent immutable-tree application state with
// fine-grained structural sharing and copy-on-write transactions.
//
// Multiple reader goroutines observe coherent snapshots of a deeply nested
// hierarchical value ([Node]) while one or more writer goroutines mutate it
// ([SharedState]), without locking readers and without deep-copying the
// whole tree on every edit. Snapshots ([Detached]) are cheap handles onto
// an immutable payload; transactions materialize only the path from root
// to each edited node.
//
// The package does not provide durability, multi-writer concurrency within
// one state container, structural diffing, change journaling, distributed
// replication, or schema evolution. It has no file format, CLI, or wire
// protocol — the only persisted artifact is whatever the embedding
// application chooses to do with a [Detached] snapshot.
package kuzco
