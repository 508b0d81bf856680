package kuzco

import (
	"sync"
	"sync/atomic"
)

// SharedState is the concurrent state container: readers call Snapshot, a
// single atomic pointer load, with no locking whatsoever; writers serialize
// through a mutex via BeginTransaction. The shape — mutex guarding the
// writer, atomic pointer guarding the reader — follows the same
// Acquire/Swap discipline as an Atom-style checkpoint container, adapted
// here to publish a Detached root instead of a derived checkpoint value.
type SharedState[T any] struct {
	published atomic.Pointer[Detached[T]]

	writerMu sync.Mutex
	root     Node[T] // writer-private between BeginTransaction and Commit/Abort
}

// NewSharedState constructs a SharedState rooted at obj. obj is detached
// once to seed the published snapshot.
func NewSharedState[T any](obj Node[T]) *SharedState[T] {
	s := &SharedState[T]{root: obj}
	d := s.root.Detach()
	s.published.Store(&d)
	return s
}

// Snapshot performs one atomic load and returns the current published
// root. It is lock-free and wait-free on any platform whose atomic pointer
// load is wait-free, and never blocks on the writer.
func (s *SharedState[T]) Snapshot() Detached[T] {
	return *s.published.Load()
}

// Transaction is the scoped writer handle returned by
// SharedState.BeginTransaction. It embeds a NodeTransaction against the
// container's private working root and additionally holds the writer
// mutex and knows how to publish the new root atomically on commit.
type Transaction[T any] struct {
	state *SharedState[T]
	tx    NodeTransaction[T]
}

// BeginTransaction acquires the writer mutex (the only place, besides
// Publisher.RemoveSubscriberSync, that this package may block) and returns
// a scoped transaction handle over the container's working root.
//
// Because the published snapshot holds a reference to the same payload the
// working root started with, the working root is guaranteed non-unique at
// the moment the transaction begins: the first top-level Write inside the
// transaction will always allocate exactly once.
func (s *SharedState[T]) BeginTransaction() *Transaction[T] {
	s.writerMu.Lock()
	return &Transaction[T]{
		state: s,
		tx:    BeginNodeTransaction(&s.root),
	}
}

// Active reports whether the transaction has not yet completed.
func (t *Transaction[T]) Active() bool {
	return t.tx.Active()
}

// Read returns a read-only view of the transaction's working value.
func (t *Transaction[T]) Read() *T {
	return t.tx.Read()
}

// Write returns a mutable view of the transaction's working value.
func (t *Transaction[T]) Write() *T {
	return t.tx.Write()
}

// Revert discards edits made so far without releasing the writer mutex or
// completing the transaction.
func (t *Transaction[T]) Revert() {
	t.tx.Revert()
}

// Abort completes the transaction, discarding its edits, and releases the
// writer mutex. The published root is left untouched.
func (t *Transaction[T]) Abort() {
	t.tx.Abort()
	t.state.writerMu.Unlock()
}

// Commit completes the transaction. If the working root's payload differs
// from the one captured at BeginTransaction, the new root is published via
// one atomic store; the writer mutex is released either way. Returns the
// freshly committed (or, if nothing changed, the unchanged) snapshot and
// whether the root actually changed.
func (t *Transaction[T]) Commit() (Detached[T], bool) {
	d := t.tx.Detach()
	changed := t.tx.Commit()
	if changed {
		t.state.published.Store(&d)
	}
	t.state.writerMu.Unlock()
	return d, changed
}

// Complete commits if commit is true, otherwise aborts, and in both cases
// returns the resulting snapshot and whether the root changed.
func (t *Transaction[T]) Complete(commit bool) (Detached[T], bool) {
	if !commit {
		d := t.state.Snapshot()
		t.Abort()
		return d, false
	}
	return t.Commit()
}

// Close is the Go stand-in for scope-based auto-completion (see
// NodeTransaction.Close): `defer tx.Close()` commits on normal return and
// aborts, then re-panics, if the deferred call runs during a panic.
func (t *Transaction[T]) Close() {
	if !t.tx.Active() {
		return
	}
	if r := recover(); r != nil {
		t.Abort()
		panic(r)
	}
	t.Commit()
}
