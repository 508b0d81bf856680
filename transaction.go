package kuzco

import "github.com/kuzco-go/kuzco/internal/payload"

// NodeTransaction is a scoped, revertible edit session against a Node.
// It captures the Node's payload at the moment the transaction begins (the
// "restore" point) and offers Revert/Abort/Commit/Complete over it. A
// non-active NodeTransaction (one already completed, explicitly or by
// Close) must not be used further; calling Revert, Abort or Commit on it
// panics with ErrNotActive.
//
// NodeTransaction is embedded by LocalState's transaction view and by
// SharedState.Transaction, which layers a writer mutex and atomic
// publication on top of exactly this mechanism.
type NodeTransaction[T any] struct {
	node    *Node[T]
	restore *payload.Box[T]
}

// BeginNodeTransaction opens a transaction against *node, which must
// remain valid for the transaction's lifetime.
func BeginNodeTransaction[T any](node *Node[T]) NodeTransaction[T] {
	node.box.Share()
	return NodeTransaction[T]{node: node, restore: node.box}
}

// Active reports whether the transaction has not yet been completed.
func (tx NodeTransaction[T]) Active() bool {
	return tx.restore != nil
}

// Read returns a read-only view of the transaction's current working
// value.
func (tx NodeTransaction[T]) Read() *T {
	return tx.node.Read()
}

// Write returns a mutable view of the transaction's current working value,
// cloning the payload on first write exactly as Node.Write would — the
// restore pointer itself holds a second reference to the pre-transaction
// payload, so the very first Write always allocates.
func (tx NodeTransaction[T]) Write() *T {
	return tx.node.Write()
}

// Revert discards edits made so far, rebinding the working node to the
// restore payload, without completing the transaction: the caller may
// continue editing or complete afterward.
func (tx *NodeTransaction[T]) Revert() {
	if tx.restore == nil {
		fault(ErrNotActive)
	}
	tx.node.box = tx.restore
}

// Abort completes the transaction, restoring the pre-transaction payload.
// Calling Abort or Commit again after completion panics with ErrNotActive —
// the first call is authoritative, and a repeat call is a programmer error
// rather than a silent no-op, since Go has no destructor to make that
// distinction for us.
func (tx *NodeTransaction[T]) Abort() {
	if tx.restore == nil {
		fault(ErrNotActive)
	}
	tx.node.box = tx.restore
	tx.restore = nil
}

// Commit completes the transaction, keeping the working value. Returns
// whether the root payload actually changed (false if no edit occurred,
// in which case no allocation happened at all).
func (tx *NodeTransaction[T]) Commit() bool {
	if tx.restore == nil {
		fault(ErrNotActive)
	}
	changed := tx.node.box != tx.restore
	tx.restore = nil
	return changed
}

// Complete commits if commit is true, otherwise aborts; always returns
// whether the root changed (always false on abort).
func (tx *NodeTransaction[T]) Complete(commit bool) bool {
	if !commit {
		tx.Abort()
		return false
	}
	return tx.Commit()
}

// Detach snapshots the transaction's current working value.
func (tx NodeTransaction[T]) Detach() Detached[T] {
	return tx.node.Detach()
}

// Close lets callers `defer tx.Close()` for scope-based auto-completion. On
// a normal return it commits; if called while a panic is unwinding the
// stack, it aborts and lets the panic continue. A transaction already
// completed explicitly (Commit/Abort/Complete already called) makes Close a
// no-op, allowing the common `tx := Begin(); defer tx.Close(); ...;
// tx.Commit()` idiom.
func (tx *NodeTransaction[T]) Close() {
	if tx.restore == nil {
		return
	}
	if r := recover(); r != nil {
		tx.Abort()
		panic(r)
	}
	tx.Commit()
}
