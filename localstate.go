package kuzco

// LocalState is a single-goroutine root holder with no locking. It is the
// simplest state container: useful when a tree is edited
// and read from exactly one goroutine, and snapshots only need to be handed
// out for later comparison or for promoting into a SharedState.
type LocalState[T any] struct {
	root Node[T]
	tx   NodeTransaction[T]
}

// NewLocalState constructs a LocalState rooted at obj.
func NewLocalState[T any](obj Node[T]) *LocalState[T] {
	return &LocalState[T]{root: obj}
}

// BeginTransaction opens a transaction against the root. Only one
// transaction may be open at a time; opening a second before completing
// the first is a programmer error and panics.
func (s *LocalState[T]) BeginTransaction() *NodeTransaction[T] {
	if s.tx.Active() {
		faultf("kuzco: LocalState transaction already open")
	}
	s.tx = BeginNodeTransaction(&s.root)
	return &s.tx
}

// EndTransaction completes the currently open transaction: commits if
// store is true, aborts otherwise. Returns whether the root payload
// changed. If no edits were made during the transaction, no allocation
// happens and the root identity is preserved.
func (s *LocalState[T]) EndTransaction(store bool) bool {
	return s.tx.Complete(store)
}

// Detach returns an atomic (trivially so — single-goroutine) snapshot of
// the current root.
func (s *LocalState[T]) Detach() Detached[T] {
	return s.root.Detach()
}
