package kuzco

// NodeRef is a thin mutable reference to a Node living inside a container
// — a NodeVector element — without being a full
// ownership handle itself. It forwards Read/Write/Detach to the Node it
// refers to. The zero NodeRef is the empty reference, returned by
// NodeVector.FindIf when nothing matches.
type NodeRef[T any] struct {
	node *Node[T]
}

// IsEmpty reports whether r refers to nothing.
func (r NodeRef[T]) IsEmpty() bool {
	return r.node == nil
}

// Read returns a read-only view of the referred Node's payload, or nil if
// empty.
func (r NodeRef[T]) Read() *T {
	if r.node == nil {
		return nil
	}
	return r.node.Read()
}

// Write returns a mutable view, cloning the payload first if shared.
// Calling Write on an empty NodeRef is a fault.
func (r NodeRef[T]) Write() *T {
	if r.node == nil {
		faultf("kuzco: Write on empty NodeRef")
	}
	return r.node.Write()
}

// Detach snapshots the referred Node's current payload.
func (r NodeRef[T]) Detach() Detached[T] {
	return r.node.Detach()
}

// newNodeRef wraps a live *Node[T] into a NodeRef.
func newNodeRef[T any](n *Node[T]) NodeRef[T] {
	return NodeRef[T]{node: n}
}
