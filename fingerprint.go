package kuzco

import (
	"weak"

	"github.com/kuzco-go/kuzco/internal/payload"
)

// Fingerprint is a non-owning, weak observation of a payload's identity.
// It can be compared against another Fingerprint or a live handle (Node,
// OptNode, Detached, OptDetached) for identity, but it can never resurrect
// the payload and never contributes to a Node's uniqueness bookkeeping.
//
// DANGER: Fingerprint is only safe to use against payloads that are known
// never to be edited in place — immutable published snapshots, or payloads
// held through a transaction's restore pointer (which is never unique and
// so is never edited in place either). For a Node under active editing, a
// later Write may replace its payload without the Fingerprint ever noticing
// a payload it is NOT watching anymore came and went; conversely it
// correctly goes "dangling" the moment the one it IS watching is
// collected. For arbitrary live nodes, prefer an application-level
// identity (a revision counter, a hash) instead.
//
// Go's weak package (weak.Pointer[T], stable since Go 1.24) is used here
// instead of a hand-rolled generation counter: it never perturbs any
// refcount or keeps its referent alive, which is exactly the property a
// non-owning identity token needs.
type Fingerprint struct {
	ptr weak.Pointer[int] // box identity is erased to *int via unsafe box header
	set bool
}

// newFingerprint builds a Fingerprint observing b's identity. The box's
// element type is erased because Fingerprint itself carries no type
// parameter — it must be comparable against handles of any T. Only the
// address is ever used; the box is never dereferenced through this weak
// pointer. Reinterpreting *payload.Box[T] as *int is safe precisely because
// weak.Pointer.Value is only ever used for pointer-identity comparison and
// for testing liveness (nil vs non-nil) — nothing ever calls .Value() and
// reads through the result as an int, so the mismatched pointee type is
// never actually observed.
func newFingerprint[T any](b *payload.Box[T]) Fingerprint {
	if b == nil {
		return Fingerprint{}
	}
	return Fingerprint{ptr: weak.Make((*int)(boxAddr(b))), set: true}
}

// ShareSelf is a no-op: a Fingerprint owns no Box of its own to mark
// shared, only a weak observation of one. It implements payload.Shareable
// so Box.Clone's reflective walk stops here rather than descending into
// weak.Pointer's internals when a Fingerprint is embedded inside a
// copy-constructed value.
func (f Fingerprint) ShareSelf() {}

// IsEmpty reports whether the Fingerprint was ever set (default-value
// Fingerprints, or ones obtained from an empty OptNode/OptDetached, are
// empty).
func (f Fingerprint) IsEmpty() bool {
	return !f.set
}

// Reset clears f to the empty state.
func (f *Fingerprint) Reset() {
	*f = Fingerprint{}
}

// SameAs reports whether f and other observe the same payload identity.
// Two empty Fingerprints are never SameAs each other (there is no payload
// to be the same as), matching the original's `operator bool` semantics
// where an unset Fingerprint compares false even against itself.
func (f Fingerprint) SameAs(other Fingerprint) bool {
	if !f.set || !other.set {
		return false
	}
	return f.ptr == other.ptr
}

// SameAsNode reports whether f observes the same payload currently held by
// n.
func SameAsNode[T any](f Fingerprint, n Node[T]) bool {
	return f.SameAs(n.Fingerprint())
}

// SameAsDetached reports whether f observes the same payload currently
// held by d.
func SameAsDetached[T any](f Fingerprint, d Detached[T]) bool {
	return f.SameAs(d.Fingerprint())
}

// Dangling reports whether the payload f observed has since been garbage
// collected (i.e. no live Node/Detached/OptNode/OptDetached anywhere still
// holds it). An empty Fingerprint is not considered dangling — it was
// never watching anything to begin with.
func (f Fingerprint) Dangling() bool {
	if !f.set {
		return false
	}
	return f.ptr.Value() == nil
}
