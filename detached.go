package kuzco

import "github.com/kuzco-go/kuzco/internal/payload"

// Detached is an immutable, non-null shared handle onto a payload produced
// by Node.Detach or a state container's Snapshot/Commit. Detached is the
// only type callers may freely store, copy, and pass across goroutines
// without coordination: the payload it points at is never mutated again.
type Detached[T any] struct {
	box *payload.Box[T]
}

// Read returns the underlying value. It never triggers an allocation —
// Detached has no Write.
func (d Detached[T]) Read() *T {
	return &d.box.Value
}

// Equal reports whether a and b observe the same payload (pointer
// identity).
func (d Detached[T]) Equal(other Detached[T]) bool {
	return payload.Same(d.box, other.box)
}

// Less gives Detached a total order over payload addresses, for use as a
// map or set key.
func (d Detached[T]) Less(other Detached[T]) bool {
	return uintptrOf(d.box) < uintptrOf(other.box)
}

// Fingerprint returns a weak identity token for d's payload.
func (d Detached[T]) Fingerprint() Fingerprint {
	return newFingerprint(d.box)
}

// ShareSelf is a no-op beyond re-asserting the share: a Detached's Box is
// already shared by construction. It implements payload.Shareable purely so
// that Box.Clone's reflective walk, on encountering a Detached embedded
// inside a larger copy-constructed value, stops here instead of reaching
// into its unexported box field.
func (d Detached[T]) ShareSelf() {
	d.box.Share()
}

// ToNode constructs a fresh, independently owned Node by copy-constructing
// from a Detached snapshot: a semantic copy, as opposed to Node's
// shallow-share copy constructor. Used when moving a subtree detached from
// one state container into a transaction belonging to another.
func ToNode[T any](d Detached[T]) Node[T] {
	return Node[T]{box: d.box.Clone()}
}

// detachedFromBox wraps an already-shared box as a Detached handle. It has
// no caller inside this package.
func detachedFromBox[T any](b *payload.Box[T]) Detached[T] {
	return Detached[T]{box: b}
}

// OptDetached is the nullable sibling of Detached.
type OptDetached[T any] struct {
	box *payload.Box[T]
}

// IsEmpty reports whether d holds no value.
func (d OptDetached[T]) IsEmpty() bool {
	return d.box == nil
}

// Read returns the underlying value, or nil if empty.
func (d OptDetached[T]) Read() *T {
	if d.box == nil {
		return nil
	}
	return &d.box.Value
}

// Equal reports whether a and b observe the same payload, or are both
// empty.
func (d OptDetached[T]) Equal(other OptDetached[T]) bool {
	return payload.Same(d.box, other.box)
}

// Fingerprint returns a weak identity token; the empty OptDetached yields
// the empty Fingerprint.
func (d OptDetached[T]) Fingerprint() Fingerprint {
	if d.box == nil {
		return Fingerprint{}
	}
	return newFingerprint(d.box)
}

// ShareSelf marks d's Box as shared, if d holds one. See Detached.ShareSelf.
func (d OptDetached[T]) ShareSelf() {
	if d.box != nil {
		d.box.Share()
	}
}

// ToDetached converts a non-empty OptDetached into the non-null Detached.
// Calling this on an empty OptDetached is a programmer contract violation
// and panics.
func ToDetached[T any](d OptDetached[T]) Detached[T] {
	if d.box == nil {
		fault(ErrEmptyDetach)
	}
	return Detached[T]{box: d.box}
}

// ToOptDetached widens a Detached into the always-non-empty case of
// OptDetached.
func ToOptDetached[T any](d Detached[T]) OptDetached[T] {
	return OptDetached[T]{box: d.box}
}
