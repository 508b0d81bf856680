package kuzco

import "unsafe"

// uintptrOf gives a stable, comparable ordering key for a payload address,
// for Detached.Less. Using unsafe.Pointer for an address-only comparison
// (never dereferenced, never used to extend a pointer's lifetime) follows
// the same zero-copy, address-level pattern as b2s/s2b-style byte/string
// conversions elsewhere in the ecosystem.
func uintptrOf[T any](p *T) uintptr {
	return uintptr(unsafe.Pointer(p))
}

// boxAddr type-erases a *payload.Box[T] to an unsafe.Pointer, which
// newFingerprint converts to *int so that Fingerprint, which carries no
// type parameter, can hold a weak.Pointer[int] regardless of
// what T the originating Node/Detached was instantiated with. The result
// is never dereferenced — only its address identity and liveness (via
// weak.Pointer.Value) are ever observed — so the type punning is safe.
func boxAddr[T any](p *T) unsafe.Pointer {
	return unsafe.Pointer(p)
}
