package kuzco_test

import (
	"runtime"
	"testing"

	"github.com/kuzco-go/kuzco"
	"github.com/stretchr/testify/require"
)

func TestFingerprintEmptyByDefault(t *testing.T) {
	var f kuzco.Fingerprint
	require.True(t, f.IsEmpty())
	require.False(t, f.SameAs(f), "two empty Fingerprints are never SameAs, even themselves")
}

func TestFingerprintSameAsLiveDetached(t *testing.T) {
	d := kuzco.NewNode(1).Detach()
	fp := d.Fingerprint()

	require.False(t, fp.IsEmpty())
	require.True(t, kuzco.SameAsDetached(fp, d))
}

func TestFingerprintDistinctPayloadsNotSame(t *testing.T) {
	d1 := kuzco.NewNode(1).Detach()
	d2 := kuzco.NewNode(1).Detach()

	require.False(t, d1.Fingerprint().SameAs(d2.Fingerprint()))
}

func TestFingerprintOfEmptyOptNodeIsEmpty(t *testing.T) {
	var on kuzco.OptNode[int]
	fp := on.Fingerprint()
	require.True(t, fp.IsEmpty())
}

func TestFingerprintResetClears(t *testing.T) {
	d := kuzco.NewNode(1).Detach()
	fp := d.Fingerprint()
	require.False(t, fp.IsEmpty())

	fp.Reset()
	require.True(t, fp.IsEmpty())
}

func TestFingerprintDanglesAfterPayloadCollected(t *testing.T) {
	var fp kuzco.Fingerprint
	func() {
		d := kuzco.NewNode(123).Detach()
		fp = d.Fingerprint()
		require.False(t, fp.Dangling())
	}()

	runtime.GC()
	runtime.GC()

	require.True(t, fp.Dangling())
}
