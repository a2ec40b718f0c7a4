// Package statetest provides a reusable conformance suite for types
// implementing the gravity capability contracts, so record authors
// can verify their codec against the guarantees the host runtime
// relies on.
package statetest

import (
	"bytes"
	"testing"

	gravity "github.com/gravity-tech/gravity-adapter"
)

// Unpack decodes an encoded buffer back into a Packable value.
// Callers typically wrap a package-level decode function.
type Unpack func(src []byte) (gravity.Packable, error)

// RunPackableSuite runs a standard conformance suite against a record
// value, verifying the structural guarantees of the
// fixed-size-encoding capability: a stable encoded length, exact-size
// writes, deterministic output, lossless round-trips, and rejection
// of wrong-sized buffers on both paths.
func RunPackableSuite(t *testing.T, v gravity.Packable, unpack Unpack) {
	t.Helper()

	t.Run("encoded_len_positive", func(t *testing.T) {
		if v.EncodedLen() <= 0 {
			t.Fatalf("EncodedLen returned %d, want > 0", v.EncodedLen())
		}
	})

	t.Run("pack_fills_buffer", func(t *testing.T) {
		buf := make([]byte, v.EncodedLen())
		if err := v.Pack(buf); err != nil {
			t.Fatalf("Pack into exact-size buffer failed: %v", err)
		}
	})

	t.Run("pack_rejects_short_buffer", func(t *testing.T) {
		buf := make([]byte, v.EncodedLen()-1)
		err := v.Pack(buf)
		if err == nil {
			t.Fatal("Pack into short buffer should fail")
		}
		if _, ok := gravity.IsSizeMismatch(err); !ok {
			t.Errorf("expected SizeMismatchError, got %v", err)
		}
	})

	t.Run("pack_rejects_long_buffer", func(t *testing.T) {
		buf := make([]byte, v.EncodedLen()+1)
		err := v.Pack(buf)
		if err == nil {
			t.Fatal("Pack into oversized buffer should fail")
		}
		if _, ok := gravity.IsSizeMismatch(err); !ok {
			t.Errorf("expected SizeMismatchError, got %v", err)
		}
	})

	t.Run("pack_deterministic", func(t *testing.T) {
		a := mustPack(t, v)
		b := mustPack(t, v)
		if !bytes.Equal(a, b) {
			t.Errorf("two packs of the same value differ:\n%x\n%x", a, b)
		}
	})

	t.Run("round_trip", func(t *testing.T) {
		encoded := mustPack(t, v)
		decoded, err := unpack(encoded)
		if err != nil {
			t.Fatalf("Unpack failed: %v", err)
		}
		if decoded.EncodedLen() != v.EncodedLen() {
			t.Fatalf("decoded EncodedLen %d, want %d", decoded.EncodedLen(), v.EncodedLen())
		}
		reencoded := mustPack(t, decoded)
		if !bytes.Equal(encoded, reencoded) {
			t.Errorf("round-trip not lossless:\n%x\n%x", encoded, reencoded)
		}
	})

	t.Run("unpack_rejects_truncated", func(t *testing.T) {
		encoded := mustPack(t, v)
		_, err := unpack(encoded[:len(encoded)-1])
		if err == nil {
			t.Fatal("Unpack of truncated buffer should fail")
		}
		if _, ok := gravity.IsSizeMismatch(err); !ok {
			t.Errorf("expected SizeMismatchError, got %v", err)
		}
	})

	t.Run("unpack_rejects_extended", func(t *testing.T) {
		encoded := mustPack(t, v)
		_, err := unpack(append(encoded, 0))
		if err == nil {
			t.Fatal("Unpack of extended buffer should fail")
		}
		if _, ok := gravity.IsSizeMismatch(err); !ok {
			t.Errorf("expected SizeMismatchError, got %v", err)
		}
	})

	t.Run("unpack_does_not_mutate", func(t *testing.T) {
		encoded := mustPack(t, v)
		snapshot := append([]byte(nil), encoded...)
		if _, err := unpack(encoded); err != nil {
			t.Fatalf("Unpack failed: %v", err)
		}
		if !bytes.Equal(encoded, snapshot) {
			t.Error("Unpack mutated its input buffer")
		}
	})
}

// mustPack packs v into a fresh exact-size buffer.
func mustPack(t *testing.T, v gravity.Packable) []byte {
	t.Helper()
	buf := make([]byte, v.EncodedLen())
	if err := v.Pack(buf); err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	return buf
}
