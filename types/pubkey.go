// Package types defines the Gravity contract state record and its
// fixed-width binary codec.
//
// These are plain comparable Go value types. The wire layout is a
// bespoke fixed 138-byte format that must remain bit-exact for
// compatibility with records already stored on chain; transport and
// instruction-dispatch concerns belong to the host runtime.
package types

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// PubkeyLen is the byte length of a host account identifier.
const PubkeyLen = 32

// Pubkey is the opaque 32-byte identifier of a host runtime account.
// The codec stores and compares it as raw bytes and never interprets
// its contents.
type Pubkey [PubkeyLen]byte

// PubkeyFromBytes converts a raw byte slice into a Pubkey.
func PubkeyFromBytes(b []byte) (Pubkey, error) {
	var pk Pubkey
	if len(b) != PubkeyLen {
		return pk, fmt.Errorf("pubkey is %d bytes, want %d", len(b), PubkeyLen)
	}
	copy(pk[:], b)
	return pk, nil
}

// PubkeyFromString is the inverse of Pubkey.String.
func PubkeyFromString(s string) (Pubkey, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return Pubkey{}, fmt.Errorf("decode pubkey: %w", err)
	}
	return PubkeyFromBytes(b)
}

// Bytes returns a copy of the raw key bytes.
func (pk Pubkey) Bytes() []byte {
	b := make([]byte, PubkeyLen)
	copy(b, pk[:])
	return b
}

// String renders the key in base58, the host chain's convention.
func (pk Pubkey) String() string {
	return base58.Encode(pk[:])
}
