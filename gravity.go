// Package gravity defines the host-facing contracts of the Gravity
// oracle's on-chain state record.
//
// The record itself (and its fixed-width binary codec) lives in
// [github.com/gravity-tech/gravity-adapter/types]. This package holds
// the two structural capabilities the record exposes to the host
// runtime — a fixed-size-encoding capability and an is-initialized
// query — plus the typed errors the decode path returns.
package gravity

// Packable is the fixed-size-encoding capability. The host runtime
// stores each record as a flat byte buffer inside an account of
// exactly EncodedLen bytes and round-trips it through Pack on every
// state transition.
type Packable interface {
	// EncodedLen returns the exact number of bytes Pack writes.
	// The value is a constant property of the type, never of the
	// instance.
	EncodedLen() int

	// Pack serializes the value into dst, which must be exactly
	// EncodedLen bytes long. Pack either fills dst completely or
	// returns an error without writing; it never truncates and
	// never writes past EncodedLen.
	Pack(dst []byte) error
}

// Initializable is implemented by records whose first stored byte is
// an initialization flag. The host runtime checks the flag before
// dispatching instructions against the account; the transition from
// uninitialized to initialized is driven by the host program, never
// by the codec.
type Initializable interface {
	// IsInitialized reports the stored flag.
	IsInitialized() bool
}
