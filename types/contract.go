package types

import (
	"encoding/binary"
	"fmt"

	gravity "github.com/gravity-tech/gravity-adapter"
)

// ConsulCount is the number of consul keys fixed by the wire format.
// A different set size would need a redesigned, length-prefixed
// encoding and would break every record already stored on chain.
const ConsulCount = 3

// ContractStateLen is the exact encoded size of a ContractState.
const ContractStateLen = 138

// Field offsets within the encoded record.
const (
	offInitFlag    = 0
	offInitializer = 1
	offBFT         = 33
	offConsuls     = 34
	offLastRound   = offConsuls + ConsulCount*PubkeyLen
)

// Compile-time capability checks.
var (
	_ gravity.Packable      = ContractState{}
	_ gravity.Initializable = ContractState{}
)

// ContractState is the consensus contract's on-chain record.
//
// Wire layout (total 138 bytes):
//
//	offset  0, len  1: initialization flag, 0 or 1
//	offset  1, len 32: initializer pubkey, raw bytes
//	offset 33, len  1: BFT threshold
//	offset 34, len 96: consuls, 3 × 32 raw bytes in insertion order
//	offset 130, len 8: last round, uint64 little-endian
//
// ContractState is a comparable value type; equality is field-wise.
// The zero value is a valid, uninitialized record.
type ContractState struct {
	// Initialized is the stored flag. It is flipped once by the
	// host program's initialize instruction and read-only after.
	Initialized bool

	// Initializer is the account that created the record.
	Initializer Pubkey

	// BFT is the Byzantine-fault-tolerance threshold. The codec
	// accepts any byte value; range rules are the consensus
	// protocol's concern.
	BFT uint8

	// Consuls are the oracle validator keys, in insertion order.
	Consuls [ConsulCount]Pubkey

	// LastRound is the latest recorded consensus round.
	LastRound uint64
}

// IsInitialized reports the stored initialization flag.
func (cs ContractState) IsInitialized() bool {
	return cs.Initialized
}

// EncodedLen returns ContractStateLen.
func (cs ContractState) EncodedLen() int {
	return ContractStateLen
}

// Pack serializes the record into dst, which must be exactly
// ContractStateLen bytes. On a size mismatch it returns a
// *gravity.SizeMismatchError without writing anything; a well-formed
// record cannot otherwise fail to pack.
func (cs ContractState) Pack(dst []byte) error {
	if len(dst) != ContractStateLen {
		return &gravity.SizeMismatchError{Want: ContractStateLen, Got: len(dst)}
	}

	if cs.Initialized {
		dst[offInitFlag] = 1
	} else {
		dst[offInitFlag] = 0
	}
	copy(dst[offInitializer:offBFT], cs.Initializer[:])
	dst[offBFT] = cs.BFT
	for i, consul := range cs.Consuls {
		copy(dst[offConsuls+i*PubkeyLen:], consul[:])
	}
	binary.LittleEndian.PutUint64(dst[offLastRound:ContractStateLen], cs.LastRound)
	return nil
}

// UnpackContractState decodes a stored record.
//
// It fails with *gravity.SizeMismatchError if src is not exactly
// ContractStateLen bytes and with *gravity.InitFlagError if the
// leading byte is neither 0 nor 1. No other content is validated:
// BFT, LastRound and the pubkeys accept any byte pattern. src is
// never mutated.
func UnpackContractState(src []byte) (ContractState, error) {
	if len(src) != ContractStateLen {
		return ContractState{}, &gravity.SizeMismatchError{Want: ContractStateLen, Got: len(src)}
	}

	var cs ContractState
	switch src[offInitFlag] {
	case 0:
		cs.Initialized = false
	case 1:
		cs.Initialized = true
	default:
		return ContractState{}, &gravity.InitFlagError{Flag: src[offInitFlag]}
	}
	copy(cs.Initializer[:], src[offInitializer:offBFT])
	cs.BFT = src[offBFT]
	for i := range cs.Consuls {
		start := offConsuls + i*PubkeyLen
		copy(cs.Consuls[i][:], src[start:start+PubkeyLen])
	}
	cs.LastRound = binary.LittleEndian.Uint64(src[offLastRound:ContractStateLen])
	return cs, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (cs ContractState) MarshalBinary() ([]byte, error) {
	buf := make([]byte, ContractStateLen)
	if err := cs.Pack(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (cs *ContractState) UnmarshalBinary(data []byte) error {
	out, err := UnpackContractState(data)
	if err != nil {
		return err
	}
	*cs = out
	return nil
}

// String returns a one-line human-readable rendering. Consul keys are
// omitted; print them separately when needed.
func (cs ContractState) String() string {
	return fmt.Sprintf("initialized: %t; initializer: %s; bft: %d; last_round: %d",
		cs.Initialized, cs.Initializer, cs.BFT, cs.LastRound)
}
