package gravity

import (
	"errors"
	"fmt"
)

// SizeMismatchError reports a buffer whose length does not match a
// record's fixed encoded length. It is returned both by Unpack, when
// the stored account data has the wrong size, and by Pack, when the
// caller supplies a destination buffer of the wrong size.
//
// A size mismatch on the decode path means the persisted account data
// is corrupt; the host must abort the enclosing operation rather than
// retry, since re-reading corrupt data cannot succeed.
type SizeMismatchError struct {
	Want int
	Got  int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("state buffer is %d bytes, want %d", e.Got, e.Want)
}

// InitFlagError reports a corrupt initialization byte: the first byte
// of a stored record must be 0 or 1.
type InitFlagError struct {
	Flag byte
}

func (e *InitFlagError) Error() string {
	return fmt.Sprintf("initialization flag is 0x%02x, want 0 or 1", e.Flag)
}

// IsSizeMismatch checks whether an error is a SizeMismatchError and
// returns it.
func IsSizeMismatch(err error) (*SizeMismatchError, bool) {
	var e *SizeMismatchError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsInitFlag checks whether an error is an InitFlagError and
// returns it.
func IsInitFlag(err error) (*InitFlagError, bool) {
	var e *InitFlagError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
