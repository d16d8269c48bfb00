package uuidv7

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Size is the number of bytes in an identifier.
const Size = 16

// UUID is a 16 byte RFC 4122 identifier. Values produced by a
// Generator are version 7 and sort by creation time when compared as
// raw bytes.
type UUID [Size]byte

// Nil is the zero identifier.
var Nil UUID

// Hex returns the identifier as 32 lowercase hex characters without
// separators.
func (id UUID) Hex() string {
	return hex.EncodeToString(id[:])
}

// String returns the canonical xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx form.
func (id UUID) String() string {
	return uuid.UUID(id).String()
}

// Bytes returns a copy of the raw identifier.
func (id UUID) Bytes() []byte {
	return append([]byte(nil), id[:]...)
}

// Time returns the millisecond timestamp embedded in a version 7
// identifier.
func (id UUID) Time() time.Time {
	var ms int64
	for _, b := range id[:6] {
		ms = ms<<8 | int64(b)
	}
	return time.UnixMilli(ms)
}

// Sequence returns the 12 bit counter of a version 7 identifier.
func (id UUID) Sequence() uint16 {
	return uint16(id[6]&0x0F)<<8 | uint16(id[7])
}

// Version returns the version nibble.
func (id UUID) Version() byte {
	return id[6] >> 4
}

// Variant returns the two RFC variant bits.
func (id UUID) Variant() byte {
	return id[8] >> 6
}

func (id UUID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *UUID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*id = parsed
	return nil
}

// Parse decodes s in any of the textual formats accepted by
// gofrs/uuid, including the 32 character form produced by Hex.
func Parse(s string) (UUID, error) {
	u, err := uuid.FromString(s)
	if err != nil {
		return Nil, fmt.Errorf("[uuidv7] parse %q: %w", s, err)
	}

	return UUID(u), nil
}

// FromBytes decodes a raw 16 byte identifier.
func FromBytes(b []byte) (UUID, error) {
	u, err := uuid.FromBytes(b)
	if err != nil {
		return Nil, fmt.Errorf("[uuidv7] from bytes: %w", err)
	}

	return UUID(u), nil
}
