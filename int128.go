package mmr3

import (
	"encoding/binary"
	"math/big"
)

// two128 is 2^128.
var two128 = new(big.Int).Lsh(big.NewInt(1), 128)

// Uint128 is an unsigned 128-bit integer with value Hi<<64 | Lo.
//
// For Hash128, Lo holds h1 and Hi holds h2.
type Uint128 struct {
	Lo uint64
	Hi uint64
}

// Big returns the value as a big.Int.
func (u Uint128) Big() *big.Int {
	b := new(big.Int).SetUint64(u.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.Lo))
}

// String returns the decimal representation.
func (u Uint128) String() string { return u.Big().String() }

// Bytes returns the 16-byte big-endian encoding.
func (u Uint128) Bytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], u.Hi)
	binary.BigEndian.PutUint64(b[8:], u.Lo)
	return b
}

// Signed reinterprets the bits as a two's-complement Int128.
func (u Uint128) Signed() Int128 {
	return Int128{Lo: u.Lo, Hi: int64(u.Hi)}
}

// Int128 is a two's-complement signed 128-bit integer with value
// Hi<<64 + Lo.
type Int128 struct {
	Lo uint64
	Hi int64
}

// Sign returns -1, 0 or +1.
func (i Int128) Sign() int {
	switch {
	case i.Hi < 0:
		return -1
	case i.Hi == 0 && i.Lo == 0:
		return 0
	default:
		return 1
	}
}

// Unsigned reinterprets the bits as a Uint128.
func (i Int128) Unsigned() Uint128 {
	return Uint128{Lo: i.Lo, Hi: uint64(i.Hi)}
}

// Big returns the value as a big.Int.
func (i Int128) Big() *big.Int {
	b := i.Unsigned().Big()
	if i.Hi < 0 {
		b.Sub(b, two128)
	}
	return b
}

// String returns the decimal representation.
func (i Int128) String() string { return i.Big().String() }
