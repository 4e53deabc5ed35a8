package mmr3

import (
	"math/big"
	"unicode/utf8"

	"github.com/hupe1980/mmr3/internal/murmur"
)

// Bits selects the hash width for Hash and HashString.
type Bits int

const (
	// Bits32 selects MurmurHash3_x86_32.
	Bits32 Bits = 32
	// Bits128 selects MurmurHash3_x64_128.
	Bits128 Bits = 128
)

// Mix32 applies the MurmurHash3 32-bit finalizer (fmix32) to h.
func Mix32(h uint32) uint32 { return murmur.Mix32(h) }

// Mix64 applies the MurmurHash3 64-bit finalizer (fmix64) to h.
func Mix64(h uint64) uint64 { return murmur.Mix64(h) }

// Hash32 returns the MurmurHash3_x86_32 hash of key.
func Hash32(key []byte, seed uint32) uint32 {
	return murmur.Sum32(key, seed)
}

// Hash32Signed returns the same bits as Hash32 reinterpreted as a
// two's-complement int32.
func Hash32Signed(key []byte, seed uint32) int32 {
	return int32(murmur.Sum32(key, seed))
}

// Hash128 returns the MurmurHash3_x64_128 hash of key.
func Hash128(key []byte, seed uint32) Uint128 {
	h1, h2 := murmur.Sum128(key, seed)
	return Uint128{Lo: h1, Hi: h2}
}

// Hash128Signed returns the same bits as Hash128 reinterpreted as a
// two's-complement 128-bit integer.
func Hash128Signed(key []byte, seed uint32) Int128 {
	return Hash128(key, seed).Signed()
}

// HashString32 hashes the UTF-8 bytes of key.
// It returns ErrInvalidUTF8 if key is not valid UTF-8.
func HashString32(key string, seed uint32) (uint32, error) {
	if !utf8.ValidString(key) {
		return 0, ErrInvalidUTF8
	}
	return murmur.Sum32(key, seed), nil
}

// HashString128 hashes the UTF-8 bytes of key.
// It returns ErrInvalidUTF8 if key is not valid UTF-8.
func HashString128(key string, seed uint32) (Uint128, error) {
	if !utf8.ValidString(key) {
		return Uint128{}, ErrInvalidUTF8
	}
	h1, h2 := murmur.Sum128(key, seed)
	return Uint128{Lo: h1, Hi: h2}, nil
}

// Hash hashes key with the requested width and returns the result as an
// arbitrary-precision integer, negative when signed is set and the top
// bit of the hash is 1.
func Hash(bits Bits, key []byte, seed uint32, signed bool) (*big.Int, error) {
	return hashBig(bits, key, seed, signed)
}

// HashString is Hash for string keys. Invalid UTF-8 is rejected before the
// width is dispatched.
func HashString(bits Bits, key string, seed uint32, signed bool) (*big.Int, error) {
	if !utf8.ValidString(key) {
		return nil, ErrInvalidUTF8
	}
	return hashBig(bits, key, seed, signed)
}

func hashBig[K murmur.Key](bits Bits, key K, seed uint32, signed bool) (*big.Int, error) {
	switch bits {
	case Bits32:
		h := murmur.Sum32(key, seed)
		if signed {
			return big.NewInt(int64(int32(h))), nil
		}
		return new(big.Int).SetUint64(uint64(h)), nil
	case Bits128:
		h1, h2 := murmur.Sum128(key, seed)
		u := Uint128{Lo: h1, Hi: h2}
		if signed {
			return u.Signed().Big(), nil
		}
		return u.Big(), nil
	default:
		return nil, &ErrInvalidBits{Bits: bits}
	}
}
