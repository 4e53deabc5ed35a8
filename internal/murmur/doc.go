// Package murmur implements the MurmurHash3 family of non-cryptographic hash
// functions.
//
// # Functions
//
//   - Mix32: 32-bit avalanche finalizer (fmix32)
//   - Mix64: 64-bit avalanche finalizer (fmix64)
//   - Sum32: MurmurHash3_x86_32 over a complete byte buffer
//   - Sum128: MurmurHash3_x64_128 over a complete byte buffer
//
// All functions are pure and safe for concurrent use. Arithmetic wraps
// modulo 2^32 or 2^64; there are no error conditions.
//
// # Usage
//
//	h := murmur.Sum32([]byte("hello"), 0)        // 0x248bfa47
//	h1, h2 := murmur.Sum128([]byte("foo"), 0)    // low and high 64 bits
//
// # Block Loads
//
// Blocks are assembled byte by byte as little-endian words from a re-sliced
// window of the key, so the bounds check happens once per load and the
// result is identical on big- and little-endian hosts. The tail is folded
// byte by byte and never reads past len(key).
//
// Sum32 and Sum128 accept either a string or a []byte, so callers holding
// strings do not pay for a copy.
package murmur
