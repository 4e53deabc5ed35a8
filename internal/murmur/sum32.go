package murmur

import "math/bits"

const (
	c1x86 uint32 = 0xcc9e2d51
	c2x86 uint32 = 0x1b873593
)

// Sum32 returns the MurmurHash3_x86_32 hash of key.
func Sum32[T Key](key T, seed uint32) uint32 {
	h1 := seed
	nblocks := len(key) / 4

	// body
	p := key
	for i := 0; i < nblocks; i++ {
		k1 := load32(p)
		p = p[4:]

		h1 ^= scramble32(k1)
		h1 = bits.RotateLeft32(h1, 13)
		h1 = h1*5 + 0xe6546b64
	}

	// tail
	var k1 uint32
	switch len(p) {
	case 3:
		k1 ^= uint32(p[2]) << 16
		fallthrough
	case 2:
		k1 ^= uint32(p[1]) << 8
		fallthrough
	case 1:
		k1 ^= uint32(p[0])
		h1 ^= scramble32(k1)
	}

	// The length is folded in modulo 2^32, matching the reference.
	return Mix32(h1 ^ uint32(len(key)))
}

func scramble32(k uint32) uint32 {
	k *= c1x86
	k = bits.RotateLeft32(k, 15)
	k *= c2x86
	return k
}
