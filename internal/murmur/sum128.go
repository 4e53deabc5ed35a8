package murmur

import "math/bits"

const (
	c1x64 uint64 = 0x87c37b91114253d5
	c2x64 uint64 = 0x4cf5ad432745937f
)

// Sum128 returns the MurmurHash3_x64_128 hash of key as its low (h1) and
// high (h2) 64-bit halves. Both lanes start from the seed widened to 64 bits.
func Sum128[T Key](key T, seed uint32) (h1, h2 uint64) {
	h1, h2 = uint64(seed), uint64(seed)
	nblocks := len(key) / 16

	// body
	p := key
	for i := 0; i < nblocks; i++ {
		k1 := load64(p)
		k2 := load64(p[8:])
		p = p[16:]

		h1 ^= scrambleK1(k1)
		h1 = bits.RotateLeft64(h1, 27)
		h1 += h2
		h1 = h1*5 + 0x52dce729

		// h2 mixes in the h1 computed just above.
		h2 ^= scrambleK2(k2)
		h2 = bits.RotateLeft64(h2, 31)
		h2 += h1
		h2 = h2*5 + 0x38495ab5
	}

	// tail
	var k1, k2 uint64
	switch len(p) {
	case 15:
		k2 ^= uint64(p[14]) << 48
		fallthrough
	case 14:
		k2 ^= uint64(p[13]) << 40
		fallthrough
	case 13:
		k2 ^= uint64(p[12]) << 32
		fallthrough
	case 12:
		k2 ^= uint64(p[11]) << 24
		fallthrough
	case 11:
		k2 ^= uint64(p[10]) << 16
		fallthrough
	case 10:
		k2 ^= uint64(p[9]) << 8
		fallthrough
	case 9:
		k2 ^= uint64(p[8])
		h2 ^= scrambleK2(k2)
		fallthrough
	case 8:
		k1 ^= uint64(p[7]) << 56
		fallthrough
	case 7:
		k1 ^= uint64(p[6]) << 48
		fallthrough
	case 6:
		k1 ^= uint64(p[5]) << 40
		fallthrough
	case 5:
		k1 ^= uint64(p[4]) << 32
		fallthrough
	case 4:
		k1 ^= uint64(p[3]) << 24
		fallthrough
	case 3:
		k1 ^= uint64(p[2]) << 16
		fallthrough
	case 2:
		k1 ^= uint64(p[1]) << 8
		fallthrough
	case 1:
		k1 ^= uint64(p[0])
		h1 ^= scrambleK1(k1)
	}

	// finalization
	n := uint64(len(key))
	h1 ^= n
	h2 ^= n

	h1 += h2
	h2 += h1

	h1 = Mix64(h1)
	h2 = Mix64(h2)

	h1 += h2
	h2 += h1

	return h1, h2
}

func scrambleK1(k uint64) uint64 {
	k *= c1x64
	k = bits.RotateLeft64(k, 31)
	k *= c2x64
	return k
}

func scrambleK2(k uint64) uint64 {
	k *= c2x64
	k = bits.RotateLeft64(k, 33)
	k *= c1x64
	return k
}
