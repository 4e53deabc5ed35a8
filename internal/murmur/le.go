package murmur

// Key is the set of byte sequences that can be hashed without copying.
type Key interface {
	~string | ~[]byte
}

// load32 decodes p[0:4] as little-endian. The leading access proves
// len(p) >= 4 once for the whole load.
func load32[T Key](p T) uint32 {
	_ = p[3]
	return uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16 | uint32(p[3])<<24
}

// load64 decodes p[0:8] as little-endian.
func load64[T Key](p T) uint64 {
	_ = p[7]
	return uint64(p[0]) | uint64(p[1])<<8 | uint64(p[2])<<16 | uint64(p[3])<<24 |
		uint64(p[4])<<32 | uint64(p[5])<<40 | uint64(p[6])<<48 | uint64(p[7])<<56
}
