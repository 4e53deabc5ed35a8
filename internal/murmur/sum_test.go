package murmur

import (
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/hupe1980/mmr3/testutil"
	"github.com/spaolacci/murmur3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum32(t *testing.T) {
	t.Run("known vectors", func(t *testing.T) {
		tests := []struct {
			key  string
			seed uint32
			want uint32
		}{
			{"", 0, 0},
			{"", 1, 0x514e28b7},
			{"", 0xffffffff, 0x81f16f39},
			{"\x00\x00\x00\x00", 0, 0x2362f9de},
			{"\x00\x00\x00", 0, 0x85f0b427},
			{"\x00\x00", 0, 0x30f4c306},
			{"\x00", 0, 0x514e28b7},
			{"\xff\xff\xff\xff", 0, 0x76293b50},
			{"\x21\x43\x65\x87", 0, 0xf55b516b},
			{"\x21\x43\x65", 0, 0x7e4a8634},
			{"\x21\x43", 0, 0xa0f7b07a},
			{"\x21", 0, 0x72661cf4},
			{"\x21\x43\x65\x87", 0x5082edee, 0x2362f9de},
			{"hello", 0, 0x248bfa47},
			{"foo", 0, 0xf6a5c420},
			{"a", 0x9747b28c, 0x7fa09ea6},
			{"ab", 0x9747b28c, 0x74875592},
			{"abc", 0x9747b28c, 0xc84a62dd},
			{"abcd", 0x9747b28c, 0xf0478627},
			{"aaaa", 0x9747b28c, 0x5a97808a},
			{"aaa", 0x9747b28c, 0x283e0130},
			{"aa", 0x9747b28c, 0x5d211726},
			{"Hello, world!", 0x9747b28c, 0x24884cba},
			{"ππππππππ", 0x9747b28c, 0xd58063c1},
			{"The quick brown fox jumps over the lazy dog", 0x9747b28c, 0x2fa826cd},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.want, Sum32([]byte(tt.key), tt.seed), "key=%q seed=%#x", tt.key, tt.seed)
		}
	})

	t.Run("tail boundaries", func(t *testing.T) {
		data := []byte("\x01\x02\x03\x04\x05\x06\x07\x08\x09\x0a\x0b\x0c")
		for _, key := range testutil.Prefixes(data) {
			for _, seed := range []uint32{0, 1, 0x9747b28c} {
				assert.Equal(t, murmur3.Sum32WithSeed(key, seed), Sum32(key, seed), "len=%d seed=%#x", len(key), seed)
			}
		}
	})

	t.Run("empty key is Mix32 of seed", func(t *testing.T) {
		for _, seed := range []uint32{0, 1, 42, 0xffffffff} {
			assert.Equal(t, Mix32(seed), Sum32([]byte(nil), seed))
		}
	})

	t.Run("random corpus matches reference", func(t *testing.T) {
		rng := testutil.NewRNG(42)
		for range 2000 {
			key := rng.Bytes(rng.Intn(128))
			seed := rng.Uint32()
			require.Equal(t, murmur3.Sum32WithSeed(key, seed), Sum32(key, seed), "key=%x seed=%#x", key, seed)
		}
	})

	t.Run("utf8 hashed by bytes", func(t *testing.T) {
		s := "日本語"
		assert.Equal(t, murmur3.Sum32WithSeed([]byte(s), 0), Sum32([]byte(s), 0))
	})

	t.Run("does not read past len", func(t *testing.T) {
		// Trailing capacity must not influence the hash.
		buf := []byte("abcdefgXYZ")
		for n := 0; n <= 7; n++ {
			assert.Equal(t, Sum32([]byte(string(buf[:n])), 0), Sum32(buf[:n], 0), "n=%d", n)
		}
	})
}

func TestSum128(t *testing.T) {
	t.Run("known vectors", func(t *testing.T) {
		h1, h2 := Sum128([]byte("foo"), 0)
		assert.Equal(t, uint64(0xe271865701f54561), h1)
		assert.Equal(t, uint64(0x7eaf87e42bba7d87), h2)

		h1, h2 = Sum128("", 0)
		assert.Equal(t, uint64(0), h1)
		assert.Equal(t, uint64(0), h2)
	})

	t.Run("tail boundaries", func(t *testing.T) {
		data := make([]byte, 48)
		for i := range data {
			data[i] = byte(i*7 + 1)
		}
		for _, key := range testutil.Prefixes(data) {
			for _, seed := range []uint32{0, 1, 0x9747b28c, 0xffffffff} {
				w1, w2 := murmur3.Sum128WithSeed(key, seed)
				h1, h2 := Sum128(key, seed)
				assert.Equal(t, w1, h1, "h1 len=%d seed=%#x", len(key), seed)
				assert.Equal(t, w2, h2, "h2 len=%d seed=%#x", len(key), seed)
			}
		}
	})

	t.Run("random corpus matches reference", func(t *testing.T) {
		rng := testutil.NewRNG(42)
		for range 2000 {
			key := rng.Bytes(rng.Intn(256))
			seed := rng.Uint32()
			w1, w2 := murmur3.Sum128WithSeed(key, seed)
			h1, h2 := Sum128(key, seed)
			require.Equal(t, w1, h1, "key=%x seed=%#x", key, seed)
			require.Equal(t, w2, h2, "key=%x seed=%#x", key, seed)
		}
	})

	t.Run("seed widens into both lanes", func(t *testing.T) {
		a1, a2 := Sum128([]byte("x"), 1)
		b1, b2 := Sum128([]byte("x"), 0)
		assert.NotEqual(t, a1, b1)
		assert.NotEqual(t, a2, b2)
	})
}

// TestVerification reproduces the SMHasher self-test: hash prefixes of
// 0,1,...,255 with seed 256-n, hash the concatenated results with seed 0,
// and compare the low 32 bits.
func TestVerification(t *testing.T) {
	key := make([]byte, 256)
	for i := range key {
		key[i] = byte(i)
	}

	t.Run("x86_32", func(t *testing.T) {
		hashes := make([]byte, 4*256)
		for i := range 256 {
			binary.LittleEndian.PutUint32(hashes[i*4:], Sum32(key[:i], uint32(256-i)))
		}
		assert.Equal(t, uint32(0xb0f57ee3), Sum32(hashes, 0))
	})

	t.Run("x64_128", func(t *testing.T) {
		hashes := make([]byte, 16*256)
		for i := range 256 {
			h1, h2 := Sum128(key[:i], uint32(256-i))
			binary.LittleEndian.PutUint64(hashes[i*16:], h1)
			binary.LittleEndian.PutUint64(hashes[i*16+8:], h2)
		}
		h1, _ := Sum128(hashes, 0)
		assert.Equal(t, uint32(0x6384ba69), uint32(h1))
	})
}

func TestSensitivity(t *testing.T) {
	corpus := testutil.Corpus()

	t.Run("seed", func(t *testing.T) {
		for _, k := range corpus[1:] {
			assert.NotEqual(t, Sum32([]byte(k), 0), Sum32([]byte(k), 1), "key=%q", k)
			a, _ := Sum128([]byte(k), 0)
			b, _ := Sum128([]byte(k), 1)
			assert.NotEqual(t, a, b, "key=%q", k)
		}
	})

	t.Run("length", func(t *testing.T) {
		// Keys that differ only by trailing zero bytes.
		base := []byte("abc")
		seen := map[uint32]int{}
		for n := 0; n < 16; n++ {
			key := append(append([]byte{}, base...), make([]byte, n)...)
			h := Sum32(key, 0)
			prev, dup := seen[h]
			assert.False(t, dup, "len %d collides with len %d", len(key), prev)
			seen[h] = len(key)
		}
	})

	t.Run("determinism", func(t *testing.T) {
		for _, k := range corpus {
			assert.Equal(t, Sum32([]byte(k), 7), Sum32([]byte(k), 7))
			a1, a2 := Sum128([]byte(k), 7)
			b1, b2 := Sum128([]byte(k), 7)
			assert.Equal(t, a1, b1)
			assert.Equal(t, a2, b2)
		}
	})
}

var sizes = []int{1, 10, 100, 1000, 10000}

func BenchmarkSum32(b *testing.B) {
	rng := testutil.NewRNG(100)
	for _, n := range sizes {
		key := []byte(rng.ASCIIString(n))
		b.Run(fmt.Sprintf("len=%d", n), func(b *testing.B) {
			b.SetBytes(int64(n))
			for i := 0; i < b.N; i++ {
				Sum32(key, 0)
			}
		})
	}
}

func BenchmarkSum128(b *testing.B) {
	rng := testutil.NewRNG(100)
	for _, n := range sizes {
		key := []byte(rng.ASCIIString(n))
		b.Run(fmt.Sprintf("len=%d", n), func(b *testing.B) {
			b.SetBytes(int64(n))
			for i := 0; i < b.N; i++ {
				Sum128(key, 0)
			}
		})
	}
}
