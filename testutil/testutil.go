package testutil

import (
	"math/rand"
	"strings"
	"sync"
	"unicode/utf8"
)

const lowercase = "abcdefghijklmnopqrstuvwxyz"

// utf8Pool mixes 1-, 2-, 3- and 4-byte encodings.
var utf8Pool = []rune("aZ0~éßñΩжあ漢字한😀🚀𝄞")

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint32 returns a pseudo-random uint32.
func (r *RNG) Uint32() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint32()
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Bytes returns n pseudo-random bytes.
func (r *RNG) Bytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := make([]byte, n)
	r.rand.Read(b)
	return b
}

// ASCIIString returns a string of n random lowercase letters.
// Matches the key alphabet of the throughput benchmarks.
func (r *RNG) ASCIIString(n int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.asciiLocked(n)
}

func (r *RNG) asciiLocked(n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for range n {
		sb.WriteByte(lowercase[r.rand.Intn(len(lowercase))])
	}
	return sb.String()
}

// UTF8String returns a valid UTF-8 string of n runes drawn from a pool of
// 1- to 4-byte encodings.
func (r *RNG) UTF8String(n int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sb strings.Builder
	sb.Grow(n * utf8.UTFMax)
	for range n {
		sb.WriteRune(utf8Pool[r.rand.Intn(len(utf8Pool))])
	}
	return sb.String()
}

// Keys returns num ASCII keys with lengths uniformly drawn from [0, maxLen].
// Locks only once per call (preferred over calling ASCIIString in a loop).
func (r *RNG) Keys(num, maxLen int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := make([]string, num)
	for i := range keys {
		keys[i] = r.asciiLocked(r.rand.Intn(maxLen + 1))
	}
	return keys
}

// Prefixes returns data[:0], data[:1], ..., data[:len(data)].
// Hashing every prefix of a buffer exercises each tail length and block count.
func Prefixes(data []byte) [][]byte {
	out := make([][]byte, len(data)+1)
	for i := range out {
		out[i] = data[:i:i]
	}
	return out
}

// Corpus returns a fixed set of keys covering empty input, each tail length
// for 4- and 16-byte blocks, multi-byte UTF-8 and longer texts.
func Corpus() []string {
	return []string{
		"",
		"a",
		"ab",
		"abc",
		"abcd",
		"hello",
		"foo",
		"bar",
		"baz",
		"Hello, world!",
		"0123456789abcde",
		"0123456789abcdef",
		"0123456789abcdef0",
		"The quick brown fox jumps over the lazy dog",
		"héllo wörld",
		"日本語のテキスト",
		"emoji 😀🚀",
		strings.Repeat("x", 1000),
	}
}
