// Package mmr3 provides the MurmurHash3 family of non-cryptographic hash
// functions for Go.
//
// mmr3 implements the two canonical MurmurHash3 variants bit-for-bit with
// the reference implementation, their finalizers, and a parallel batch hash
// over n-dimensional arrays of strings. It is NOT a cryptographic hash.
//
// # Quick Start
//
//	h := mmr3.Hash32([]byte("hello"), 0)          // 0x248bfa47
//	s := mmr3.Hash32Signed([]byte("foo"), 0)      // -156908512
//	u := mmr3.Hash128([]byte("foo"), 42)          // Uint128{Lo: h1, Hi: h2}
//	fmt.Println(u)                                // decimal, like Python ints
//
// # Strings
//
// String entry points validate UTF-8 before hashing, then hash the encoded
// bytes:
//
//	h, err := mmr3.HashString32("日本語", 0)
//	if errors.Is(err, mmr3.ErrInvalidUTF8) { ... }
//
// # Width Dispatch
//
// Hash and HashString select the variant at runtime and return a big.Int so
// signed and unsigned results of both widths share one type:
//
//	v, err := mmr3.HashString(mmr3.Bits128, "foo", 42, true)
//
// # Batch Hashing
//
// HashBatch applies Hash32 elementwise and preserves the input shape:
//
//	keys, _ := mmr3.NewArray([]string{"a", "b", "c", "d"}, 2, 2)
//	out, _ := mmr3.HashBatch(ctx, keys, 0, mmr3.WithWorkers(4))
//	out.Shape() // [2 2]
//
// Batches can share worker slots, an output memory budget and a byte
// throughput limit through a resource.Controller.
//
// # Concurrency
//
// Every function is pure and safe for concurrent use. Nothing is cached and
// no state is shared between calls.
package mmr3
