// Package testutil provides testing utilities for mmr3.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG for generating hash keys.
//
// # Key Generation
//
//	rng := testutil.NewRNG(seed)
//	b := rng.Bytes(37)            // raw bytes, any value
//	s := rng.ASCIIString(10)      // lowercase letters
//	u := rng.UTF8String(8)        // 8 runes, mixed 1-4 byte encodings
//	keys := rng.Keys(1000, 64)    // 1000 strings of length [0, 64]
//
// # Tail Coverage
//
//	for _, key := range testutil.Prefixes(data) { ... } // data[:0], data[:1], ...
package testutil
