// Package conv provides safe integer conversion and shape arithmetic.
//
// These functions perform bounds checking to prevent integer overflow
// when converting between integer types or multiplying array dimensions.
//
// Use cases:
//   - Validating user input (CLI seeds, array shapes)
//   - Sizing output buffers from untrusted dimensions
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
