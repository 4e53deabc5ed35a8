// Package fs provides a filesystem abstraction for testability and fault injection.
//
// The package defines two key interfaces:
//
//   - [File]: an open file with read/write/sync capabilities
//   - [FileSystem]: open, create, rename and remove
//
// # Implementations
//
//   - [LocalFS]: production implementation using the os package
//   - [FaultyFS]: test utility that injects I/O errors
//
// # Usage
//
// Output files are written with [WriteAtomic]:
//
//	err := fs.WriteAtomic(fs.Default, "hashes.txt", func(w io.Writer) error {
//		_, err := io.WriteString(w, "613153351\thello\n")
//		return err
//	})
//
// Tests can inject [FaultyFS] to simulate failures:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.SetLimit(1024) // Fail after 1KB written
package fs
