// Package fs provides filesystem abstractions for testability and fault injection.
//
// The package defines two key interfaces:
//
//   - [File]: a file opened for writing with Sync support
//   - [FileSystem]: the open/rename/remove operations used to publish files
//
// # Implementations
//
//   - [LocalFS]: Production implementation using standard os package
//   - [FaultyFS]: Test utility for fault injection (simulate I/O errors)
//
// Tests can inject [FaultyFS] to simulate failures:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule(".targets", fs.Fault{FailAfterBytes: 16})
//
// Reads never go through this package: published graph files are mapped
// with internal/mmap.
package fs
