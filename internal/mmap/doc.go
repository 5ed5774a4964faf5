// Package mmap provides read-only memory-mapped file access for zero-copy
// graph storage.
//
// # Usage
//
//	m, err := mmap.Open("web.targets", mmap.AccessRandom)
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes()
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with madvise(2) for access hints
//   - Windows: CreateFileMapping/MapViewOfFile (Advise is a no-op)
//
// # Thread Safety
//
// A Mapping is safe for concurrent reads. Close is idempotent and guarded by
// an atomic flag, but callers must not touch slices obtained from Bytes after
// Close returns.
package mmap
