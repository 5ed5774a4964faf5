package mmap

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/hupe1980/staticgraph/internal/conv"
)

// Mapping is one graph file mapped read-only into memory.
type Mapping struct {
	path    string
	data    []byte
	pattern atomic.Int32
	closed  atomic.Bool
	unmap   func([]byte) error
}

// Open maps the file at path read-only and applies pattern to the whole
// mapping. The descriptor is released before Open returns. Empty files yield
// an empty mapping that owns no memory.
func Open(path string, pattern AccessPattern) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	size, err := conv.Int64ToInt(fi.Size())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidSize, path, err)
	}

	m := &Mapping{path: path}
	if size > 0 {
		m.data, m.unmap, err = osMap(f, size)
		if err != nil {
			return nil, fmt.Errorf("mmap: map %s: %w", path, err)
		}
	}

	if pattern != AccessDefault {
		if err := m.Advise(pattern); err != nil {
			_ = m.Close()
			return nil, err
		}
	}

	return m, nil
}

// Path returns the mapped file's path.
func (m *Mapping) Path() string {
	return m.path
}

// Pattern returns the access hint last applied.
func (m *Mapping) Pattern() AccessPattern {
	return AccessPattern(m.pattern.Load())
}

// Bytes returns the mapped file contents, or nil once closed. The slice
// must not be used after Close.
func (m *Mapping) Bytes() []byte {
	if m.closed.Load() {
		return nil
	}
	return m.data
}

// Size returns the mapped length in bytes.
func (m *Mapping) Size() int {
	return len(m.data)
}

// Advise replaces the access hint for the whole mapping.
func (m *Mapping) Advise(pattern AccessPattern) error {
	if m.closed.Load() {
		return ErrClosed
	}
	if err := osAdvise(m.data, pattern); err != nil {
		return fmt.Errorf("mmap: advise %s %s: %w", m.path, pattern, err)
	}
	m.pattern.Store(int32(pattern))
	return nil
}

// Close unmaps the file. Only the first call does any work.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) || m.data == nil {
		return nil
	}
	if err := m.unmap(m.data); err != nil {
		return fmt.Errorf("mmap: unmap %s: %w", m.path, err)
	}
	return nil
}
