package staticgraph

import (
	"fmt"
	"unsafe"
)

// isLittleEndian reports whether the host stores integers little-endian.
func isLittleEndian() bool {
	var test uint16 = 0x0001
	return *(*byte)(unsafe.Pointer(&test)) == 1
}

func widthOf[T Fixed]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// castSlice reinterprets b as a slice of T without copying.
func castSlice[T Fixed](b []byte) ([]T, error) {
	width := widthOf[T]()
	if len(b)%width != 0 {
		return nil, fmt.Errorf("%w: %d bytes, width %d", ErrMisalignedFile, len(b), width)
	}
	if len(b) == 0 {
		return nil, nil
	}

	var zero T
	ptr := uintptr(unsafe.Pointer(&b[0]))
	if ptr%unsafe.Alignof(zero) != 0 {
		return nil, fmt.Errorf("%w: address 0x%x", ErrUnalignedAccess, ptr)
	}

	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), len(b)/width), nil
}

// asBytes exposes the memory of s as raw bytes without copying.
func asBytes[T Fixed](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*widthOf[T]())
}
