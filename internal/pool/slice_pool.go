package pool

import "sync"

// Typed slice pools for codec scratch space.
var (
	uint16SlicePool = sync.Pool{
		New: func() any { return &[]uint16{} },
	}
	uint32SlicePool = sync.Pool{
		New: func() any { return &[]uint32{} },
	}
)

// GetUint16Slice retrieves a uint16 slice of length size from the pool.
//
// The contents are not cleared. The caller must call the returned cleanup
// function once it no longer uses the slice.
//
// Example:
//
//	words, cleanup := pool.GetUint16Slice(len(src))
//	defer cleanup()
func GetUint16Slice(size int) ([]uint16, func()) {
	ptr, _ := uint16SlicePool.Get().(*[]uint16)
	if cap(*ptr) < size {
		*ptr = make([]uint16, size)
	}
	*ptr = (*ptr)[:size]

	return *ptr, func() { uint16SlicePool.Put(ptr) }
}

// GetUint32Slice retrieves a zeroed uint32 slice of length size from the pool.
//
// The caller must call the returned cleanup function once it no longer uses
// the slice.
func GetUint32Slice(size int) ([]uint32, func()) {
	ptr, _ := uint32SlicePool.Get().(*[]uint32)
	if cap(*ptr) < size {
		*ptr = make([]uint32, size)
	} else {
		*ptr = (*ptr)[:size]
		clear(*ptr)
	}

	return *ptr, func() { uint32SlicePool.Put(ptr) }
}
