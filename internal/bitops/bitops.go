// Package bitops provides the bit-manipulation helpers used by the stack
// allocator. Alignment values must be powers of two; page sizes from the
// OS always are.
package bitops

// AlignUp returns n aligned up to the next multiple of align.
// align must be a non-zero power of two.
//
// Example:
//
//	AlignUp(1, 4096)    = 4096
//	AlignUp(4096, 4096) = 4096
//	AlignUp(4097, 4096) = 8192
func AlignUp(n, align uintptr) uintptr {
	return (n + align - 1) &^ (align - 1)
}

// IsAligned reports whether n is a multiple of align.
// align must be a non-zero power of two.
func IsAligned(n, align uintptr) bool {
	return n&(align-1) == 0
}

// IsPowerOfTwo reports whether n has exactly one bit set.
func IsPowerOfTwo(n uintptr) bool {
	return n != 0 && n&(n-1) == 0
}
