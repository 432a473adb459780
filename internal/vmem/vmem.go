// Package vmem provides the virtual-memory primitives consumed by the
// stack allocator: reserving address space without backing it, committing
// sub-ranges with access protection, and releasing whole reservations.
//
// Addresses are plain uintptr values. A reservation obtained from Reserve
// is not tracked by the Go runtime and must be returned with Release.
package vmem

import "os"

// Flag is a set of protection flags for Commit.
type Flag uint8

const (
	// Read makes the committed range readable.
	Read Flag = 1 << iota

	// Write makes the committed range writable.
	Write

	// Guard arms the committed range as a guard region: the first access
	// raises a trap and disarms it. Honored on Windows only; the POSIX
	// implementations have no equivalent and ignore it.
	Guard
)

// PageSize returns the system page size in bytes. Always a power of two.
func PageSize() uintptr {
	return uintptr(os.Getpagesize())
}
