//go:build unix

package vmem

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Reserve claims size bytes of address space with no backing memory and
// no access. Touching any page of the range faults until it is committed.
func Reserve(size uintptr) (uintptr, error) {
	b, err := unix.Mmap(-1, 0, int(size), unix.PROT_NONE, reserveFlags)
	if err != nil {
		return 0, fmt.Errorf("vmem: reserve %d bytes: %w", size, err)
	}
	return uintptr(unsafe.Pointer(&b[0])), nil
}

// Commit backs [addr, addr+size) of an existing reservation with the
// given protection. addr and size must be page-aligned. Guard is ignored
// here; overflow detection on POSIX comes from faulting on uncommitted
// pages, not from guard-flagged ones.
//
// Commit is a single mprotect call with no allocation, so it stays safe
// to invoke from a signal-handler context.
func Commit(addr, size uintptr, flags Flag) error {
	prot := 0
	if flags&Read != 0 {
		prot |= unix.PROT_READ
	}
	if flags&Write != 0 {
		prot |= unix.PROT_WRITE
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	if err := unix.Mprotect(b, prot); err != nil {
		return fmt.Errorf("vmem: commit %d bytes at %#x: %w", size, addr, err)
	}
	return nil
}

// Release unmaps an entire reservation previously obtained from Reserve.
// Committed sub-ranges are released along with it.
func Release(addr, size uintptr) error {
	b := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	if err := unix.Munmap(b); err != nil {
		return fmt.Errorf("vmem: release %d bytes at %#x: %w", size, addr, err)
	}
	return nil
}
