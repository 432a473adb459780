//go:build windows

package vmem

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// Reserve claims size bytes of address space with no backing memory and
// no access. Touching any page of the range faults until it is committed.
func Reserve(size uintptr) (uintptr, error) {
	addr, err := windows.VirtualAlloc(0, size, windows.MEM_RESERVE, windows.PAGE_NOACCESS)
	if err != nil {
		return 0, fmt.Errorf("vmem: reserve %d bytes: %w", size, err)
	}
	return addr, nil
}

// Commit backs [addr, addr+size) of an existing reservation with the
// given protection. addr and size must be page-aligned. Commit is a
// single VirtualAlloc call with no allocation, so it stays safe to
// invoke from a vectored-exception-handler context.
func Commit(addr, size uintptr, flags Flag) error {
	prot := uint32(windows.PAGE_NOACCESS)
	switch {
	case flags&Write != 0:
		prot = windows.PAGE_READWRITE
	case flags&Read != 0:
		prot = windows.PAGE_READONLY
	}
	if flags&Guard != 0 {
		prot |= windows.PAGE_GUARD
	}
	if _, err := windows.VirtualAlloc(addr, size, windows.MEM_COMMIT, prot); err != nil {
		return fmt.Errorf("vmem: commit %d bytes at %#x: %w", size, addr, err)
	}
	return nil
}

// Release unmaps an entire reservation previously obtained from Reserve.
// MEM_RELEASE frees the reservation and every committed page in it; the
// size argument is unused because VirtualFree requires zero there.
func Release(addr, size uintptr) error {
	_ = size
	if err := windows.VirtualFree(addr, 0, windows.MEM_RELEASE); err != nil {
		return fmt.Errorf("vmem: release reservation at %#x: %w", addr, err)
	}
	return nil
}
