//go:build !windows

package stack

import "github.com/jamesxia20181001/prs/internal/bitops"

// POSIX delivers the overflow trap on an alternate signal stack
// (sigaltstack), so the handler's own frames never touch the faulting
// stack and nothing extra has to stay committed below the accessible
// region:
//
//	[bottom | no access ... | rw pages | top]
//
// Overflow is detected by the fault on the uncommitted pages themselves.
// Note that the handler grows the stack with mprotect even though POSIX
// never promises that call is async-signal-safe; in practice it is a
// plain syscall everywhere this runs.
const overheadPages = 0

func (a *Allocator) placeGuard(limit uintptr) error { return nil }

// growTarget sizes the new committed region exactly from the faulting
// address. A fault address already inside the committed region means
// the handler invoked growth for a trap that was not an overflow; that
// is a handler bug and must surface immediately, not be recomputed
// around.
func (a *Allocator) growTarget(top, oldSize, failedPtr uintptr) (newSize, commitSize uintptr, err error) {
	required := top - failedPtr
	if required <= oldSize {
		panic("stack: grow invoked for an address inside the committed region")
	}
	newSize = bitops.AlignUp(required, a.pageSize)
	if newSize > a.maxSize {
		return 0, 0, ErrSizeLimit
	}
	return newSize, newSize - oldSize, nil
}
