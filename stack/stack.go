package stack

import (
	"fmt"

	"github.com/jamesxia20181001/prs/internal/bitops"
	"github.com/jamesxia20181001/prs/internal/vmem"
)

// DefaultMaxSize is a reasonable ceiling for task stacks when the
// runtime does not configure its own.
const DefaultMaxSize = 1 << 20

// Allocator creates, grows and destroys task stacks. All stacks from
// one Allocator share the same fixed ceiling, set once at construction.
// The Allocator itself is stateless and safe for concurrent use across
// distinct stacks; a single stack must only ever be operated on by the
// one task that owns it.
type Allocator struct {
	maxSize  uintptr
	pageSize uintptr
}

// New returns an Allocator whose stacks can grow up to maxSize bytes.
// maxSize must be a positive multiple of the system page size.
func New(maxSize uintptr) *Allocator {
	pageSize := vmem.PageSize()
	if maxSize == 0 || !bitops.IsAligned(maxSize, pageSize) {
		panic("stack: max size must be a positive page multiple")
	}
	return &Allocator{maxSize: maxSize, pageSize: pageSize}
}

// MaxSize returns the ceiling every stack's reservation is sized to.
func (a *Allocator) MaxSize() uintptr { return a.maxSize }

// Create reserves address space for one stack and commits its initial
// pages. size is the requested usable size and must be positive; it is
// rounded up to a page multiple, which is what comes back as committed.
//
// The returned top is the highest address of the reservation, one past
// the last usable byte. The stack grows downward from there, and top
// never changes for the lifetime of the stack. Create fails with
// ErrSizeLimit when the rounded size cannot fit under the ceiling.
func (a *Allocator) Create(size uintptr) (top, committed uintptr, err error) {
	if size == 0 {
		panic("stack: zero-sized stack requested")
	}

	// Raw size first: AlignUp wraps to zero for sizes within a page of
	// the address-space limit.
	if size > a.maxSize {
		return 0, 0, ErrSizeLimit
	}
	aligned := bitops.AlignUp(size, a.pageSize)
	if aligned+overheadPages*a.pageSize > a.maxSize {
		return 0, 0, ErrSizeLimit
	}

	bottom, err := vmem.Reserve(a.maxSize)
	if err != nil {
		return 0, 0, fmt.Errorf("stack: %w", err)
	}
	limit := bottom + (a.maxSize - aligned)

	if err := a.placeGuard(limit); err != nil {
		_ = vmem.Release(bottom, a.maxSize)
		return 0, 0, fmt.Errorf("stack: %w", err)
	}
	if err := vmem.Commit(limit, aligned, vmem.Read|vmem.Write); err != nil {
		_ = vmem.Release(bottom, a.maxSize)
		return 0, 0, fmt.Errorf("stack: %w", err)
	}

	return bottom + a.maxSize, aligned, nil
}

// Destroy releases the entire reservation of a stack. top must be a
// value previously returned by Create; every address derived from the
// stack is dangling afterwards. Release of a valid reservation does not
// fail, so an error here means the handle was corrupt and the process
// state is no longer trustworthy.
func (a *Allocator) Destroy(top uintptr) {
	if top == 0 {
		panic("stack: destroy of a nil stack")
	}
	if err := vmem.Release(top-a.maxSize, a.maxSize); err != nil {
		panic(fmt.Sprintf("stack: destroy: %v", err))
	}
}

// Grow extends the committed region of a stack downward so that
// failedPtr, the address whose access trapped, becomes accessible. top
// must come from Create and oldSize must be the committed size from
// Create or the previous Grow. On success the new committed size is
// returned; top is unchanged. ErrSizeLimit means the stack is exhausted
// and nothing was committed.
//
// Grow is called from the overflow trap handler, so it performs no
// allocation and nothing beyond the commit primitive itself.
func (a *Allocator) Grow(top, oldSize, failedPtr uintptr) (uintptr, error) {
	if top == 0 {
		panic("stack: grow of a nil stack")
	}

	newSize, commitSize, err := a.growTarget(top, oldSize, failedPtr)
	if err != nil {
		return 0, err
	}
	limit := top - newSize

	if err := a.placeGuard(limit); err != nil {
		return 0, fmt.Errorf("stack: %w", err)
	}
	if err := vmem.Commit(limit, commitSize, vmem.Read|vmem.Write); err != nil {
		return 0, fmt.Errorf("stack: %w", err)
	}

	return newSize, nil
}

// AddressInRange reports whether addr falls inside the reservation of
// the stack whose top address is top, committed or not. The range is
// [top-MaxSize, top): the top address itself is one past the stack.
func (a *Allocator) AddressInRange(top, addr uintptr) bool {
	return addr >= top-a.maxSize && addr < top
}
