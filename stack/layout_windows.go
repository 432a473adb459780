//go:build windows

package stack

import "github.com/jamesxia20181001/prs/internal/vmem"

// Windows runs the vectored exception handler on the stack that
// faulted, and just entering the handler burns more than a page before
// any syscall it makes. A guard page arms the overflow trap and
// extraPages of plain rw pages below it absorb the handler's own
// frames so the trap itself does not overflow:
//
//	[bottom | no access ... | rw spill pages | guard page | rw pages | top]
//
// The trap always fires on the guard page directly below the committed
// region, so growth is a fixed step of guard plus spill pages and never
// needs the exact fault depth.
const extraPages = 3

const overheadPages = 1 + extraPages

// placeGuard lays the spill pages and the guard page directly below
// limit, the lowest committed address. On growth the same call re-lays
// them below the new, lower limit; the pages they previously occupied
// get folded into the committed region by the caller's commit.
func (a *Allocator) placeGuard(limit uintptr) error {
	ps := a.pageSize
	spill := limit - overheadPages*ps
	guard := limit - ps
	if err := vmem.Commit(spill, extraPages*ps, vmem.Read|vmem.Write); err != nil {
		return err
	}
	return vmem.Commit(guard, ps, vmem.Read|vmem.Write|vmem.Guard)
}

// growTarget advances the committed size by the fixed guard-plus-spill
// step, keeping room below the new limit to re-lay that same step.
func (a *Allocator) growTarget(top, oldSize, failedPtr uintptr) (newSize, commitSize uintptr, err error) {
	_ = failedPtr
	step := overheadPages * a.pageSize
	newSize = oldSize + step
	// Addition form: maxSize-step wraps when the ceiling is smaller
	// than one growth step.
	if newSize+step > a.maxSize {
		return 0, 0, ErrSizeLimit
	}
	return newSize, step, nil
}
