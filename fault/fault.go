// Package fault couples a stack from the allocator with the trap
// handling that drives its growth. It owns the (top, committed size)
// pair the allocator itself refuses to track, so callers cannot pass a
// mismatched pair back in.
//
// The Go runtime owns the process signal handlers, so instead of a raw
// SIGSEGV handler the package uses debug.SetPanicOnFault: a fault inside
// a managed stack surfaces as a panic carrying the faulting address,
// which Handle turns into a Grow and a rerun.
package fault

import (
	"runtime/debug"

	"github.com/jamesxia20181001/prs/stack"
)

// Stack is the owned handle for one allocator-backed stack.
// It must not be shared between tasks; see the stack package's
// ownership rules.
type Stack struct {
	alloc *stack.Allocator
	top   uintptr
	size  uintptr
}

// New creates a stack of the given requested size and wraps it in an
// owned handle. Errors are the allocator's: stack.ErrSizeLimit or a
// wrapped OS failure.
func New(a *stack.Allocator, size uintptr) (*Stack, error) {
	top, committed, err := a.Create(size)
	if err != nil {
		return nil, err
	}
	return &Stack{alloc: a, top: top, size: committed}, nil
}

// Top returns the stack's top address, one past its highest usable
// byte. It never changes for the lifetime of the handle.
func (s *Stack) Top() uintptr { return s.top }

// Size returns the currently committed size in bytes.
func (s *Stack) Size() uintptr { return s.size }

// Contains reports whether addr falls inside this stack's reservation.
func (s *Stack) Contains(addr uintptr) bool {
	return s.alloc.AddressInRange(s.top, addr)
}

// Close releases the stack's reservation. Every address derived from
// the stack is dangling afterwards and the handle must not be reused.
func (s *Stack) Close() {
	s.alloc.Destroy(s.top)
	s.top, s.size = 0, 0
}

// addresser is satisfied by the runtime's fault panics once
// panic-on-fault is enabled.
type addresser interface{ Addr() uintptr }

// Handle runs fn, growing the stack whenever fn faults on an address
// inside the stack's reservation and then running fn again from the
// start — fn must tolerate being rerun. Faults outside the stack and
// all other panics propagate unchanged. When the stack cannot grow any
// further, Handle returns the allocator's error and the caller should
// fail the owning task as out of stack space.
func (s *Stack) Handle(fn func()) error {
	for {
		addr, faulted := s.run(fn)
		if !faulted {
			return nil
		}
		newSize, err := s.alloc.Grow(s.top, s.size, addr)
		if err != nil {
			return err
		}
		s.size = newSize
	}
}

func (s *Stack) run(fn func()) (addr uintptr, faulted bool) {
	old := debug.SetPanicOnFault(true)
	defer debug.SetPanicOnFault(old)
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		f, ok := r.(addresser)
		if !ok || !s.Contains(f.Addr()) {
			panic(r)
		}
		addr, faulted = f.Addr(), true
	}()
	fn()
	return 0, false
}
