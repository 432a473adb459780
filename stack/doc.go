// Package stack allocates growable, overflow-trapping execution stacks
// for tasks, backed directly by the operating system's virtual memory.
//
// # Overview
//
// Every stack reserves a fixed ceiling's worth of address space but
// commits only the pages near the top. Stacks grow downward, so the
// value returned by Create is the highest address of the range and
// stays valid for the stack's whole lifetime: growth commits more pages
// below the accessible region without ever moving the top. When
// execution descends past the committed region the OS raises a trap; a
// fault handler may then call Grow to make the faulting address
// accessible and resume, or treat the stack as exhausted.
//
// # Operations
//
//   - Create(size): reserve the full ceiling, commit the tail pages
//   - Grow(top, oldSize, failedPtr): commit further pages downward
//   - Destroy(top): release the whole reservation
//   - AddressInRange(top, addr): does addr belong to this stack at all
//
// # Platform layout
//
// How the pages below the committed region are arranged differs by
// fault-handling model and is selected at build time:
//
// On Windows the exception handler runs on the stack that faulted, so a
// guard page arms the trap and a few spill pages below it keep the
// handler itself from overflowing (layout_windows.go).
//
// On POSIX systems the handler runs on an alternate signal stack, so
// uncommitted pages alone detect overflow and growth is sized exactly
// from the faulting address (layout_unix.go).
//
// # Ownership
//
// The allocator keeps no per-stack state. The caller holds the
// (top, committed size) pair and passes it back in; a stack belongs to
// exactly one task and must not be grown or destroyed concurrently.
// The fault package wraps the pair in an owned handle.
package stack
