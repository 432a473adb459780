//go:build !unix && !windows

package vmem

import "errors"

var errUnsupported = errors.New("vmem: no virtual-memory primitives on this platform")

func Reserve(size uintptr) (uintptr, error) { return 0, errUnsupported }

func Commit(addr, size uintptr, flags Flag) error { return errUnsupported }

func Release(addr, size uintptr) error { return errUnsupported }
