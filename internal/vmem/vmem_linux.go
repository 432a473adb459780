package vmem

import "golang.org/x/sys/unix"

// MAP_NORESERVE keeps the kernel from charging swap for the whole
// reservation up front; only committed pages count.
const reserveFlags = unix.MAP_PRIVATE | unix.MAP_ANON | unix.MAP_NORESERVE
