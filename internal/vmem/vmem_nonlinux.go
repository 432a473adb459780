//go:build unix && !linux

package vmem

import "golang.org/x/sys/unix"

// Darwin and the BSDs do not reserve swap for PROT_NONE anonymous
// mappings, so no MAP_NORESERVE is needed (or defined) there.
const reserveFlags = unix.MAP_PRIVATE | unix.MAP_ANON
