//go:build darwin

package writer

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile flushes file data to stable storage. macOS fsync does not reach
// the platter, so F_FULLFSYNC is used.
func syncFile(f *os.File) error {
	_, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0)
	return err
}
