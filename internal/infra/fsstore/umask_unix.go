//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package fsstore

import (
	"os"
	"syscall"
)

// umask reads the process umask. Reading it requires setting it, so it is
// restored immediately.
func umask() os.FileMode {
	old := syscall.Umask(0)
	syscall.Umask(old)
	return os.FileMode(old) & os.ModePerm
}
