//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package fsstore

import "os"

func umask() os.FileMode { return 0 }
