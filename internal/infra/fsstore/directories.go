package fsstore

import (
	"errors"
	"os"
	"syscall"

	"github.com/spf13/afero"

	"github.com/clay-k0/QR/internal/domain"
	"github.com/clay-k0/QR/internal/ports"
)

// Directories checks and creates target directories on fs.
type Directories struct {
	fs afero.Fs
}

func NewDirectories(fs afero.Fs) *Directories {
	return &Directories{fs: fs}
}

var _ ports.DirectoryStore = (*Directories)(nil)

// Exists reports whether dir is an existing directory. A regular file at dir
// is an error; a regular file in one of its parents reads as "missing" and
// surfaces later as a Create failure.
func (d *Directories) Exists(dir string) (bool, error) {
	info, err := d.fs.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return false, nil
		}
		return false, &domain.OpError{Op: "fsstore.stat_dir", Kind: domain.KindIO, Path: dir, Err: err}
	}
	if !info.IsDir() {
		return false, &domain.OpError{Op: "fsstore.stat_dir", Kind: domain.KindIO, Path: dir, Err: errors.New("not a directory")}
	}
	return true, nil
}

// Create makes dir along with any missing parents.
func (d *Directories) Create(dir string) error {
	if err := d.fs.MkdirAll(dir, 0o755); err != nil {
		return &domain.OpError{Op: "fsstore.mkdir", Kind: domain.KindIO, Path: dir, Err: err}
	}
	return nil
}
