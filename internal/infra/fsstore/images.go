package fsstore

import (
	"errors"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/spf13/afero"

	"github.com/clay-k0/QR/internal/domain"
	"github.com/clay-k0/QR/internal/ports"
)

// Images writes encoded images to fs. Writes go through a temp file in the
// destination directory and are renamed into place. An overwritten file keeps
// its permissions; a new one gets 0644 minus the process umask.
type Images struct {
	fs          afero.Fs
	jpegQuality int
	newFileMode os.FileMode
}

type Option func(*Images)

func WithJPEGQuality(q int) Option {
	return func(s *Images) {
		if q >= 1 && q <= 100 {
			s.jpegQuality = q
		}
	}
}

// WithFileMode sets the permissions of newly created files.
func WithFileMode(m os.FileMode) Option {
	return func(s *Images) { s.newFileMode = m.Perm() }
}

func NewImages(fs afero.Fs, opts ...Option) *Images {
	s := &Images{fs: fs, jpegQuality: 90, newFileMode: 0o644 &^ umask()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ImageStore = (*Images)(nil)

func (s *Images) Exists(path string) (bool, error) {
	_, err := s.fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, &domain.OpError{Op: "fsstore.stat_file", Kind: domain.KindIO, Path: path, Err: err}
}

func (s *Images) Save(path string, img image.Image, format domain.Format) error {
	imgFormat, err := imagingFormat(format)
	if err != nil {
		return &domain.OpError{Op: "fsstore.format", Kind: domain.KindUsage, Path: path, Err: err}
	}

	mode := s.newFileMode
	if info, err := s.fs.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := afero.TempFile(s.fs, filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &domain.OpError{Op: "fsstore.create_temp", Kind: domain.KindIO, Path: path, Err: err}
	}
	tmpName := tmp.Name()

	encErr := imaging.Encode(tmp, img, imgFormat, imaging.JPEGQuality(s.jpegQuality))
	closeErr := tmp.Close()
	if encErr == nil {
		encErr = closeErr
	}
	if encErr != nil {
		_ = s.fs.Remove(tmpName)
		return &domain.OpError{Op: "fsstore.write", Kind: domain.KindIO, Path: path, Err: encErr}
	}

	if err := s.fs.Chmod(tmpName, mode); err != nil {
		_ = s.fs.Remove(tmpName)
		return &domain.OpError{Op: "fsstore.chmod", Kind: domain.KindIO, Path: tmpName, Err: err}
	}
	if err := s.fs.Rename(tmpName, path); err != nil {
		_ = s.fs.Remove(tmpName)
		return &domain.OpError{Op: "fsstore.rename", Kind: domain.KindIO, Path: path, Err: err}
	}
	return nil
}

func imagingFormat(f domain.Format) (imaging.Format, error) {
	switch f {
	case domain.FormatPNG:
		return imaging.PNG, nil
	case domain.FormatJPEG:
		return imaging.JPEG, nil
	default:
		return 0, errors.New("no image format selected")
	}
}
