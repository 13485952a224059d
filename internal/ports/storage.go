package ports

import (
	"image"

	"github.com/clay-k0/QR/internal/domain"
)

// DirectoryStore checks and creates target directories.
type DirectoryStore interface {
	Exists(dir string) (bool, error)
	Create(dir string) error
}

// ImageStore checks for and writes encoded image files.
type ImageStore interface {
	Exists(path string) (bool, error)
	Save(path string, img image.Image, format domain.Format) error
}
