package domain

import (
	"errors"
	"path/filepath"
	"strings"
)

// InvocationRequest is everything needed to produce one image file.
// It is a value type; build it with NewInvocationRequest.
type InvocationRequest struct {
	Text      string
	Directory string
	FileName  string // without extension
	Format    Format
}

func NewInvocationRequest(text, dir, fileName string, format Format) (InvocationRequest, error) {
	if format == FormatUnset {
		return InvocationRequest{}, UsageError("domain.request", errors.New("format is required"))
	}
	d, err := NormalizeDirectory(dir)
	if err != nil {
		return InvocationRequest{}, err
	}
	name, err := StripExtension(fileName)
	if err != nil {
		return InvocationRequest{}, err
	}
	return InvocationRequest{
		Text:      text,
		Directory: d,
		FileName:  name,
		Format:    format,
	}, nil
}

// Path is the destination file path: directory/fileName.extension.
func (r InvocationRequest) Path() string {
	return DestinationPath(r.Directory, r.FileName, r.Format)
}

// NormalizeDirectory cleans dir. An empty directory is a usage error.
func NormalizeDirectory(dir string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return "", UsageError("domain.directory", errors.New("directory is empty"))
	}
	return filepath.Clean(dir), nil
}

// StripExtension drops everything from the first dot onward, so
// "code.bmp" and "code.tar.gz" both become "code".
func StripExtension(name string) (string, error) {
	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return "", UsageError("domain.file_name", errors.New("file name must not contain path separators"))
	}
	base, _, _ := strings.Cut(name, ".")
	if strings.TrimSpace(base) == "" {
		return "", UsageError("domain.file_name", errors.New("file name is empty after removing the extension"))
	}
	return base, nil
}

func DestinationPath(dir, baseName string, format Format) string {
	return filepath.Join(dir, baseName+format.Extension())
}
