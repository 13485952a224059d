package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/clay-k0/QR/internal/domain"
)

// DefaultPath is <user config dir>/qr/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "qr", "config.yaml"), nil
}

// Load reads the config at path. An empty path means DefaultPath, and a
// missing default file yields defaults; a missing explicit file is an error.
func Load(path string) (domain.Config, error) {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return domain.DefaultConfig(), nil
		}
		path = p
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y YAMLConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, y)
}
