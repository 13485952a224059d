package config

import (
	"strings"

	"github.com/clay-k0/QR/internal/domain"
)

// MapConfig applies parsed values on top of defaults and validates the result.
func MapConfig(path string, y YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	img := y.QR.Image
	if img.Size != nil {
		cfg.Image.Size = *img.Size
	}
	if r := strings.TrimSpace(img.Recovery); r != "" {
		cfg.Image.Recovery = domain.RecoveryLevel(strings.ToLower(r))
	}
	if img.JPEGQuality != nil {
		cfg.Image.JPEGQuality = *img.JPEGQuality
	}

	if c := strings.TrimSpace(y.QR.Directories.Create); c != "" {
		cfg.Directories.Create = domain.CreatePolicy(strings.ToLower(c))
	}

	if y.QR.Progress.Enabled != nil {
		cfg.Progress.Enabled = *y.QR.Progress.Enabled
	}
	if y.QR.Progress.Steps != nil {
		cfg.Progress.Steps = *y.QR.Progress.Steps
	}

	if d := strings.TrimSpace(y.QR.Logging.Dir); d != "" {
		cfg.Logging.Dir = d
	}
	if y.QR.Logging.Debug != nil {
		cfg.Logging.Debug = *y.QR.Logging.Debug
	}

	if err := cfg.Validate(); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.map",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return cfg, nil
}
