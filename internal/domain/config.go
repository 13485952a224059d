package domain

import "fmt"

// Config represents the qr configuration loaded from config.yaml.
type Config struct {
	Image       ImageConfig
	Directories DirectoriesConfig
	Progress    ProgressConfig
	Logging     LoggingConfig
}

type ImageConfig struct {
	Size        int
	Recovery    RecoveryLevel
	JPEGQuality int
}

type DirectoriesConfig struct {
	Create CreatePolicy
}

type ProgressConfig struct {
	Enabled bool
	Steps   int
}

type LoggingConfig struct {
	Dir   string
	Debug bool
}

// RecoveryLevel is the QR error correction level passed to the encoder.
type RecoveryLevel string

const (
	RecoveryLow     RecoveryLevel = "low"
	RecoveryMedium  RecoveryLevel = "medium"
	RecoveryHigh    RecoveryLevel = "high"
	RecoveryHighest RecoveryLevel = "highest"
)

// CreatePolicy decides what happens when the target directory is missing.
type CreatePolicy string

const (
	CreateAsk    CreatePolicy = "ask"
	CreateAlways CreatePolicy = "always"
)

const (
	MinImageSize = 21
	MaxImageSize = 4096
)

// DefaultConfig provides sane defaults if config.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Image: ImageConfig{
			Size:        256,
			Recovery:    RecoveryMedium,
			JPEGQuality: 90,
		},
		Directories: DirectoriesConfig{Create: CreateAsk},
		Progress: ProgressConfig{
			Enabled: true,
			Steps:   100,
		},
	}
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.Image.Size < MinImageSize || c.Image.Size > MaxImageSize:
		return fmt.Errorf("image.size must be within %d..%d, got %d", MinImageSize, MaxImageSize, c.Image.Size)
	case c.Image.JPEGQuality < 1 || c.Image.JPEGQuality > 100:
		return fmt.Errorf("image.jpeg_quality must be within 1..100, got %d", c.Image.JPEGQuality)
	case c.Progress.Steps < 1:
		return fmt.Errorf("progress.steps must be positive, got %d", c.Progress.Steps)
	}

	switch c.Image.Recovery {
	case RecoveryLow, RecoveryMedium, RecoveryHigh, RecoveryHighest:
	default:
		return fmt.Errorf("image.recovery must be low|medium|high|highest, got %q", c.Image.Recovery)
	}

	switch c.Directories.Create {
	case CreateAsk, CreateAlways:
	default:
		return fmt.Errorf("directories.create must be ask|always, got %q", c.Directories.Create)
	}
	return nil
}
