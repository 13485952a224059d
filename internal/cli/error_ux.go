package cli

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/clay-k0/QR/internal/domain"
)

func userMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.Canceled) {
		return "Cancelled"
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindUsage:
			if oe.Err != nil {
				return oe.Err.Error()
			}
			return "Invalid arguments"

		case domain.KindRefused:
			return "Cancelled by user"

		case domain.KindInputClosed:
			return "Input closed before a valid choice was entered"

		case domain.KindEncode:
			return "Could not encode the text as a QR code: " + rootCause(err)

		case domain.KindIO:
			if strings.Contains(oe.Op, "mkdir") {
				return "Failed to create " + oe.Path + ": " + rootCause(err)
			}
			if oe.Path != "" {
				return "QR code failed to save (" + oe.Path + "): " + rootCause(err)
			}
			return "I/O error: " + rootCause(err)

		case domain.KindNotFound:
			if strings.HasPrefix(oe.Op, "config.") {
				return "Config file not found: " + oe.Path
			}
			return "Not found"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}
			return "Invalid config " + base + ": " + rootCause(err)
		}
	}

	return "Unexpected error: " + err.Error()
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case domain.IsKind(err, domain.KindUsage):
		return 2
	default:
		return 1
	}
}

func rootCause(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
