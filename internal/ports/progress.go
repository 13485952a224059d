package ports

import "context"

// ProgressIndicator renders a decorative progress display.
type ProgressIndicator interface {
	Run(ctx context.Context) error
}
