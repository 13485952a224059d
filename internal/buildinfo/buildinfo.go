package buildinfo

import "fmt"

// Set via -ldflags "-X github.com/clay-k0/QR/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("qr %s (commit=%s, date=%s)", Version, Commit, Date)
}
