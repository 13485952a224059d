package ports

import "github.com/clay-k0/QR/internal/domain"

// Encoder turns text into a QR code image.
type Encoder interface {
	Encode(text string) (domain.QRImage, error)
}
