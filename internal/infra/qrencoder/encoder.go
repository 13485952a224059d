package qrencoder

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/clay-k0/QR/internal/domain"
	"github.com/clay-k0/QR/internal/ports"
)

// Encoder renders text as a square QR code image of a fixed pixel size.
type Encoder struct {
	size  int
	level qrcode.RecoveryLevel
}

type Option func(*Encoder)

func WithSize(px int) Option {
	return func(e *Encoder) {
		if px > 0 {
			e.size = px
		}
	}
}

func WithRecovery(r domain.RecoveryLevel) Option {
	return func(e *Encoder) { e.level = recoveryLevel(r) }
}

func New(opts ...Option) *Encoder {
	e := &Encoder{size: 256, level: qrcode.Medium}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var _ ports.Encoder = (*Encoder)(nil)

// Encode builds the symbol once and renders both the raster image and the
// terminal art from it.
func (e *Encoder) Encode(text string) (domain.QRImage, error) {
	q, err := qrcode.New(text, e.level)
	if err != nil {
		return domain.QRImage{}, fmt.Errorf("qrencoder.encode: %w", err)
	}
	return domain.QRImage{
		Image: q.Image(e.size),
		Art:   q.ToSmallString(false),
	}, nil
}

func recoveryLevel(r domain.RecoveryLevel) qrcode.RecoveryLevel {
	switch r {
	case domain.RecoveryLow:
		return qrcode.Low
	case domain.RecoveryHigh:
		return qrcode.High
	case domain.RecoveryHighest:
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}
