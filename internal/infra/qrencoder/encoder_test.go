package qrencoder

import (
	"strings"
	"testing"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/clay-k0/QR/internal/domain"
)

func TestEncode_FixedSize(t *testing.T) {
	for _, size := range []int{128, 256} {
		qr, err := New(WithSize(size)).Encode("https://example.com")
		if err != nil {
			t.Fatalf("size %d: unexpected error: %v", size, err)
		}
		b := qr.Image.Bounds()
		if b.Dx() != size || b.Dy() != size {
			t.Fatalf("expected %dx%d image, got %v", size, size, b)
		}
	}
}

func TestEncode_TooLong(t *testing.T) {
	_, err := New(WithRecovery(domain.RecoveryHighest)).Encode(strings.Repeat("#", 4000))
	if err == nil {
		t.Fatalf("expected error for content beyond QR capacity")
	}
}

func TestRecoveryLevel(t *testing.T) {
	cases := []struct {
		in   domain.RecoveryLevel
		want qrcode.RecoveryLevel
	}{
		{domain.RecoveryLow, qrcode.Low},
		{domain.RecoveryMedium, qrcode.Medium},
		{domain.RecoveryHigh, qrcode.High},
		{domain.RecoveryHighest, qrcode.Highest},
		{"", qrcode.Medium},
	}
	for _, c := range cases {
		if got := recoveryLevel(c.in); got != c.want {
			t.Errorf("recoveryLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestEncode_ArtMatchesImage(t *testing.T) {
	qr, err := New(WithSize(210)).Encode("hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// At least 21 modules, two rows per line.
	lines := strings.Split(strings.TrimRight(qr.Art, "\n"), "\n")
	if len(lines) < 11 {
		t.Fatalf("expected multi-line art, got %d lines:\n%s", len(lines), qr.Art)
	}
	if qr.Image.Bounds().Dx() != 210 {
		t.Fatalf("expected 210px image, got %v", qr.Image.Bounds())
	}
}
