package domain

import (
	"fmt"
	"strings"
)

// Format is the raster format of the saved image.
type Format int

const (
	FormatUnset Format = iota
	FormatPNG
	FormatJPEG
)

// FormatChoices are the answers accepted by the format prompt, in order.
var FormatChoices = []string{"1", "2"}

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	default:
		return "unset"
	}
}

// Extension returns the file extension (with the leading dot) for f.
func (f Format) Extension() string {
	switch f {
	case FormatPNG:
		return ".png"
	case FormatJPEG:
		return ".jpg"
	default:
		return ""
	}
}

// ParseFormat accepts png, jpg and jpeg in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	default:
		return FormatUnset, fmt.Errorf("unsupported format %q (expected png|jpg)", s)
	}
}

// FormatFromChoice maps a format prompt answer ("1" or "2") to a Format.
func FormatFromChoice(choice string) (Format, error) {
	switch strings.TrimSpace(choice) {
	case "1":
		return FormatPNG, nil
	case "2":
		return FormatJPEG, nil
	default:
		return FormatUnset, fmt.Errorf("invalid format choice %q", choice)
	}
}
