package domain

import "image"

// QRImage is the single encoding produced per invocation. Image is what gets
// written to disk; Art is the same symbol drawn with block characters.
type QRImage struct {
	Image image.Image
	Art   string
}
