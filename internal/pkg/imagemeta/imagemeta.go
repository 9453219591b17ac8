// Package imagemeta sniffs image dimensions from uploaded bytes.
package imagemeta

import (
	"bytes"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Dimensions decodes only the image header and returns its width and height.
// ok is false when the bytes are not a decodable image (e.g. webp); callers
// store NULL dimensions in that case rather than rejecting the upload.
func Dimensions(data []byte) (width, height int, ok bool) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, false
	}
	return cfg.Width, cfg.Height, true
}
