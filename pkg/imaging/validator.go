// Package imaging validates image uploads before they are forwarded to the
// upstream API. The dashboard never stores files itself; it only refuses to
// forward anything that is not a real image.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

var ErrTooLarge = errors.New("image exceeds the upload size limit")

// Magic byte signatures per allowed extension.
var magicBytes = map[string][][]byte{
	".jpg":  {{0xFF, 0xD8, 0xFF}},
	".jpeg": {{0xFF, 0xD8, 0xFF}},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	".gif":  {{0x47, 0x49, 0x46, 0x38, 0x37, 0x61}, {0x47, 0x49, 0x46, 0x38, 0x39, 0x61}},
	".webp": {{0x52, 0x49, 0x46, 0x46}}, // RIFF header
}

// ContentTypes maps allowed extensions to the content type sent on the
// multipart file part.
var ContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// Validate checks an upload three ways: extension whitelist, magic byte
// match, and an actual decode of the image header. Returns the content type
// to use when forwarding.
func Validate(filename string, data []byte, maxBytes int64) (string, error) {
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return "", ErrTooLarge
	}

	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := ContentTypes[ext]
	if !ok {
		return "", fmt.Errorf("image type not allowed: %q", ext)
	}

	if !matchesMagic(ext, data) {
		return "", errors.New("file content does not match its extension")
	}

	// Decode the header to confirm the bytes really are an image.
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("file is not a valid image: %w", err)
	}

	return contentType, nil
}

func matchesMagic(ext string, data []byte) bool {
	if len(data) < 4 {
		return false
	}
	for _, sig := range magicBytes[ext] {
		if bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}
