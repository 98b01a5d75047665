package qrcode

import (
	"fmt"

	qr "github.com/skip2/go-qrcode"
)

// DefaultSize is the PNG edge length in pixels.
const DefaultSize = 256

// JoinURL is the address a second screen opens to attach to a session.
func JoinURL(host, sessionID string) string {
	return fmt.Sprintf("http://%s/?session=%s", host, sessionID)
}

// Generate creates a QR code PNG image for the given URL.
func Generate(url string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}
	png, err := qr.Encode(url, qr.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}
