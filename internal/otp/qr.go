package otp

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// QRCode renders uri as a block-character QR code for the terminal.
func QRCode(uri string) (string, error) {
	q, err := qrcode.New(uri, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("error encoding qr code: %w", err)
	}
	return q.ToSmallString(false), nil
}

// WriteQRCodePNG writes uri as a size×size PNG image to path.
func WriteQRCodePNG(uri, path string, size int) error {
	if err := qrcode.WriteFile(uri, qrcode.Medium, size, path); err != nil {
		return fmt.Errorf("error writing qr code: %w", err)
	}
	return nil
}
