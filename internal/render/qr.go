package render

import (
	"bytes"
	"image"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"
)

// shareQR renders a QR code for the card identity, used on the back face.
func shareQR(text string, size int) (image.Image, error) {
	b, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	return png.Decode(bytes.NewReader(b))
}
