package assets

import (
	"image"

	"github.com/skip2/go-qrcode"
)

// Optional QR badge linking to the store listing.
const (
	QRBadgeSize = 256
	QRBadgeFile = "install-qr-256x256.png"
)

// InstallBadge returns a QR code image for the listing URL.
// If url is empty, it returns (nil, nil).
func InstallBadge(url string, sizePx int) (image.Image, error) {
	if url == "" {
		return nil, nil
	}
	if sizePx <= 0 {
		sizePx = QRBadgeSize
	}

	code, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return nil, err
	}

	return code.Image(sizePx), nil
}
