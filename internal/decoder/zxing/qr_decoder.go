package zxing

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"

	"upiscan/internal/port"
)

type qrDecoder struct {
	tryHarder bool
}

// NewQRDecoder creates a BarcodeDecoder that recognises QR codes only.
// With tryHarder set the reader spends more time on rotated or noisy images.
func NewQRDecoder(tryHarder bool) port.BarcodeDecoder {
	return &qrDecoder{tryHarder: tryHarder}
}

func (d *qrDecoder) Decode(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decoding image: %w", err)
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("binarizing %s image: %w", format, err)
	}

	hints := map[gozxing.DecodeHintType]interface{}{}
	if d.tryHarder {
		hints[gozxing.DecodeHintType_TRY_HARDER] = true
	}

	// QRCodeReader keeps decoder state, so each call gets its own.
	result, err := qrcode.NewQRCodeReader().Decode(bmp, hints)
	if err != nil {
		return "", fmt.Errorf("reading QR code: %w", err)
	}
	return result.GetText(), nil
}
