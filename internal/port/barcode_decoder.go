package port

import "context"

// BarcodeDecoder turns an encoded image into the text of the QR code it shows.
type BarcodeDecoder interface {
	Decode(ctx context.Context, image []byte) (string, error)
}
