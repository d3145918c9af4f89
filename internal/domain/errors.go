package domain

import "errors"

var (
	ErrInvalidQR           = errors.New("invalid QR")
	ErrNoQRCode            = errors.New("no QR code found in image")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrBatchTooLarge       = errors.New("batch exceeds maximum allowed items")
	ErrUnsupportedFormat   = errors.New("unsupported report format")
)
