package upi

import "errors"

var (
	// ErrNotFound means the payload carries no payee address.
	ErrNotFound = errors.New("payee address not found")

	// ErrMalformedLength and ErrLengthOverrun describe why a TLV walk stopped.
	// Both are always reported wrapped together with ErrNotFound.
	ErrMalformedLength = errors.New("tlv length is not a decimal number")
	ErrLengthOverrun   = errors.New("tlv length exceeds remaining payload")

	// ErrInvalidEncoding is returned when a payload is not valid UTF-8, or when
	// the pa parameter of a URL payload holds a malformed percent-escape or
	// decodes to invalid UTF-8. It does not wrap ErrNotFound.
	ErrInvalidEncoding = errors.New("invalid payload encoding")
)
