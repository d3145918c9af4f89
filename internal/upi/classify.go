package upi

import "strings"

// PayloadKind is the format a scanned payload was recognised as.
type PayloadKind string

const (
	KindEMV     PayloadKind = "emv"
	KindURL     PayloadKind = "url"
	KindUnknown PayloadKind = "unknown"
)

const (
	// emvPrefix is the mandatory Payload Format Indicator field: tag 00, length 02, value 01.
	emvPrefix = "000201"
	urlPrefix = "upi://pay"
)

// Classify reports which format payload is in. The EMV test runs first.
func Classify(payload string) PayloadKind {
	switch {
	case hasPrefixFold(payload, emvPrefix):
		return KindEMV
	case hasPrefixFold(payload, urlPrefix):
		return KindURL
	default:
		return KindUnknown
	}
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
