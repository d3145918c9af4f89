// Package upi identifies UPI payment payloads decoded from QR codes and
// extracts the payee's virtual payment address.
//
// Two formats are understood: upi://pay URLs, whose pa query parameter holds
// the address, and EMV merchant-presented QR payloads, whose template 26 holds
// it in sub-field 01 or 02. Every function here is pure and safe for
// concurrent use.
package upi

// PayeeAddress is the virtual payment address carried by a payload. It is not
// validated beyond extraction.
type PayeeAddress string

func (a PayeeAddress) String() string { return string(a) }

// ExtractPayeeAddress classifies payload once and runs the matching parser.
// Payloads of unknown kind are attempted as EMV.
func ExtractPayeeAddress(payload string) (PayeeAddress, PayloadKind, error) {
	kind := Classify(payload)
	if kind == KindURL {
		addr, err := ExtractFromURL(payload)
		return addr, kind, err
	}
	addr, err := ExtractFromEMV(payload)
	return addr, kind, err
}
