package domain

import (
	"time"

	"github.com/google/uuid"
)

// Extraction is the side-effect free outcome of reading a payload.
type Extraction struct {
	Kind         PayloadKind `json:"kind"`
	PayeeAddress string      `json:"payee_address"`
}

// ScanResult records one successful scan and what was done with its address.
type ScanResult struct {
	ID           uuid.UUID   `json:"id"`
	Kind         PayloadKind `json:"kind"`
	PayeeAddress string      `json:"payee_address"`
	Copied       bool        `json:"copied"`
	DialURI      string      `json:"dial_uri,omitempty"`
	Dialed       bool        `json:"dialed"`
	DialError    string      `json:"dial_error,omitempty"`
	ScannedAt    time.Time   `json:"scanned_at"`
}

// BatchItem is the outcome for one payload of a batch extraction.
type BatchItem struct {
	Index        int         `json:"index"`
	Payload      string      `json:"payload"`
	Kind         PayloadKind `json:"kind"`
	PayeeAddress string      `json:"payee_address,omitempty"`
	Error        string      `json:"error,omitempty"`
}

// OK reports whether an address was extracted for the item.
func (b *BatchItem) OK() bool {
	return b.Error == "" && b.PayeeAddress != ""
}

// Inspection lists the TLV fields of an EMV payload.
type Inspection struct {
	Kind            PayloadKind `json:"kind"`
	Fields          []TLVField  `json:"fields"`
	MerchantAccount []TLVField  `json:"merchant_account,omitempty"`
}

// TLVField is one Tag-Length-Value entry as shown to API and CLI users.
type TLVField struct {
	Tag    string `json:"tag"`
	Length int    `json:"length"`
	Value  string `json:"value"`
}
