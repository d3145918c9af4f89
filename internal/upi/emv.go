package upi

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Field is one Tag-Length-Value entry of an EMV QR payload.
type Field struct {
	Tag    string `json:"tag"`
	Length int    `json:"length"`
	Value  string `json:"value"`
}

const (
	// tagMerchantAccount is the UPI merchant account information template.
	tagMerchantAccount = "26"
	fieldHeaderLen     = 4
)

// ExtractFromEMV walks the top-level fields of an EMV payload and returns the
// first 01 or 02 sub-field of the first template 26. Only that first template
// is searched; a later 26 is never reached.
func ExtractFromEMV(payload string) (PayeeAddress, error) {
	chars, err := toRunes(payload)
	if err != nil {
		return "", err
	}

	var (
		template Field
		found    bool
	)
	err = walk(chars, func(f Field) bool {
		if f.Tag == tagMerchantAccount {
			template, found = f, true
		}
		return found
	})
	if err != nil {
		return "", err
	}
	if !found {
		return "", ErrNotFound
	}

	var (
		addr  PayeeAddress
		match bool
	)
	err = walk([]rune(template.Value), func(f Field) bool {
		if f.Tag == "01" || f.Tag == "02" {
			addr, match = PayeeAddress(f.Value), true
		}
		return match
	})
	if err != nil {
		return "", fmt.Errorf("template %s: %w", tagMerchantAccount, err)
	}
	if !match {
		return "", ErrNotFound
	}
	return addr, nil
}

// ParseFields returns every top-level field of payload in order.
func ParseFields(payload string) ([]Field, error) {
	chars, err := toRunes(payload)
	if err != nil {
		return nil, err
	}

	var fields []Field
	err = walk(chars, func(f Field) bool {
		fields = append(fields, f)
		return false
	})
	if err != nil {
		return nil, err
	}
	return fields, nil
}

// MerchantAccountInfo parses the sub-fields of the first template 26 in fields.
// It returns ErrNotFound when fields holds no such template.
func MerchantAccountInfo(fields []Field) ([]Field, error) {
	for _, f := range fields {
		if f.Tag == tagMerchantAccount {
			return ParseFields(f.Value)
		}
	}
	return nil, ErrNotFound
}

// toRunes splits payload into characters. Invalid UTF-8 is rejected rather
// than replaced, so field values always hold the scanned bytes.
func toRunes(payload string) ([]rune, error) {
	if !utf8.ValidString(payload) {
		return nil, fmt.Errorf("%w: payload is not valid UTF-8", ErrInvalidEncoding)
	}
	return []rune(payload), nil
}

// walk reads fields from the start of payload while at least a full header
// remains, calling visit for each. It stops early once visit returns true.
func walk(payload []rune, visit func(Field) bool) error {
	for offset := 0; len(payload)-offset >= fieldHeaderLen; {
		f, next, err := readField(payload, offset)
		if err != nil {
			return err
		}
		if visit(f) {
			return nil
		}
		offset = next
	}
	return nil
}

func readField(payload []rune, offset int) (Field, int, error) {
	tag := string(payload[offset : offset+2])
	lengthText := string(payload[offset+2 : offset+fieldHeaderLen])

	length, err := strconv.Atoi(lengthText)
	if err != nil || length < 0 {
		return Field{}, 0, fmt.Errorf("%w: %w: tag %s at offset %d has length %q",
			ErrNotFound, ErrMalformedLength, tag, offset, lengthText)
	}

	start := offset + fieldHeaderLen
	if remaining := len(payload) - start; length > remaining {
		return Field{}, 0, fmt.Errorf("%w: %w: tag %s at offset %d declares %d characters, %d remain",
			ErrNotFound, ErrLengthOverrun, tag, offset, length, remaining)
	}

	end := start + length
	return Field{Tag: tag, Length: length, Value: string(payload[start:end])}, end, nil
}
