package upi_test

import (
	"fmt"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"upiscan/internal/upi"
)

// tlv encodes a single field with a two-digit character count.
func tlv(tag, value string) string {
	return fmt.Sprintf("%s%02d%s", tag, utf8.RuneCountInString(value), value)
}

const merchantPayload = "000201" + "010212" + "52040000" + "5303356" +
	"2658" + "0010ICICI12345" + "0114merchant@icici" + "0322ABCDEFGHIJKLMNOPQRSTUV" +
	"5802IN" + "6304ABCD"

func TestExtractFromEMV(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    upi.PayeeAddress
		wantErr error
	}{
		{"merchant template", merchantPayload, "merchant@icici", nil},
		{"sub-tag 02", "000201" + tlv("26", tlv("00", "NPCI")+tlv("02", "shop@ybl")), "shop@ybl", nil},
		{"scan order not priority", "000201" + "2620" + "0206second" + "0106first1", "second", nil},
		{"trailing partial header ignored", "000201" + "2608" + "0104a@bc" + "63", "a@bc", nil},
		{"malformed field after template never read", "000201" + "2608" + "0104a@bc" + "5AXX", "a@bc", nil},
		{"lengths count characters", "000201" + "2609" + "0205pay₹@", "pay₹@", nil},
		{"empty sub value", "000201" + tlv("26", "0100"), "", nil},
		{"no template", "000201" + tlv("59", "Shop") + tlv("60", "Pune"), "", upi.ErrNotFound},
		{"template without payee", "000201" + tlv("26", tlv("00", "NPCI")), "", upi.ErrNotFound},
		{"only first template searched", "000201" + "2610" + "0006abcdef" + "2612" + "0108a@bank.x", "", upi.ErrNotFound},
		{"empty payload", "", "", upi.ErrNotFound},
		{"shorter than a header", "000", "", upi.ErrNotFound},
		{"non numeric length", "0002015AXX" + "2608" + "0104a@bc", "", upi.ErrMalformedLength},
		{"negative length", "000201" + "26-1", "", upi.ErrMalformedLength},
		{"top level overrun", "000201" + "26" + "05" + "01", "", upi.ErrLengthOverrun},
		{"nested overrun", "000201" + "2608" + "0199abcd", "", upi.ErrLengthOverrun},
		{"nested malformed length", "000201" + tlv("26", "01xxabcd"), "", upi.ErrMalformedLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				got upi.PayeeAddress
				err error
			)
			require.NotPanics(t, func() {
				got, err = upi.ExtractFromEMV(tt.payload)
			})
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, upi.ErrNotFound)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractFromEMV_ConstructedPayloads(t *testing.T) {
	addrs := []string{"a@b", "merchant@icici", "9876543210@paytm", "shop.name-01@okaxis"}

	for _, addr := range addrs {
		t.Run(addr, func(t *testing.T) {
			template := tlv("00", "A000000524") + tlv("01", addr) + tlv("02", "ignored@bank")
			payload := "000201" + tlv("01", "12") + tlv("26", template) +
				tlv("52", "5411") + tlv("53", "356") + tlv("58", "IN") + tlv("59", "Shop") + "6304ABCD"

			got, err := upi.ExtractFromEMV(payload)
			require.NoError(t, err)
			assert.Equal(t, upi.PayeeAddress(addr), got)
		})
	}
}

func TestExtractFromEMV_OverrunAtEveryCut(t *testing.T) {
	for i := 0; i < len(merchantPayload); i++ {
		truncated := merchantPayload[:i]
		require.NotPanics(t, func() {
			_, _ = upi.ExtractFromEMV(truncated)
		}, "cut at %d", i)
	}
}

func TestExtractFromEMV_InvalidUTF8(t *testing.T) {
	payloads := []string{
		"000201" + "2605" + "0101\xff",
		"\xc3(" + "000201" + tlv("26", tlv("01", "a@b")),
	}

	for _, payload := range payloads {
		got, err := upi.ExtractFromEMV(payload)
		require.Error(t, err)
		assert.ErrorIs(t, err, upi.ErrInvalidEncoding)
		assert.NotErrorIs(t, err, upi.ErrNotFound)
		assert.Empty(t, got)

		_, err = upi.ParseFields(payload)
		assert.ErrorIs(t, err, upi.ErrInvalidEncoding)
	}
}

func TestParseFields(t *testing.T) {
	fields, err := upi.ParseFields(merchantPayload)
	require.NoError(t, err)

	tags := make([]string, 0, len(fields))
	for _, f := range fields {
		tags = append(tags, f.Tag)
	}
	assert.Equal(t, []string{"00", "01", "52", "53", "26", "58", "63"}, tags)
	assert.Equal(t, upi.Field{Tag: "00", Length: 2, Value: "01"}, fields[0])
	assert.Equal(t, 58, fields[4].Length)
	assert.Equal(t, "ABCD", fields[6].Value)
}

func TestParseFields_Errors(t *testing.T) {
	_, err := upi.ParseFields("000201" + "5999Shop")
	assert.ErrorIs(t, err, upi.ErrLengthOverrun)

	_, err = upi.ParseFields("0002015AXX")
	assert.ErrorIs(t, err, upi.ErrMalformedLength)

	fields, err := upi.ParseFields("")
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestMerchantAccountInfo(t *testing.T) {
	fields, err := upi.ParseFields(merchantPayload)
	require.NoError(t, err)

	sub, err := upi.MerchantAccountInfo(fields)
	require.NoError(t, err)
	require.Len(t, sub, 3)
	assert.Equal(t, upi.Field{Tag: "00", Length: 10, Value: "ICICI12345"}, sub[0])
	assert.Equal(t, upi.Field{Tag: "01", Length: 14, Value: "merchant@icici"}, sub[1])

	_, err = upi.MerchantAccountInfo([]upi.Field{{Tag: "59", Length: 4, Value: "Shop"}})
	assert.ErrorIs(t, err, upi.ErrNotFound)
}
