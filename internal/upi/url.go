package upi

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

const payeeParam = "pa"

// ExtractFromURL returns the value of the first well-formed pa parameter of a
// upi://pay URL. A token is well-formed when splitting it on "=" yields exactly
// two parts, so keys or values holding a literal "=" are skipped.
func ExtractFromURL(payload string) (PayeeAddress, error) {
	if !hasPrefixFold(payload, urlPrefix) {
		return "", ErrNotFound
	}

	_, query, _ := strings.Cut(payload, "?")
	for _, param := range strings.Split(query, "&") {
		pair := strings.Split(param, "=")
		if len(pair) != 2 || pair[0] != payeeParam {
			continue
		}
		decoded, err := url.QueryUnescape(pair[1])
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
		}
		if !utf8.ValidString(decoded) {
			return "", fmt.Errorf("%w: %s does not decode to UTF-8", ErrInvalidEncoding, payeeParam)
		}
		return PayeeAddress(decoded), nil
	}

	return "", ErrNotFound
}
