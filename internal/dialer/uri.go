package dialer

import "strings"

// BuildURI returns the tel: URI that dials code. Every "#" is percent-encoded
// because a raw "#" would start a URI fragment and be dropped by the dialer.
func BuildURI(code string) string {
	return "tel:" + strings.ReplaceAll(code, "#", "%23")
}
