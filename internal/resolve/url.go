package resolve

import "strings"

// defaultScheme is supplied to descriptor URLs stored without one.
const defaultScheme = "http"

// NormalizeURL supplies a scheme to protocol-relative or scheme-less URLs.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(raw, "//"):
		return defaultScheme + ":" + raw
	case strings.Contains(raw, "://"):
		return raw
	default:
		return defaultScheme + "://" + raw
	}
}
