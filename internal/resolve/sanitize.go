package resolve

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// illegalChars are characters not allowed in filenames on common filesystems.
var illegalChars = regexp.MustCompile(`[<>:"/\\|?*\x00]`)

// multiSpace matches runs of whitespace.
var multiSpace = regexp.MustCompile(`\s+`)

// stripControl drops control characters and composes the result to NFC.
// Chains hold buffers, so each call builds its own.
func stripControl() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Cc)), norm.NFC)
}

// SanitizeFilename turns a descriptor title into a safe filename stem.
// Separators and reserved characters become spaces; the result never contains
// a path component.
func SanitizeFilename(name string) string {
	name = multiSpace.ReplaceAllString(name, " ")
	if s, _, err := transform.String(stripControl(), name); err == nil {
		name = s
	}
	name = illegalChars.ReplaceAllString(name, " ")
	name = multiSpace.ReplaceAllString(name, " ")
	return strings.Trim(name, " .")
}
