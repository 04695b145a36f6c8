package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"//link.test/s/abc?mbr=true", "http://link.test/s/abc?mbr=true"},
		{"https://link.test/s/abc", "https://link.test/s/abc"},
		{"http://link.test/s/abc", "http://link.test/s/abc"},
		{"link.test/s/abc", "http://link.test/s/abc"},
		{"  //link.test/x  ", "http://link.test/x"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeURL(tt.in), tt.in)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Show S1 Ep1", "Show S1 Ep1"},
		{"AC/DC: Live", "AC DC Live"},
		{"../../etc/passwd", "etc passwd"},
		{"Tab\tand\nnewline", "Tab and newline"},
		{"  trailing dots...", "trailing dots"},
		{"Amélie", "Amélie"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFilename(tt.in), tt.in)
	}
}
