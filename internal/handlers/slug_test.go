package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"How We Build APIs", "how-we-build-apis"},
		{"  Spaces   Everywhere  ", "spaces-everywhere"},
		{"Already-slugged-title", "already-slugged-title"},
		{"Symbols! And? Punctuation...", "symbols-and-punctuation"},
		{"MixedCASE Title 2024", "mixedcase-title-2024"},
		{"---", ""},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "input: %q", tc.in)
	}
}

func TestSlugifyTruncates(t *testing.T) {
	long := strings.Repeat("word ", 100)
	slug := Slugify(long)
	assert.LessOrEqual(t, len(slug), 200)
	assert.False(t, strings.HasSuffix(slug, "-"))
}
