package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold decomposes composed characters (á → a + ◌́) and keeps only the
// ASCII part.
var asciiFold = transform.Chain(norm.NFKD, runes.Remove(runes.NotIn(asciiRange)))

var asciiRange = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x00, Hi: 0x7f, Stride: 1}},
}

// Make turns arbitrary text into a lowercase, hyphen-delimited identifier.
// It never fails; text without any ASCII letters or digits yields "".
func Make(text string) string {
	folded, _, err := transform.String(asciiFold, text)
	if err != nil {
		folded = text
	}

	var b strings.Builder
	b.Grow(len(folded))

	pendingHyphen := false
	for i := 0; i < len(folded); i++ {
		c := folded[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}

		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteByte(c)
			continue
		}

		pendingHyphen = true
	}

	return b.String()
}
