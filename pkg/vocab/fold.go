package vocab

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Fold lowercases text for vocabulary matching while keeping every byte
// offset valid in the original string. A handful of Unicode characters
// change UTF-8 width when lowercased (U+023A becomes the three-byte U+2C65,
// for example); those runes are kept as-is, since no vocabulary term
// contains them. Invalid UTF-8 bytes pass through unchanged instead of
// widening into the replacement rune. A match offset in the folded string
// therefore always addresses the same span in the original text.
func Fold(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteByte(text[i])
			i++
			continue
		}
		folded := unicode.ToLower(r)
		if utf8.RuneLen(folded) != size {
			folded = r
		}
		b.WriteRune(folded)
		i += size
	}
	return b.String()
}
