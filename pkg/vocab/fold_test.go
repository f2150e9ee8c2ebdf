package vocab

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	t.Run("lowercases accented text in place", func(t *testing.T) {
		assert.Equal(t, "leilão judicial", Fold("LEILÃO Judicial"))
	})

	t.Run("keeps runes whose lowercase form is wider", func(t *testing.T) {
		in := strings.Repeat("Ⱥ", 3)
		assert.Equal(t, in, Fold(in))
	})

	t.Run("passes invalid bytes through unchanged", func(t *testing.T) {
		in := "PUBLICADO\xff\xfeEM"
		assert.Equal(t, "publicado\xff\xfeem", Fold(in))
	})

	t.Run("never changes the byte length", func(t *testing.T) {
		samples := []string{
			"",
			"EDITAL DE LEILÃO JUDICIAL",
			strings.Repeat("Ⱥ", 100) + " hasta pública",
			"ÀÉÎÕÜ çÇ İ ȺȾ",
			"\x80\x81 leilão",
		}
		for _, s := range samples {
			assert.Len(t, Fold(s), len(s))
		}
	})
}
