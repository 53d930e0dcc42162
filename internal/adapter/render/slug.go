package render

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ligatures spells out letters that have no decomposition into a base letter
// plus combining marks.
var ligatures = strings.NewReplacer(
	"ß", "ss", "ẞ", "SS",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O",
	"đ", "d", "Đ", "D",
	"ð", "d", "Ð", "D",
	"ł", "l", "Ł", "L",
	"þ", "th", "Þ", "TH",
	"ı", "i",
)

// Slug lowercases s, folds accented letters to their base form and joins
// words with single dashes. Characters other than ASCII letters, digits and
// underscores are dropped.
func Slug(s string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, ligatures.Replace(s))
	if err != nil {
		folded = ligatures.Replace(s)
	}

	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
		case unicode.IsSpace(r), r == '-', r == '.', r == '/':
			pending = true
		}
	}
	return b.String()
}
