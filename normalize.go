package aramorph

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// kashida is the tatweel (U+0640), a purely typographic elongation.
const kashida = 'ـ'

// harakat covers the short-vowel, tanwin, shadda and sukun marks
// U+064B through U+0652.
var harakat = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x064B, Hi: 0x0652, Stride: 1}},
}

var (
	kashidaRemover = runes.Remove(runes.Predicate(func(r rune) bool { return r == kashida }))
	harakatRemover = runes.Remove(runes.In(harakat))
)

// RemoveKashida strips every tatweel from s.
func RemoveKashida(s string) string {
	return apply(kashidaRemover, s)
}

// RemoveHarakat strips short vowels, tanwin, shadda and sukun from s.
func RemoveHarakat(s string) string {
	return apply(harakatRemover, s)
}

// Normalize composes s to NFC and removes kashida and harakat.
// Analyze never calls it; callers opt in.
func Normalize(s string) string {
	return apply(transform.Chain(norm.NFC, kashidaRemover, harakatRemover), s)
}

func apply(t transform.Transformer, s string) string {
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
