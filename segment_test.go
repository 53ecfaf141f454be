package aramorph

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentCoversWord(t *testing.T) {
	words := []string{"k", "ktb", "wktbt", "wsyktbwnhA", "وكتبت", "فسيكتبونها", "بالكتاب"}
	for _, w := range words {
		segs := Segment(w)
		require.NotEmpty(t, segs, w)
		for _, s := range segs {
			assert.Equal(t, w, s.Word())
			assert.GreaterOrEqual(t, s.StemLength(), 1)
			assert.LessOrEqual(t, utf8.RuneCountInString(s.Prefix), maxPrefixLen)
			assert.LessOrEqual(t, utf8.RuneCountInString(s.Suffix), maxSuffixLen)
			assert.True(t, utf8.ValidString(s.Prefix), w)
			assert.True(t, utf8.ValidString(s.Stem), w)
			assert.True(t, utf8.ValidString(s.Suffix), w)
		}
	}
}

func TestSegmentCount(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"", 0},
		{"k", 1},
		{"kt", 3},
		{"ktb", 6},
		// long words hit both caps: 5 prefix lengths x 7 suffix lengths
		{"wsyktbwnhAm", 35},
		{"كتب", 6},
	}
	for _, tt := range tests {
		assert.Len(t, Segment(tt.word), tt.want, tt.word)
	}
}

func TestSegmentOrder(t *testing.T) {
	got := Segment("kt")
	want := []Segmentation{
		{Prefix: "", Stem: "kt", Suffix: ""},
		{Prefix: "", Stem: "k", Suffix: "t"},
		{Prefix: "k", Stem: "t", Suffix: ""},
	}
	assert.Equal(t, want, got)
}

func TestSegmentArabicScript(t *testing.T) {
	var found bool
	for _, s := range Segment("وكتبت") {
		if s.Prefix == "و" && s.Stem == "كتب" && s.Suffix == "ت" {
			found = true
		}
	}
	assert.True(t, found)
}
