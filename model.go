package aramorph

import "unicode/utf8"

// Class identifies which morpheme dictionary an entry belongs to.
type Class int

const (
	ClassPrefix Class = iota
	ClassStem
	ClassSuffix
)

func (c Class) String() string {
	switch c {
	case ClassPrefix:
		return "prefix"
	case ClassStem:
		return "stem"
	case ClassSuffix:
		return "suffix"
	default:
		return "unknown"
	}
}

// Entry is a single lexicon line: one morph with its reading and grammar.
// Entries are never modified after loading.
type Entry struct {
	// Form is the unvocalized surface form, used as the dictionary key.
	Form string
	// Vocalization is the fully vocalized reading of the morph.
	Vocalization string
	// Category is the morphotactic category code used for table lookups.
	Category string
	// Gloss is the English gloss with any <pos> tag removed.
	Gloss string
	// POS is the part-of-speech, explicit or deduced from Category.
	POS string
	// LemmaID is the lemma scope the entry was declared in ("" if none).
	LemmaID string
}

// HasLemma reports whether the entry was declared inside a lemma scope.
func (e *Entry) HasLemma() bool {
	return e.LemmaID != ""
}

// DictionaryIndex maps a surface form to every entry sharing it, in file order.
type DictionaryIndex map[string][]*Entry

// add appends e under its surface form; existing entries are kept.
func (d DictionaryIndex) add(e *Entry) {
	d[e.Form] = append(d[e.Form], e)
}

// Lookup returns the entries for form, or nil.
func (d DictionaryIndex) Lookup(form string) []*Entry {
	return d[form]
}

// Len returns the total number of entries across all keys.
func (d DictionaryIndex) Len() int {
	n := 0
	for _, list := range d {
		n += len(list)
	}
	return n
}

// Dictionaries groups the three morpheme dictionaries.
type Dictionaries struct {
	Prefixes DictionaryIndex
	Stems    DictionaryIndex
	Suffixes DictionaryIndex
}

// Segmentation is one split of a word into prefix, stem and suffix.
type Segmentation struct {
	Prefix string
	Stem   string
	Suffix string
}

// Word returns the concatenation of the three parts.
func (s Segmentation) Word() string {
	return s.Prefix + s.Stem + s.Suffix
}

// StemLength returns the stem length in code points.
func (s Segmentation) StemLength() int {
	return utf8.RuneCountInString(s.Stem)
}

// Solution is one valid reconstruction of a word.
type Solution struct {
	Vocalization string
	POS          string
	Gloss        string
	LemmaID      string
}

// WordResult holds the analysis of a single token.
type WordResult struct {
	// Word is the token as it was analysed.
	Word string
	// Solutions lists every valid reconstruction, unranked.
	Solutions []Solution
}
