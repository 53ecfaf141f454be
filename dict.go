package aramorph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

const (
	// lemmaMarker opens a lemma scope; the rest of the line is the lemma id.
	lemmaMarker = ";;"
	// commentMarker starts a comment line. It is checked after lemmaMarker.
	commentMarker = ";"
	// fieldCount is the number of tab-separated fields of a data line.
	fieldCount = 4
)

// posRe extracts an explicit part-of-speech from the gloss field.
var posRe = regexp.MustCompile(`<pos>(.+)</pos>`)

// LoadDictionary reads a lexicon file of the given class into a
// DictionaryIndex. Any malformed line invalidates the whole file.
func LoadDictionary(path string, class Class) (DictionaryIndex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	return parseDictionary(f, path, class)
}

// ParseDictionary reads lexicon lines from r. See LoadDictionary.
func ParseDictionary(r io.Reader, class Class) (DictionaryIndex, error) {
	return parseDictionary(r, "<reader>", class)
}

func parseDictionary(r io.Reader, path string, class Class) (DictionaryIndex, error) {
	index := make(DictionaryIndex)
	st := newLineState(class)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		e, err := st.step(line)
		if err != nil {
			return nil, &LoadError{Path: path, Line: lineNo, Text: line, Err: err}
		}
		if e != nil {
			index.add(e)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return index, nil
}

// lineState is the state carried from one lexicon line to the next: the
// currently open lemma scope and every lemma id seen so far in the file.
type lineState struct {
	class Class
	lemma string
	seen  map[string]struct{}
}

func newLineState(class Class) *lineState {
	return &lineState{
		class: class,
		seen:  make(map[string]struct{}),
	}
}

// step consumes one non-empty line. It returns the parsed entry for data
// lines and nil for lemma-scope and comment lines.
func (s *lineState) step(line string) (*Entry, error) {
	switch {
	case strings.HasPrefix(line, lemmaMarker):
		return nil, s.openLemma(strings.TrimSpace(line[len(lemmaMarker):]))
	case strings.HasPrefix(line, commentMarker):
		return nil, nil
	}

	e, err := parseEntry(line)
	if err != nil {
		return nil, err
	}
	e.LemmaID = s.lemma
	if s.class == ClassStem && !e.HasLemma() {
		return nil, ErrMissingLemma
	}
	return e, nil
}

func (s *lineState) openLemma(id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty lemma id", ErrMalformedLine)
	}
	if _, dup := s.seen[id]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateLemma, id)
	}
	s.seen[id] = struct{}{}
	s.lemma = id
	return nil
}

// parseEntry splits a data line into an Entry. LemmaID is left empty.
func parseEntry(line string) (*Entry, error) {
	if strings.Count(line, "\t") != fieldCount-1 {
		return nil, ErrMalformedLine
	}
	fields := strings.Split(line, "\t")
	form, voc, cat, glossPOS := fields[0], fields[1], fields[2], fields[3]

	pos, err := resolvePOS(cat, voc, glossPOS)
	if err != nil {
		return nil, err
	}
	return &Entry{
		Form:         form,
		Vocalization: voc,
		Category:     cat,
		Gloss:        cleanGloss(glossPOS),
		POS:          pos,
	}, nil
}

// resolvePOS returns the <pos> tag content of glossPOS when present and
// otherwise deduces the part-of-speech from the category code.
func resolvePOS(category, voc, glossPOS string) (string, error) {
	if m := posRe.FindStringSubmatch(glossPOS); m != nil {
		return m[1], nil
	}
	return deducePOS(category, voc)
}

func deducePOS(category, voc string) (string, error) {
	switch {
	case strings.HasPrefix(category, "Pref-0"), strings.HasPrefix(category, "Suff-0"):
		return "", nil
	case strings.HasPrefix(category, "F"):
		return voc + "/FUNC_WORD", nil
	case strings.HasPrefix(category, "IV"):
		return voc + "/VERB_IMPERFECT", nil
	case strings.HasPrefix(category, "PV"):
		return voc + "/VERB_PERFECT", nil
	case strings.HasPrefix(category, "CV"):
		return voc + "/VERB_IMPERATIVE", nil
	case strings.HasPrefix(category, "N") && startsUpperASCII(voc):
		return voc + "/NOUN_PROP", nil
	case strings.HasPrefix(category, "N"):
		return voc + "/NOUN", nil
	}
	return "", fmt.Errorf("%w: category %q", ErrUndeduciblePOS, category)
}

func startsUpperASCII(s string) bool {
	return s != "" && s[0] >= 'A' && s[0] <= 'Z'
}

// cleanGloss strips the <pos> tag from a gloss field.
func cleanGloss(glossPOS string) string {
	return strings.TrimSpace(posRe.ReplaceAllString(glossPOS, ""))
}
