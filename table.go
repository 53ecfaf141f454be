package aramorph

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Table is a set of legal category pairs between two morpheme classes.
type Table map[string]struct{}

// NewTable builds a table from already formatted tokens.
func NewTable(tokens ...string) Table {
	t := make(Table, len(tokens))
	for _, tok := range tokens {
		t[tok] = struct{}{}
	}
	return t
}

// Has reports whether token is a legal pair.
func (t Table) Has(token string) bool {
	_, ok := t[token]
	return ok
}

// Tables groups the three compatibility tables.
type Tables struct {
	// AB holds prefix/stem pairs, joined by a space.
	AB Table
	// AC holds prefix/suffix pairs, joined by a space.
	AC Table
	// BC holds stem/suffix pairs, joined by a comma and a space.
	BC Table
}

// The probe formats mirror the table files and must not be unified.

func abKey(prefixCat, stemCat string) string { return prefixCat + " " + stemCat }

func acKey(prefixCat, suffixCat string) string { return prefixCat + " " + suffixCat }

func bcKey(stemCat, suffixCat string) string { return stemCat + ", " + suffixCat }

// LoadTable reads a compatibility table file, one token per line.
func LoadTable(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	t, err := ParseTable(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return t, nil
}

// ParseTable reads trimmed tokens from r. Blank lines are ignored.
func ParseTable(r io.Reader) (Table, error) {
	t := make(Table)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		tok := strings.TrimSpace(sc.Text())
		if tok == "" {
			continue
		}
		t[tok] = struct{}{}
	}
	return t, sc.Err()
}
