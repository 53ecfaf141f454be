// Package aramorph provides dictionary-based morphological analysis of
// Arabic words: a word is split into prefix, stem and suffix, each part is
// looked up in its lexicon, and the combinations allowed by the
// compatibility tables are returned.
package aramorph

import (
	"io"
	"log"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// FileNames names the six data files inside a data directory.
type FileNames struct {
	Prefixes string
	Stems    string
	Suffixes string
	TableAB  string
	TableAC  string
	TableBC  string
}

// DefaultFileNames are the file names of the Buckwalter lexicon.
var DefaultFileNames = FileNames{
	Prefixes: "dictPrefixes",
	Stems:    "dictStems",
	Suffixes: "dictSuffixes",
	TableAB:  "tableab",
	TableAC:  "tableac",
	TableBC:  "tablebc",
}

// Analyzer holds an immutable snapshot of the lexicon and the compatibility
// tables. It is safe for concurrent use.
type Analyzer struct {
	dicts  Dictionaries
	tables Tables
}

type options struct {
	files  FileNames
	logger *log.Logger
}

// Option configures New.
type Option func(*options)

// WithFileNames overrides the data file names.
func WithFileNames(f FileNames) Option {
	return func(o *options) { o.files = f }
}

// WithLogger makes New report what it loaded.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New loads all data files from dataDir and returns a ready-to-use Analyzer.
// The six files are read concurrently; the first failure is returned and no
// Analyzer is built.
func New(dataDir string, opts ...Option) (*Analyzer, error) {
	o := options{
		files:  DefaultFileNames,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(&o)
	}

	a := &Analyzer{}
	var g errgroup.Group

	loadDict := func(dst *DictionaryIndex, name string, class Class) {
		g.Go(func() error {
			path := filepath.Join(dataDir, name)
			d, err := LoadDictionary(path, class)
			if err != nil {
				return err
			}
			o.logger.Printf("loaded %d %s entries (%d forms) from %s", d.Len(), class, len(d), path)
			*dst = d
			return nil
		})
	}
	loadTable := func(dst *Table, name string) {
		g.Go(func() error {
			path := filepath.Join(dataDir, name)
			t, err := LoadTable(path)
			if err != nil {
				return err
			}
			o.logger.Printf("loaded %d pairs from %s", len(t), path)
			*dst = t
			return nil
		})
	}

	loadDict(&a.dicts.Prefixes, o.files.Prefixes, ClassPrefix)
	loadDict(&a.dicts.Stems, o.files.Stems, ClassStem)
	loadDict(&a.dicts.Suffixes, o.files.Suffixes, ClassSuffix)
	loadTable(&a.tables.AB, o.files.TableAB)
	loadTable(&a.tables.AC, o.files.TableAC)
	loadTable(&a.tables.BC, o.files.TableBC)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return a, nil
}

// NewFromSnapshot wraps already loaded dictionaries and tables.
func NewFromSnapshot(d Dictionaries, t Tables) *Analyzer {
	return &Analyzer{dicts: d, tables: t}
}

// AnalyzeWord analyses a single word against the loaded snapshot.
func (a *Analyzer) AnalyzeWord(word string) ([]Solution, error) {
	return Analyze(word, a.dicts, a.tables)
}

// Dictionaries returns the loaded dictionaries. They must not be modified.
func (a *Analyzer) Dictionaries() Dictionaries {
	return a.dicts
}

// Tables returns the loaded compatibility tables. They must not be modified.
func (a *Analyzer) Tables() Tables {
	return a.tables
}

// Stats summarises the size of a loaded snapshot.
type Stats struct {
	PrefixEntries int `json:"prefix_entries"`
	StemEntries   int `json:"stem_entries"`
	SuffixEntries int `json:"suffix_entries"`
	Lemmas        int `json:"lemmas"`
	TableAB       int `json:"table_ab"`
	TableAC       int `json:"table_ac"`
	TableBC       int `json:"table_bc"`
}

// Stats returns entry and pair counts for the snapshot.
func (a *Analyzer) Stats() Stats {
	lemmas := make(map[string]struct{})
	for _, list := range a.dicts.Stems {
		for _, e := range list {
			if e.HasLemma() {
				lemmas[e.LemmaID] = struct{}{}
			}
		}
	}
	return Stats{
		PrefixEntries: a.dicts.Prefixes.Len(),
		StemEntries:   a.dicts.Stems.Len(),
		SuffixEntries: a.dicts.Suffixes.Len(),
		Lemmas:        len(lemmas),
		TableAB:       len(a.tables.AB),
		TableAC:       len(a.tables.AC),
		TableBC:       len(a.tables.BC),
	}
}
