package aramorph

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine is returned for a data line without exactly four fields.
	ErrMalformedLine = errors.New("entry does not have 4 fields")
	// ErrDuplicateLemma is returned when a lemma id is declared twice in one file.
	ErrDuplicateLemma = errors.New("lemma id is not unique")
	// ErrUndeduciblePOS is returned when no part-of-speech can be deduced.
	ErrUndeduciblePOS = errors.New("no part-of-speech can be deduced")
	// ErrMissingLemma is returned for a stem entry outside any lemma scope.
	ErrMissingLemma = errors.New("stem has no associated lemma id")
)

// LoadError describes why a dictionary or table file could not be loaded.
// Line is 1-based; it is 0 when the file itself could not be read.
type LoadError struct {
	Path string
	Line int
	Text string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("load %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("load %s:%d: %v: %q", e.Path, e.Line, e.Err, e.Text)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// AnalysisError reports a dictionary inconsistency found while building a
// solution.
type AnalysisError struct {
	Word string
	Stem *Entry
	Err  error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analyze %q: stem %q (%s): %v", e.Word, e.Stem.Form, e.Stem.Category, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}
