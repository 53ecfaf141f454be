package aramorph

// Analyze returns every reconstruction of word allowed by the dictionaries
// and the three compatibility tables. The solutions are not ranked. A word
// without any solution yields an empty result and a nil error; an error is
// only returned when a matching stem entry carries no lemma id.
func Analyze(word string, d Dictionaries, t Tables) ([]Solution, error) {
	var solutions []Solution

	for _, seg := range Segment(word) {
		prefixes, ok := d.Prefixes[seg.Prefix]
		if !ok {
			continue
		}
		stems, ok := d.Stems[seg.Stem]
		if !ok {
			continue
		}
		suffixes, ok := d.Suffixes[seg.Suffix]
		if !ok {
			continue
		}

		for _, pre := range prefixes {
			for _, stem := range stems {
				if !t.AB.Has(abKey(pre.Category, stem.Category)) {
					continue
				}
				for _, suf := range suffixes {
					if !t.AC.Has(acKey(pre.Category, suf.Category)) ||
						!t.BC.Has(bcKey(stem.Category, suf.Category)) {
						continue
					}
					sol, err := combine(pre, stem, suf)
					if err != nil {
						return nil, &AnalysisError{Word: word, Stem: stem, Err: err}
					}
					solutions = append(solutions, sol)
				}
			}
		}
	}
	return solutions, nil
}

// combine concatenates the three morphs in prefix-stem-suffix order.
func combine(pre, stem, suf *Entry) (Solution, error) {
	if !stem.HasLemma() {
		return Solution{}, ErrMissingLemma
	}
	return Solution{
		Vocalization: pre.Vocalization + stem.Vocalization + suf.Vocalization,
		POS:          pre.POS + stem.POS + suf.POS,
		Gloss:        pre.Gloss + stem.Gloss + suf.Gloss,
		LemmaID:      stem.LemmaID,
	}, nil
}
