package aramorph

const (
	// maxPrefixLen and maxSuffixLen bound the search, in code points.
	maxPrefixLen = 4
	maxSuffixLen = 6
)

// Segment enumerates every split of word into prefix, stem and suffix with
// a prefix of at most 4 and a suffix of at most 6 code points and a
// non-empty stem. Results are ordered by prefix length, then suffix length.
func Segment(word string) []Segmentation {
	runes := []rune(word)
	n := len(runes)

	var segs []Segmentation
	for p := 0; p <= maxPrefixLen && p < n; p++ {
		for s := 0; s <= maxSuffixLen && p+s < n; s++ {
			segs = append(segs, Segmentation{
				Prefix: string(runes[:p]),
				Stem:   string(runes[p : n-s]),
				Suffix: string(runes[n-s:]),
			})
		}
	}
	return segs
}
