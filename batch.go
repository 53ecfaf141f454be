package aramorph

import (
	"context"
	"regexp"

	"golang.org/x/sync/errgroup"
)

// reWord matches a single token in Arabic script or Buckwalter transliteration.
var reWord = regexp.MustCompile("[\\p{Arabic}A-Za-z'|>&<}*$~`{]+")

// Tokenize splits text into the tokens AnalyzeText would analyse.
func Tokenize(text string) []string {
	return reWord.FindAllString(text, -1)
}

// AnalyzeWords analyses words using at most workers goroutines. Results are
// returned in input order. It stops at the first analysis error or when ctx
// is done.
func (a *Analyzer) AnalyzeWords(ctx context.Context, words []string, workers int) ([]WordResult, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]WordResult, len(words))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, w := range words {
		i, w := i, w
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sols, err := a.AnalyzeWord(w)
			if err != nil {
				return err
			}
			results[i] = WordResult{Word: w, Solutions: sols}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// AnalyzeText tokenizes text and analyses every token. See AnalyzeWords.
func (a *Analyzer) AnalyzeText(ctx context.Context, text string, workers int) ([]WordResult, error) {
	return a.AnalyzeWords(ctx, Tokenize(text), workers)
}
