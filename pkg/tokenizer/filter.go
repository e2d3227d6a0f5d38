package tokenizer

import (
	"errors"
	"strings"

	"github.com/ugohsu/colab-nlp-templates/models"
)

// ErrDisjointFilter is returned when a strict filter specifies both a keep
// list and an exclude list with no overlap: the exclude list would have zero
// effect, which is almost certainly a caller mistake.
var ErrDisjointFilter = errors.New("pos_keep and pos_exclude are both set but disjoint; the exclude list would have no effect")

// Filter selects tokens after analysis: keep/exclude lists over coarse POS
// categories plus a stopword set over the word form.
type Filter struct {
	POSKeep    []string
	POSExclude []string
	Stopwords  []string
	// Strict rejects a disjoint keep/exclude combination instead of
	// silently ignoring the exclude list.
	Strict bool
}

// Validate checks the filter for configuration mistakes.
func (f Filter) Validate() error {
	if !f.Strict || len(f.POSKeep) == 0 || len(f.POSExclude) == 0 {
		return nil
	}
	keep := toSet(f.POSKeep)
	for _, pos := range f.POSExclude {
		if _, ok := keep[pos]; ok {
			return nil
		}
	}
	return ErrDisjointFilter
}

// FilterTokens applies the filter to a token slice. Order is preserved.
func FilterTokens(tokens []models.Token, f Filter) ([]models.Token, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	keep := toSet(f.POSKeep)
	exclude := toSet(f.POSExclude)
	stop := toSet(f.Stopwords)

	out := make([]models.Token, 0, len(tokens))
	for _, t := range tokens {
		if len(keep) > 0 {
			if _, ok := keep[t.POS]; !ok {
				continue
			}
		}
		if _, ok := exclude[t.POS]; ok {
			continue
		}
		if _, ok := stop[t.Word]; ok {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// Join reduces one document's words back to analyzer-friendly joined text.
func Join(words []string, sep string) string {
	if sep == "" {
		sep = " "
	}
	return strings.Join(words, sep)
}

// JoinAll reduces a whole corpus to a single joined string, documents
// separated like words. Used for corpus-wide consumers such as the word
// cloud renderer.
func JoinAll(docs [][]string, sep string) string {
	if sep == "" {
		sep = " "
	}
	parts := make([]string, 0, len(docs))
	for _, words := range docs {
		if len(words) == 0 {
			continue
		}
		parts = append(parts, strings.Join(words, sep))
	}
	return strings.Join(parts, sep)
}

func toSet(items []string) map[string]struct{} {
	if len(items) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
