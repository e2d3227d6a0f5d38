// Package mapreduce aggregates token frequencies across documents.
package mapreduce

// Map generates a word frequency map for a single document's token list.
// Empty words are skipped; tokens are counted as-is, any filtering happens
// upstream at tokenization time.
func Map(tokens []string) map[string]int {
	frequencies := make(map[string]int)
	for _, word := range tokens {
		if word == "" {
			continue
		}
		frequencies[word]++
	}
	return frequencies
}

// Reduce aggregates a slice of word frequency maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)
	for _, counts := range intermediate {
		for word, count := range counts {
			finalResults[word] += count
		}
	}
	return finalResults
}
