package mapreduce

import (
	"fmt"
	"io"
	"sort"
)

// WordCount is one row of a ranked frequency table.
type WordCount struct {
	Word  string
	Count int
}

// TopN returns the n highest-frequency words, ties broken alphabetically so
// the ranking is stable across runs.
func TopN(wordCounts map[string]int, n int) []WordCount {
	ss := make([]WordCount, 0, len(wordCounts))
	for word, count := range wordCounts {
		ss = append(ss, WordCount{word, count})
	}

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Count != ss[j].Count {
			return ss[i].Count > ss[j].Count
		}
		return ss[i].Word < ss[j].Word
	})

	if n < 0 {
		n = 0
	}
	if len(ss) < n {
		n = len(ss)
	}
	return ss[:n]
}

// PrintTopN writes the top N words as a numbered list.
func PrintTopN(w io.Writer, wordCounts map[string]int, n int) {
	for i, wc := range TopN(wordCounts, n) {
		fmt.Fprintf(w, "%d. %s: %d\n", i+1, wc.Word, wc.Count)
	}
}
