// Package analytics provides frequency analysis defaults for Japanese
// token streams.
package analytics

// commonWords is a default stopword set for Japanese bag-of-words views:
// particles, auxiliaries, light verbs and formal nouns that dominate any
// frequency table without carrying content. The list can be extended per
// corpus via configuration.
var commonWords = map[string]struct{}{
	// 助詞・助動詞など機能語
	"の": {}, "に": {}, "は": {}, "を": {}, "た": {}, "が": {},
	"で": {}, "て": {}, "と": {}, "し": {}, "れ": {}, "さ": {},
	"も": {}, "な": {}, "だ": {}, "か": {}, "ない": {}, "ます": {},
	"です": {}, "ん": {}, "へ": {}, "ば": {}, "まで": {}, "など": {},
	"から": {}, "や": {}, "よ": {}, "ね": {}, "ら": {}, "う": {},
	"たり": {}, "その": {}, "この": {}, "あの": {}, "どの": {},

	// 形式名詞・軽動詞
	"こと": {}, "もの": {}, "ため": {}, "ところ": {}, "よう": {},
	"ほう": {}, "わけ": {}, "はず": {}, "とき": {}, "ひと": {},
	"する": {}, "ある": {}, "いる": {}, "なる": {}, "できる": {},
	"いう": {}, "思う": {}, "いく": {}, "くる": {}, "みる": {},

	// 記号類（解析器が品詞を付けないまま通すことがある）
	"、": {}, "。": {}, "「": {}, "」": {}, "（": {}, "）": {},
	"・": {}, "！": {}, "？": {}, " ": {}, "　": {},
}

// IsStopword checks if a word belongs to the default stopword set.
func IsStopword(word string) bool {
	_, exists := commonWords[word]
	return exists
}

// Stopwords returns the default stopword set as a slice, for feeding into
// a tokenizer filter or merging with user-supplied lists.
func Stopwords() []string {
	words := make([]string, 0, len(commonWords))
	for word := range commonWords {
		words = append(words, word)
	}
	return words
}

// FilterCounts removes stopwords (default set plus extras) from a
// frequency map. The input map is not modified.
func FilterCounts(counts map[string]int, extra []string) map[string]int {
	extraSet := make(map[string]struct{}, len(extra))
	for _, word := range extra {
		extraSet[word] = struct{}{}
	}

	filtered := make(map[string]int, len(counts))
	for word, count := range counts {
		if IsStopword(word) {
			continue
		}
		if _, ok := extraSet[word]; ok {
			continue
		}
		filtered[word] = count
	}
	return filtered
}
