// Package models defines data structures shared across the toolkit.
package models

// Token represents a single morpheme produced by a tokenizer adapter.
type Token struct {
	// Word is the selected form: surface or dictionary base form,
	// depending on tokenizer options.
	Word string `json:"word"`
	// POS is the coarse (top-level) part-of-speech category.
	POS string `json:"pos"`
	// Detail is populated only when detail output was requested.
	Detail *TokenDetail `json:"detail,omitempty"`
}

// TokenDetail carries per-token extras. The field set is fixed so output
// schemas stay stable across engines.
type TokenDetail struct {
	Surface  string `json:"surface"`
	BaseForm string `json:"base_form,omitempty"`
	Reading  string `json:"reading,omitempty"`
}

// TokenRecord is one line of the tokens.jsonl output file.
type TokenRecord struct {
	DocID  int      `json:"doc_id"`
	Path   string   `json:"path"`
	Tokens []string `json:"tokens"`
}

// Words extracts the word column from a token slice.
func Words(tokens []Token) []string {
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = t.Word
	}
	return words
}
