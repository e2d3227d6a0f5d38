package tokenizer

import (
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/ugohsu/colab-nlp-templates/models"
)

// Kagome adapts the kagome morphological analyzer. The same adapter serves
// both dictionaries; NewIPA and NewUni differ only in the dictionary they
// load. Construction is expensive (the dictionary is deserialized), so a
// single instance should be reused across documents.
type Kagome struct {
	t    *tokenizer.Tokenizer
	mode tokenizer.TokenizeMode
	opts Options
}

var _ Tokenizer = (*Kagome)(nil)

// NewIPA creates a kagome adapter backed by the IPA dictionary.
func NewIPA(opts Options) (*Kagome, error) {
	return newKagome(ipa.Dict(), opts)
}

// NewUni creates a kagome adapter backed by the UniDic dictionary.
func NewUni(opts Options) (*Kagome, error) {
	return newKagome(uni.Dict(), opts)
}

func newKagome(d *dict.Dict, opts Options) (*Kagome, error) {
	mode, err := parseMode(opts.Mode)
	if err != nil {
		return nil, err
	}

	t, err := tokenizer.New(d, tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("failed to build tokenizer: %w", err)
	}

	return &Kagome{t: t, mode: mode, opts: opts}, nil
}

func parseMode(mode string) (tokenizer.TokenizeMode, error) {
	switch mode {
	case "", "normal":
		return tokenizer.Normal, nil
	case "search":
		return tokenizer.Search, nil
	case "extended":
		return tokenizer.Extended, nil
	default:
		return tokenizer.Normal, fmt.Errorf("unknown segmentation mode: %s", mode)
	}
}

// TokenizeOne analyzes a single text. Empty or all-whitespace input yields
// an empty token sequence, not an error.
func (k *Kagome) TokenizeOne(text string) ([]models.Token, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return []models.Token{}, nil
	}

	raw := k.t.Analyze(s, k.mode)
	tokens := make([]models.Token, 0, len(raw))
	for _, tok := range raw {
		if tok.Class == tokenizer.DUMMY {
			continue
		}

		word := tok.Surface
		base, hasBase := tok.BaseForm()
		if k.opts.BaseForm && hasBase && base != "*" {
			word = base
		}

		tokens = append(tokens, models.Token{
			Word:   word,
			POS:    coarsePOS(tok.POS()),
			Detail: k.detail(tok.Surface, base, hasBase, tok),
		})
	}

	return tokens, nil
}

func (k *Kagome) detail(surface, base string, hasBase bool, tok tokenizer.Token) *models.TokenDetail {
	if !k.opts.Detail {
		return nil
	}
	d := &models.TokenDetail{Surface: surface}
	if hasBase && base != "*" {
		d.BaseForm = base
	}
	if reading, ok := tok.Reading(); ok && reading != "*" {
		d.Reading = reading
	}
	return d
}

// coarsePOS reduces the analyzer's POS feature list to its top-level
// category.
func coarsePOS(features []string) string {
	if len(features) == 0 || features[0] == "" || features[0] == "*" {
		return "unknown"
	}
	return features[0]
}
