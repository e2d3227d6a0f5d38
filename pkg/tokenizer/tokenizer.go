// Package tokenizer wraps Japanese morphological analyzers behind a single
// interface. The analysis itself is delegated to kagome; this package only
// shapes options, filtering, and output records around it.
package tokenizer

import (
	"fmt"

	"github.com/ugohsu/colab-nlp-templates/models"
)

// Tokenizer turns one text into an ordered sequence of tokens.
type Tokenizer interface {
	TokenizeOne(text string) ([]models.Token, error)
}

// Options controls how a tokenizer adapter emits tokens.
type Options struct {
	// BaseForm selects the dictionary base form instead of the surface
	// form. Falls back to the surface form when the analyzer has none.
	BaseForm bool
	// Detail populates Token.Detail. Off by default for speed.
	Detail bool
	// Mode is the segmentation mode: "normal", "search" or "extended".
	Mode string
}

// New returns a tokenizer adapter for the named engine.
// Known engines: "ipa" (kagome + IPA dictionary), "uni" (kagome + UniDic).
func New(engine string, opts Options) (Tokenizer, error) {
	switch engine {
	case "ipa", "":
		return NewIPA(opts)
	case "uni":
		return NewUni(opts)
	default:
		return nil, fmt.Errorf("unknown engine: %s", engine)
	}
}

// TokenizeWords adapts a tokenizer plus filter into the plain
// text -> words function the batch pipeline consumes. The filter is
// validated up front so configuration mistakes fail before any processing,
// and the underlying tokenizer instance is reused across all calls.
func TokenizeWords(t Tokenizer, f Filter) (func(text string) ([]string, error), error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return func(text string) ([]string, error) {
		tokens, err := t.TokenizeOne(text)
		if err != nil {
			return nil, err
		}
		tokens, err = FilterTokens(tokens, f)
		if err != nil {
			return nil, err
		}
		return models.Words(tokens), nil
	}, nil
}
