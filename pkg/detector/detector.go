// Package detector guesses the language of corpus documents. It is used to
// flag documents that are unlikely to be Japanese before they are fed to a
// Japanese morphological analyzer.
package detector

import (
	"github.com/pemistahl/lingua-go"
)

// Detector wraps a lingua language detector restricted to the languages a
// Japanese-centric corpus plausibly contains.
type Detector struct {
	d lingua.LanguageDetector
}

// New builds a detector. Construction loads language models and is
// comparatively expensive; reuse one instance per run.
func New() *Detector {
	languages := []lingua.Language{
		lingua.Japanese,
		lingua.English,
		lingua.Chinese,
		lingua.Korean,
	}
	return &Detector{
		d: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
	}
}

// Detect returns the ISO 639-1 code of the detected language. The second
// return is false when the text carries no usable signal (too short,
// symbols only).
func (d *Detector) Detect(text string) (string, bool) {
	lang, ok := d.d.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return lang.IsoCode639_1().String(), true
}

// IsJapanese is a convenience wrapper for the common check. Undetectable
// text counts as Japanese so short fragments are not flagged.
func (d *Detector) IsJapanese(text string) bool {
	code, ok := d.Detect(text)
	return !ok || code == "JA"
}
