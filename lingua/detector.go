package lingua

import (
	"strings"

	"github.com/fwojciec/curate"
	"github.com/pemistahl/lingua-go"
)

// Ensure Detector implements curate.LanguageDetector at compile time.
var _ curate.LanguageDetector = (*Detector)(nil)

// Detector guesses the language of article text with lingua.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector creates a Detector restricted to languages. With no
// languages every supported language is considered.
func NewDetector(languages ...lingua.Language) *Detector {
	builder := lingua.NewLanguageDetectorBuilder().FromAllLanguages()
	if len(languages) > 0 {
		builder = lingua.NewLanguageDetectorBuilder().FromLanguages(languages...)
	}
	return &Detector{detector: builder.WithLowAccuracyMode().Build()}
}

// DetectLanguage returns the lower-cased ISO 639-1 code of the language of
// text.
func (d *Detector) DetectLanguage(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	language, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(language.IsoCode639_1().String()), true
}
