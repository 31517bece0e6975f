package mock

import "github.com/fwojciec/curate"

var _ curate.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of curate.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*curate.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*curate.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ curate.LanguageDetector = (*LanguageDetector)(nil)

// LanguageDetector is a mock implementation of curate.LanguageDetector.
type LanguageDetector struct {
	DetectLanguageFn func(text string) (string, bool)
}

func (d *LanguageDetector) DetectLanguage(text string) (string, bool) {
	return d.DetectLanguageFn(text)
}
