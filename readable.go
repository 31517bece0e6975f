package curate

// LanguageDetector guesses the natural language of a text.
type LanguageDetector interface {
	// DetectLanguage returns the ISO 639-1 code of the language of text.
	// Returns false if no language could be determined reliably.
	DetectLanguage(text string) (string, bool)
}

// ReadableArticle is the main content of a page.
type ReadableArticle struct {
	ExtractResult

	// Markdown is ContentHTML rendered as Markdown, if a Converter ran.
	Markdown string

	// Outline lists the headings of Markdown.
	Outline []Heading

	// WordCount is the number of whitespace-separated words in Text.
	WordCount int
}

// Readable is curatable content with extracted main content.
type Readable interface {
	Curatable

	// Article returns the extracted main content.
	Article() *ReadableArticle
}

// Ensure ReadableContent implements Readable at compile time.
var _ Readable = (*ReadableContent)(nil)

// ReadableContent adds the extracted main content to CuratableContent.
type ReadableContent struct {
	*CuratableContent

	article *ReadableArticle
}

// NewReadableContent wraps content with its extracted article.
func NewReadableContent(content *CuratableContent, article *ReadableArticle) *ReadableContent {
	return &ReadableContent{CuratableContent: content, article: article}
}

func (c *ReadableContent) Article() *ReadableArticle {
	return c.article
}
