package readability

import (
	"strings"

	"github.com/fwojciec/curate"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements curate.Extractor at compile time.
var _ curate.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the readable article of a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article and its byline,
// excerpt and publication metadata.
func (e *Extractor) Extract(rawHTML string) (*curate.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, curate.Errorf(curate.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, curate.Errorf(curate.EPARSE, "readability: %v", err)
	}

	return &curate.ExtractResult{
		Title:       strings.TrimSpace(article.Title),
		Byline:      strings.TrimSpace(article.Byline),
		Excerpt:     strings.TrimSpace(article.Excerpt),
		SiteName:    strings.TrimSpace(article.SiteName),
		Image:       article.Image,
		Language:    article.Language,
		Published:   article.PublishedTime,
		ContentHTML: article.Content,
		Text:        strings.TrimSpace(article.TextContent),
	}, nil
}
