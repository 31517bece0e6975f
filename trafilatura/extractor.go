package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/curate"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements curate.Extractor at compile time.
var _ curate.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the readable article of a page.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor with fallback extractors enabled.
func NewExtractor() *Extractor {
	return &Extractor{opts: trafilatura.Options{EnableFallback: true}}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*curate.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, curate.Errorf(curate.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, curate.Errorf(curate.EPARSE, "trafilatura: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	meta := result.Metadata
	out := &curate.ExtractResult{
		Title:       meta.Title,
		Byline:      meta.Author,
		Excerpt:     meta.Description,
		SiteName:    meta.Sitename,
		Image:       meta.Image,
		Language:    meta.Language,
		ContentHTML: contentHTML,
		Text:        strings.TrimSpace(result.ContentText),
	}
	if !meta.Date.IsZero() {
		published := meta.Date
		out.Published = &published
	}
	return out, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
