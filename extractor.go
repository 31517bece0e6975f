package curate

import "time"

// ExtractResult holds the main content and article metadata extracted
// from an HTML page.
type ExtractResult struct {
	// Title is the article title as seen by the extractor. It does not
	// replace the curated title.
	Title string

	Byline    string
	Excerpt   string
	SiteName  string
	Image     string
	Language  string
	Published *time.Time

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string

	// Text is the plain text of the main content.
	Text string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}
