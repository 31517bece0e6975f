package curate

// Curatable is queryable content with a curated title and social graph.
type Curatable interface {
	QueryableHTML

	// Title returns the curated title.
	Title() string

	// SocialGraph returns Open Graph and Twitter Card metadata, or nil.
	SocialGraph() *SocialGraph
}

// Ensure CuratableContent implements Curatable at compile time.
var _ Curatable = (*CuratableContent)(nil)

// CuratableContent adds a title and social graph to QueryableHTMLContent.
type CuratableContent struct {
	*QueryableHTMLContent

	title       string
	socialGraph *SocialGraph
}

// NewCuratableContent wraps content with a title and social graph.
func NewCuratableContent(content *QueryableHTMLContent, title string, sg *SocialGraph) *CuratableContent {
	return &CuratableContent{
		QueryableHTMLContent: content,
		title:                title,
		socialGraph:          sg,
	}
}

func (c *CuratableContent) Title() string {
	return c.title
}

func (c *CuratableContent) SocialGraph() *SocialGraph {
	return c.socialGraph
}

// WithTitle returns a copy of c carrying title. c is not modified.
func (c *CuratableContent) WithTitle(title string) *CuratableContent {
	return NewCuratableContent(c.QueryableHTMLContent, title, c.socialGraph)
}
