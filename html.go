package curate

// HTMLParser parses HTML source into a queryable document.
type HTMLParser interface {
	// Parse parses html into a document. Returns EPARSE if the source
	// cannot be parsed as HTML at all. A document without any matching
	// elements is not an error.
	Parse(html string) (HTMLDocument, error)
}

// HTMLDocument is a parsed DOM that can be queried by CSS selector.
type HTMLDocument interface {
	// Query returns the elements matching selector in document order.
	// Returns an empty slice if nothing matches.
	Query(selector string) []HTMLElement
}

// HTMLElement is a single element of an HTMLDocument.
type HTMLElement interface {
	// Attr returns the value of the named attribute and whether it exists.
	Attr(name string) (string, bool)

	// Text returns the combined text content of the element and its descendants.
	Text() string
}
