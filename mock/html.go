package mock

import "github.com/fwojciec/curate"

var _ curate.HTMLParser = (*HTMLParser)(nil)

// HTMLParser is a mock implementation of curate.HTMLParser.
type HTMLParser struct {
	ParseFn func(html string) (curate.HTMLDocument, error)
}

func (p *HTMLParser) Parse(html string) (curate.HTMLDocument, error) {
	return p.ParseFn(html)
}

var _ curate.HTMLDocument = (*HTMLDocument)(nil)

// HTMLDocument is a mock implementation of curate.HTMLDocument.
type HTMLDocument struct {
	QueryFn func(selector string) []curate.HTMLElement
}

func (d *HTMLDocument) Query(selector string) []curate.HTMLElement {
	return d.QueryFn(selector)
}

var _ curate.HTMLElement = (*HTMLElement)(nil)

// HTMLElement is a static implementation of curate.HTMLElement.
type HTMLElement struct {
	Attrs   map[string]string
	Content string
}

func (e *HTMLElement) Attr(name string) (string, bool) {
	v, ok := e.Attrs[name]
	return v, ok
}

func (e *HTMLElement) Text() string {
	return e.Content
}
