// Package goquery implements the HTML query capability on top of goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/curate"
)

// Ensure Parser implements curate.HTMLParser at compile time.
var _ curate.HTMLParser = (*Parser)(nil)

// Parser parses HTML with goquery.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses html into a Document.
func (p *Parser) Parse(html string) (curate.HTMLDocument, error) {
	if strings.TrimSpace(html) == "" {
		return nil, curate.Errorf(curate.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, curate.Errorf(curate.EPARSE, "failed to parse HTML: %v", err)
	}

	return &Document{doc: doc}, nil
}

// Ensure Document implements curate.HTMLDocument at compile time.
var _ curate.HTMLDocument = (*Document)(nil)

// Document wraps a parsed goquery document. It is owned by the content
// record it was created for and never shared between pipeline runs.
type Document struct {
	doc *goquery.Document
}

// Query returns the elements matching selector in document order.
// An invalid selector matches nothing.
func (d *Document) Query(selector string) []curate.HTMLElement {
	sel := d.doc.Find(selector)
	elements := make([]curate.HTMLElement, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		elements = append(elements, &Element{sel: s})
	})
	return elements
}

// Ensure Element implements curate.HTMLElement at compile time.
var _ curate.HTMLElement = (*Element)(nil)

// Element is a single matched element.
type Element struct {
	sel *goquery.Selection
}

// Attr returns the value of the named attribute and whether it exists.
func (e *Element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

// Text returns the combined text content of the element.
func (e *Element) Text() string {
	return e.sel.Text()
}
