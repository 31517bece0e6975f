package curate

import "strings"

// Selectors used to read the capability fields out of an HTMLDocument.
const (
	metaSelector   = "meta[content]"
	scriptSelector = "script[type]"
	titleSelector  = "title"
)

// QueryableHTML is content whose HTML source has been parsed into a
// queryable document.
type QueryableHTML interface {
	Content

	// Document returns the parsed document owned by this record.
	Document() HTMLDocument

	// Meta returns the page meta tags keyed by name or property.
	// Never nil.
	Meta() *MetaTags

	// DocumentTitle returns the trimmed text of the first <title> element.
	DocumentTitle() string

	// SchemaBlocks returns the raw text of every JSON-LD script block in
	// document order.
	SchemaBlocks() []string

	// UntypedSchemas decodes the JSON-LD blocks. See ExtractSchemas.
	UntypedSchemas(flatten bool, filter SchemaFilter, onError SchemaErrorFunc) []UntypedSchema
}

// Ensure QueryableHTMLContent implements QueryableHTML at compile time.
var _ QueryableHTML = (*QueryableHTMLContent)(nil)

// QueryableHTMLContent adds a parsed HTML document to GovernedContent.
type QueryableHTMLContent struct {
	*GovernedContent

	doc HTMLDocument
}

// NewQueryableHTMLContent wraps content with its parsed document.
func NewQueryableHTMLContent(content *GovernedContent, doc HTMLDocument) *QueryableHTMLContent {
	return &QueryableHTMLContent{GovernedContent: content, doc: doc}
}

func (c *QueryableHTMLContent) Document() HTMLDocument {
	return c.doc
}

// Meta collects every <meta> element that has a content attribute and a
// name or property attribute. An element carrying both is recorded under
// each key. The first occurrence of a key wins.
func (c *QueryableHTMLContent) Meta() *MetaTags {
	meta := NewMetaTags()
	for _, el := range c.doc.Query(metaSelector) {
		content, _ := el.Attr("content")
		content = strings.TrimSpace(content)
		for _, attr := range []string{"name", "property"} {
			if key, ok := el.Attr(attr); ok {
				meta.Add(key, content)
			}
		}
	}
	return meta
}

func (c *QueryableHTMLContent) DocumentTitle() string {
	titles := c.doc.Query(titleSelector)
	if len(titles) == 0 {
		return ""
	}
	return strings.TrimSpace(titles[0].Text())
}

func (c *QueryableHTMLContent) SchemaBlocks() []string {
	var blocks []string
	for _, el := range c.doc.Query(scriptSelector) {
		typ, _ := el.Attr("type")
		if !IsJSONLDType(typ) {
			continue
		}
		blocks = append(blocks, el.Text())
	}
	return blocks
}

func (c *QueryableHTMLContent) UntypedSchemas(flatten bool, filter SchemaFilter, onError SchemaErrorFunc) []UntypedSchema {
	return ExtractSchemas(c.SchemaBlocks(), flatten, filter, onError)
}
