package curate

import (
	"context"
	"fmt"
	"strings"
)

// Ensure stages implement Transformer at compile time.
var (
	_ Transformer = (*EnrichQueryableHTMLContent)(nil)
	_ Transformer = (*BuildCuratableContent)(nil)
	_ Transformer = (*StandardizeCurationTitle)(nil)
	_ Transformer = (*EnrichReadableContent)(nil)
)

// EnrichQueryableHTMLContent parses the HTML source and adds the HTML
// query capability. Content whose type is not HTML passes through
// unchanged, as does content that is already queryable.
type EnrichQueryableHTMLContent struct {
	Parser HTMLParser
}

// Transform returns EINVALID if the HTML source is empty and EPARSE if it
// cannot be parsed. A nil Parser is EINTERNAL.
func (t *EnrichQueryableHTMLContent) Transform(ctx context.Context, content Content, init *InitContext) (Content, error) {
	if _, ok := IsQueryableHTMLContent(content); ok {
		return content, nil
	}

	base := content.Governed()
	mt := base.MIMEType
	if mt.IsZero() && init != nil {
		mt = init.MIMEType
	}
	if !mt.IsHTML() {
		return content, nil
	}

	if err := base.Validate(); err != nil {
		return nil, err
	}

	if t.Parser == nil {
		return nil, Errorf(EINTERNAL, "no HTML parser configured")
	}
	doc, err := t.Parser.Parse(base.HTMLSource)
	if err != nil {
		if ErrorCode(err) == EPARSE {
			return nil, err
		}
		return nil, Errorf(EPARSE, "cannot parse HTML of %q: %v", base.URI, err)
	}
	return NewQueryableHTMLContent(base, doc), nil
}

// BuildCuratableContent reads the social graph from the page meta tags
// and derives a provisional title. Content without the HTML query
// capability passes through unchanged.
type BuildCuratableContent struct{}

func (t *BuildCuratableContent) Transform(ctx context.Context, content Content, init *InitContext) (Content, error) {
	if _, ok := IsCuratableContent(content); ok {
		return content, nil
	}
	q, ok := IsQueryableHTMLContent(content)
	if !ok {
		return content, nil
	}

	sg := NewSocialGraph(q.Meta())
	title := ResolveTitle(sg, q.DocumentTitle())
	return NewCuratableContent(asQueryableHTMLContent(q), title, sg), nil
}

// StandardizeCurationTitle finalizes the curated title. It re-resolves the
// title against the complete social graph and the document title and
// normalizes its whitespace. Running it again yields the same title.
// Content that is not curatable passes through unchanged.
type StandardizeCurationTitle struct{}

func (t *StandardizeCurationTitle) Transform(ctx context.Context, content Content, init *InitContext) (Content, error) {
	c, ok := IsCuratableContent(content)
	if !ok {
		return content, nil
	}

	title := StandardizeTitle(ResolveTitle(c.SocialGraph(), c.DocumentTitle()))
	if title == "" {
		title = StandardizeTitle(c.Title())
	}
	if title == c.Title() {
		return content, nil
	}

	switch v := content.(type) {
	case *ReadableContent:
		return NewReadableContent(v.CuratableContent.WithTitle(title), v.Article()), nil
	case *CuratableContent:
		return v.WithTitle(title), nil
	default:
		return NewCuratableContent(asQueryableHTMLContent(c), title, c.SocialGraph()), nil
	}
}

// EnrichReadableContent extracts the main content of curatable content.
// Converter and Languages are optional. Content that is not curatable
// passes through unchanged.
type EnrichReadableContent struct {
	Extractor Extractor
	Converter Converter
	Languages LanguageDetector
}

func (t *EnrichReadableContent) Transform(ctx context.Context, content Content, init *InitContext) (Content, error) {
	if _, ok := IsReadableContent(content); ok {
		return content, nil
	}
	c, ok := IsCuratableContent(content)
	if !ok {
		return content, nil
	}

	base := c.Governed()
	result, err := t.Extractor.Extract(base.HTMLSource)
	if err != nil {
		return nil, fmt.Errorf("extract readable content of %q: %w", base.URI, err)
	}

	article := &ReadableArticle{
		ExtractResult: *result,
		WordCount:     len(strings.Fields(result.Text)),
	}

	if t.Converter != nil && strings.TrimSpace(result.ContentHTML) != "" {
		md, err := t.Converter.Convert(result.ContentHTML)
		if err != nil {
			return nil, fmt.Errorf("convert readable content of %q: %w", base.URI, err)
		}
		article.Markdown = md
		article.Outline = ExtractOutline(md)
	}

	if article.Language == "" {
		article.Language = documentLanguage(c.Document())
	}
	if article.Language == "" && t.Languages != nil {
		if lang, ok := t.Languages.DetectLanguage(result.Text); ok {
			article.Language = lang
		}
	}

	return NewReadableContent(asCuratableContent(c), article), nil
}

// documentLanguage returns the primary subtag of the <html lang> attribute.
func documentLanguage(doc HTMLDocument) string {
	els := doc.Query("html[lang]")
	if len(els) == 0 {
		return ""
	}
	lang, _ := els[0].Attr("lang")
	primary, _, _ := strings.Cut(strings.TrimSpace(lang), "-")
	return strings.ToLower(primary)
}

// asQueryableHTMLContent returns the concrete record behind q, rebuilding
// it for foreign implementations.
func asQueryableHTMLContent(q QueryableHTML) *QueryableHTMLContent {
	switch v := q.(type) {
	case *QueryableHTMLContent:
		return v
	case *CuratableContent:
		return v.QueryableHTMLContent
	case *ReadableContent:
		return v.QueryableHTMLContent
	}
	return NewQueryableHTMLContent(q.Governed(), q.Document())
}

// asCuratableContent returns the concrete record behind c, rebuilding it
// for foreign implementations.
func asCuratableContent(c Curatable) *CuratableContent {
	switch v := c.(type) {
	case *CuratableContent:
		return v
	case *ReadableContent:
		return v.CuratableContent
	}
	return NewCuratableContent(asQueryableHTMLContent(c), c.Title(), c.SocialGraph())
}
