package curate

import (
	"context"
	"time"
)

// Record is the serializable view of a curated content value handed to
// downstream syndication and indexing consumers.
type Record struct {
	ID          string         `json:"id,omitempty" yaml:"id,omitempty"`
	URI         string         `json:"uri" yaml:"uri"`
	ContentType string         `json:"contentType,omitempty" yaml:"contentType,omitempty"`
	ContentHash string         `json:"contentHash,omitempty" yaml:"contentHash,omitempty"`
	Capability  Capability     `json:"capability" yaml:"capability"`
	Title       string         `json:"title,omitempty" yaml:"title,omitempty"`
	SocialGraph *SocialGraph   `json:"socialGraph,omitempty" yaml:"socialGraph,omitempty"`
	Meta        []MetaTag      `json:"meta,omitempty" yaml:"meta,omitempty"`
	Schemas     []any          `json:"schemas,omitempty" yaml:"schemas,omitempty"`
	Article     *RecordArticle `json:"article,omitempty" yaml:"article,omitempty"`
}

// RecordArticle is the serializable view of a ReadableArticle.
type RecordArticle struct {
	Byline    string     `json:"byline,omitempty" yaml:"byline,omitempty"`
	Excerpt   string     `json:"excerpt,omitempty" yaml:"excerpt,omitempty"`
	SiteName  string     `json:"siteName,omitempty" yaml:"siteName,omitempty"`
	Image     string     `json:"image,omitempty" yaml:"image,omitempty"`
	Language  string     `json:"language,omitempty" yaml:"language,omitempty"`
	Published *time.Time `json:"published,omitempty" yaml:"published,omitempty"`
	WordCount int        `json:"wordCount" yaml:"wordCount"`
	Outline   []Heading  `json:"outline,omitempty" yaml:"outline,omitempty"`
	Markdown  string     `json:"markdown,omitempty" yaml:"markdown,omitempty"`
	Text      string     `json:"text,omitempty" yaml:"text,omitempty"`
}

// RecordOptions controls how schemas are read into a Record.
type RecordOptions struct {
	Flatten bool
	Filter  SchemaFilter
	OnError SchemaErrorFunc
}

// NewRecord flattens content of any capability level into a Record.
// Malformed JSON-LD blocks appear in Schemas as objects carrying "@index"
// and "@error" so positions still line up with the source document.
func NewRecord(content Content, opts RecordOptions) *Record {
	base := content.Governed()
	r := &Record{
		URI:         base.URI,
		ContentType: base.MIMEType.Essence(),
		Capability:  CapabilityOf(content),
	}
	if r.ContentType == "" {
		r.ContentType = base.ContentType
	}

	if q, ok := IsQueryableHTMLContent(content); ok {
		r.Meta = q.Meta().Tags()
		for _, schema := range q.UntypedSchemas(opts.Flatten, opts.Filter, opts.OnError) {
			if m, ok := schema.(*MalformedSchema); ok {
				schema = map[string]any{"@index": m.Index, "@error": m.Err.Error()}
			}
			r.Schemas = append(r.Schemas, schema)
		}
	}

	if c, ok := IsCuratableContent(content); ok {
		r.Title = c.Title()
		r.SocialGraph = c.SocialGraph()
	}

	if rc, ok := IsReadableContent(content); ok {
		if a := rc.Article(); a != nil {
			r.Article = &RecordArticle{
				Byline:    a.Byline,
				Excerpt:   a.Excerpt,
				SiteName:  a.SiteName,
				Image:     a.Image,
				Language:  a.Language,
				Published: a.Published,
				WordCount: a.WordCount,
				Outline:   a.Outline,
				Markdown:  a.Markdown,
				Text:      a.Text,
			}
		}
	}

	return r
}

// Header returns the title of the record, falling back to its URI.
func (r *Record) Header() string {
	if r.Title != "" {
		return r.Title
	}
	return r.URI
}

// RecordStore persists records with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type RecordStore interface {
	Save(ctx context.Context, record *Record) error
	Commit() error
	Abort() error
}
