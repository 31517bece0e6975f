package curate

// Content is the opaque value passed through a Pipeline. Every capability
// level implements it; use the Is* guards to narrow a Content value to a
// richer capability.
type Content interface {
	// Governed returns the base record shared by every capability level.
	Governed() *GovernedContent
}

// Input is the raw value a Pipeline run starts from.
type Input struct {
	HTMLSource string
	URI        string
}

// InitContext is shared by every stage of a single Pipeline run.
type InitContext struct {
	ContentType string
	MIMEType    MIMEType
}

// NewInitContext parses contentType into an InitContext.
func NewInitContext(contentType string) (*InitContext, error) {
	mt, err := ParseMIMEType(contentType)
	if err != nil {
		return nil, err
	}
	return &InitContext{ContentType: contentType, MIMEType: mt}, nil
}

// GovernedContent is the base record of a pipeline run. It is never
// modified after construction; later stages wrap it.
type GovernedContent struct {
	HTMLSource  string
	URI         string
	ContentType string
	MIMEType    MIMEType
}

// Governed implements Content.
func (c *GovernedContent) Governed() *GovernedContent {
	return c
}

// Validate returns an error if the content is missing required fields.
func (c *GovernedContent) Validate() error {
	if c.HTMLSource == "" {
		return Errorf(EINVALID, "html source required")
	}
	return nil
}

// ContentSniffer guesses the content type of a source that arrives without
// a declared one.
type ContentSniffer interface {
	// Sniff returns a content type string such as "text/html; charset=utf-8".
	Sniff(data []byte) string
}
