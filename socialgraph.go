package curate

// Meta tag prefixes of the social graph conventions.
const (
	OpenGraphPrefix = "og:"
	TwitterPrefix   = "twitter:"
)

// SocialGraph holds social preview metadata. Either side is nil when the
// document carries no corresponding meta tags.
type SocialGraph struct {
	OpenGraph OpenGraph   `json:"openGraph,omitempty" yaml:"openGraph,omitempty"`
	Twitter   TwitterCard `json:"twitter,omitempty" yaml:"twitter,omitempty"`
}

// NewSocialGraph reads og:* and twitter:* tags from meta. The prefix is
// stripped to form property keys, so og:image:width becomes image:width.
// Returns nil if neither convention is present.
func NewSocialGraph(meta *MetaTags) *SocialGraph {
	og := meta.WithPrefix(OpenGraphPrefix)
	tw := meta.WithPrefix(TwitterPrefix)
	if og == nil && tw == nil {
		return nil
	}
	return &SocialGraph{
		OpenGraph: OpenGraph(og),
		Twitter:   TwitterCard(tw),
	}
}

// OpenGraph maps Open Graph properties (without the og: prefix) to values.
type OpenGraph map[string]string

func (g OpenGraph) Title() string       { return g["title"] }
func (g OpenGraph) Type() string        { return g["type"] }
func (g OpenGraph) Description() string { return g["description"] }
func (g OpenGraph) URL() string         { return g["url"] }
func (g OpenGraph) Image() string       { return g["image"] }
func (g OpenGraph) SiteName() string    { return g["site_name"] }
func (g OpenGraph) Locale() string      { return g["locale"] }

// TwitterCard maps Twitter Card properties (without the twitter: prefix) to values.
type TwitterCard map[string]string

func (c TwitterCard) Title() string       { return c["title"] }
func (c TwitterCard) Card() string        { return c["card"] }
func (c TwitterCard) Description() string { return c["description"] }
func (c TwitterCard) Image() string       { return c["image"] }
func (c TwitterCard) Site() string        { return c["site"] }
func (c TwitterCard) Creator() string     { return c["creator"] }
