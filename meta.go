package curate

import "strings"

// MetaTag is a single name/content pair read from a <meta> element.
type MetaTag struct {
	Name    string `json:"name" yaml:"name"`
	Content string `json:"content" yaml:"content"`
}

// MetaTags maps meta tag names to their content, preserving document order.
// When a name occurs more than once the first occurrence wins, matching
// the precedence of tags earlier in <head>.
type MetaTags struct {
	tags  []MetaTag
	index map[string]int
}

// NewMetaTags returns an empty MetaTags.
func NewMetaTags() *MetaTags {
	return &MetaTags{index: make(map[string]int)}
}

// Add records a tag. Names are trimmed and lower-cased. Returns false if
// the name is empty or was already recorded.
func (m *MetaTags) Add(name, content string) bool {
	name = normalizeMetaName(name)
	if name == "" {
		return false
	}
	if _, ok := m.index[name]; ok {
		return false
	}
	if m.index == nil {
		m.index = make(map[string]int)
	}
	m.index[name] = len(m.tags)
	m.tags = append(m.tags, MetaTag{Name: name, Content: content})
	return true
}

// Get returns the content for name and whether it exists.
func (m *MetaTags) Get(name string) (string, bool) {
	if m == nil {
		return "", false
	}
	i, ok := m.index[normalizeMetaName(name)]
	if !ok {
		return "", false
	}
	return m.tags[i].Content, true
}

// Value returns the content for name, or an empty string.
func (m *MetaTags) Value(name string) string {
	v, _ := m.Get(name)
	return v
}

// Len returns the number of distinct names.
func (m *MetaTags) Len() int {
	if m == nil {
		return 0
	}
	return len(m.tags)
}

// Tags returns a copy of the tags in document order.
func (m *MetaTags) Tags() []MetaTag {
	if m == nil {
		return []MetaTag{}
	}
	tags := make([]MetaTag, len(m.tags))
	copy(tags, m.tags)
	return tags
}

// WithPrefix returns the tags whose name starts with prefix, with the
// prefix removed from the name. Returns nil if none match.
func (m *MetaTags) WithPrefix(prefix string) map[string]string {
	if m == nil {
		return nil
	}
	prefix = normalizeMetaName(prefix)

	var out map[string]string
	for _, tag := range m.tags {
		key, ok := strings.CutPrefix(tag.Name, prefix)
		if !ok || key == "" {
			continue
		}
		if out == nil {
			out = make(map[string]string)
		}
		out[key] = tag.Content
	}
	return out
}

// Map returns the tags as a plain map.
func (m *MetaTags) Map() map[string]string {
	out := make(map[string]string, m.Len())
	if m == nil {
		return out
	}
	for _, tag := range m.tags {
		out[tag.Name] = tag.Content
	}
	return out
}

func normalizeMetaName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
