package curate

// IsQueryableHTMLContent reports whether content has the HTML query
// capability and returns it narrowed. It holds for every richer
// capability level as well.
func IsQueryableHTMLContent(content Content) (QueryableHTML, bool) {
	q, ok := content.(QueryableHTML)
	return q, ok
}

// IsCuratableContent reports whether content has a curated title and
// social graph and returns it narrowed.
func IsCuratableContent(content Content) (Curatable, bool) {
	c, ok := content.(Curatable)
	return c, ok
}

// IsReadableContent reports whether content carries an extracted article
// and returns it narrowed.
func IsReadableContent(content Content) (Readable, bool) {
	r, ok := content.(Readable)
	return r, ok
}

// Capability names the richest capability level of a Content value.
type Capability string

// Capability levels, from least to most capable.
const (
	CapabilityGoverned  Capability = "governed"
	CapabilityQueryable Capability = "queryable"
	CapabilityCuratable Capability = "curatable"
	CapabilityReadable  Capability = "readable"
)

// CapabilityOf returns the richest capability level content has.
// Returns an empty Capability for nil content.
func CapabilityOf(content Content) Capability {
	switch content.(type) {
	case nil:
		return ""
	case Readable:
		return CapabilityReadable
	case Curatable:
		return CapabilityCuratable
	case QueryableHTML:
		return CapabilityQueryable
	default:
		return CapabilityGoverned
	}
}
