package curate

import (
	"mime"
	"strings"
)

// MIMEType is a parsed content-type descriptor.
type MIMEType struct {
	Type    string
	Subtype string
	Params  map[string]string
}

// ParseMIMEType parses a content-type string such as
// "text/html; charset=utf-8". Type, subtype and parameter names are
// lower-cased. Returns EINVALID if the value is not a valid media type.
func ParseMIMEType(contentType string) (MIMEType, error) {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return MIMEType{}, Errorf(EINVALID, "invalid content type %q: %v", contentType, err)
	}

	typ, subtype, ok := strings.Cut(mediaType, "/")
	if !ok || typ == "" || subtype == "" {
		return MIMEType{}, Errorf(EINVALID, "invalid content type %q: missing subtype", contentType)
	}

	return MIMEType{
		Type:    typ,
		Subtype: subtype,
		Params:  params,
	}, nil
}

// Essence returns "type/subtype" without parameters.
// Returns an empty string for the zero value.
func (m MIMEType) Essence() string {
	if m.Type == "" {
		return ""
	}
	return m.Type + "/" + m.Subtype
}

// Param returns the named parameter, e.g. "charset".
func (m MIMEType) Param(name string) string {
	return m.Params[strings.ToLower(name)]
}

// IsZero reports whether the MIME type is unset.
func (m MIMEType) IsZero() bool {
	return m.Type == "" && m.Subtype == ""
}

// IsHTML reports whether the MIME type denotes an HTML document.
func (m MIMEType) IsHTML() bool {
	switch m.Essence() {
	case "text/html", "application/xhtml+xml":
		return true
	}
	return false
}

// String formats the MIME type back into a content-type string.
func (m MIMEType) String() string {
	if m.IsZero() {
		return ""
	}
	return mime.FormatMediaType(m.Essence(), m.Params)
}
