// Package fs provides file-based storage for curated records.
package fs

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"

	"github.com/fwojciec/curate"
	"gopkg.in/yaml.v3"
)

// Record encodings.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// URIToPath converts a record URI to a relative file path with the given
// extension. The host, if any, becomes the first directory.
// Example: https://example.com/news/story → example.com/news/story.json
func URIToPath(uri, ext string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", curate.Errorf(curate.EINVALID, "invalid record uri %q: %v", uri, err)
	}

	p := u.Path
	if p == "" {
		p = u.Opaque
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return "", curate.Errorf(curate.EINVALID, "path traversal in record uri %q", uri)
		}
	}
	dir := p == "" || strings.HasSuffix(p, "/")
	rel := strings.TrimPrefix(path.Clean("/"+p), "/")

	// Root or trailing slash becomes an index file in that directory.
	if dir {
		rel = path.Join(rel, "index")
	} else {
		rel = strings.TrimSuffix(rel, path.Ext(rel))
		if rel == "" || strings.HasSuffix(rel, "/") {
			rel = path.Join(path.Dir(rel), "index")
		}
	}
	if u.Host != "" {
		rel = path.Join(u.Host, rel)
	}
	return rel + "." + ext, nil
}

// MarshalRecord encodes record as JSON or YAML.
func MarshalRecord(record *curate.Record, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		b, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(record)
	default:
		return nil, curate.Errorf(curate.EINVALID, "unsupported record format %q", format)
	}
}
