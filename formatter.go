package curate

import (
	"fmt"
	"sort"
	"strings"
)

// FormatRecords formats records as a plain-text summary for display.
// Uses title if available, falls back to the URI.
// Records are separated by blank lines.
func FormatRecords(records []*Record) string {
	if len(records) == 0 {
		return ""
	}

	parts := make([]string, 0, len(records))
	for _, r := range records {
		parts = append(parts, formatRecord(r))
	}

	return strings.Join(parts, "\n\n")
}

func formatRecord(r *Record) string {
	var b strings.Builder
	b.WriteString("## Record: " + r.Header() + "\n")
	fmt.Fprintf(&b, "uri: %s\n", r.URI)
	fmt.Fprintf(&b, "capability: %s\n", r.Capability)

	if r.SocialGraph != nil {
		writeProperties(&b, "og", r.SocialGraph.OpenGraph)
		writeProperties(&b, "twitter", r.SocialGraph.Twitter)
	}

	if len(r.Schemas) > 0 {
		types := make([]string, 0, len(r.Schemas))
		for _, s := range r.Schemas {
			typ := SchemaType(s)
			if typ == "" {
				typ = "?"
			}
			types = append(types, typ)
		}
		fmt.Fprintf(&b, "schemas: %s\n", strings.Join(types, ", "))
	}

	fmt.Fprintf(&b, "meta: %d tags", len(r.Meta))

	if r.Article != nil && r.Article.Excerpt != "" {
		b.WriteString("\n\n" + r.Article.Excerpt)
	}

	return b.String()
}

// writeProperties writes props sorted by key, one per line.
func writeProperties(b *strings.Builder, prefix string, props map[string]string) {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, "%s:%s: %s\n", prefix, k, props[k])
	}
}
