package curate

import (
	"strings"
	"unicode"
)

// ResolveTitle picks the curated title by precedence: Open Graph title,
// then Twitter title, then the document <title>, then "". Candidates that
// are blank after trimming are skipped.
func ResolveTitle(sg *SocialGraph, documentTitle string) string {
	var candidates []string
	if sg != nil {
		candidates = append(candidates, sg.OpenGraph.Title(), sg.Twitter.Title())
	}
	candidates = append(candidates, documentTitle)

	for _, c := range candidates {
		if t := strings.TrimSpace(c); t != "" {
			return t
		}
	}
	return ""
}

// StandardizeTitle trims a title and collapses runs of whitespace
// (including newlines and non-breaking spaces) into single spaces.
func StandardizeTitle(title string) string {
	return strings.Join(strings.FieldsFunc(title, unicode.IsSpace), " ")
}
