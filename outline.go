package curate

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	atxHeadingRe = regexp.MustCompile(`(?m)^ {0,3}(#{1,6})[ \t]+(.+?)(?:[ \t]+#+)?[ \t]*$`)
	fencedCodeRe = regexp.MustCompile("(?ms)^ {0,3}(```|~~~).*?^ {0,3}(```|~~~)[ \t]*$")
)

// Heading is one entry of an article outline.
type Heading struct {
	Level  int    `json:"level" yaml:"level"`
	Title  string `json:"title" yaml:"title"`
	Anchor string `json:"anchor" yaml:"anchor"`
}

// ExtractOutline returns the ATX headings of a Markdown article in order.
// Anchors are unique within the outline; repeats get a numeric suffix.
// Headings inside fenced code blocks are ignored.
func ExtractOutline(markdown string) []Heading {
	if strings.TrimSpace(markdown) == "" {
		return nil
	}

	matches := atxHeadingRe.FindAllStringSubmatch(fencedCodeRe.ReplaceAllString(markdown, ""), -1)
	if len(matches) == 0 {
		return nil
	}

	outline := make([]Heading, 0, len(matches))
	seen := make(map[string]int)
	for _, m := range matches {
		title := strings.TrimSpace(m[2])
		anchor := slugify(title)
		if n := seen[anchor]; n > 0 {
			seen[anchor]++
			anchor += "-" + strconv.Itoa(n)
		} else {
			seen[anchor] = 1
		}
		outline = append(outline, Heading{Level: len(m[1]), Title: title, Anchor: anchor})
	}
	return outline
}

// slugify lower-cases title, keeps letters and digits and joins words
// with single hyphens.
func slugify(title string) string {
	var b strings.Builder
	hyphen := false
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			hyphen = false
		case (unicode.IsSpace(r) || r == '-') && !hyphen && b.Len() > 0:
			b.WriteByte('-')
			hyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
