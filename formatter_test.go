package curate_test

import (
	"testing"

	"github.com/fwojciec/curate"
	"github.com/stretchr/testify/assert"
)

func TestFormatRecords(t *testing.T) {
	t.Parallel()

	t.Run("formats single record with title", func(t *testing.T) {
		t.Parallel()

		records := []*curate.Record{
			{
				URI:        "https://example.com/a",
				Capability: curate.CapabilityCuratable,
				Title:      "Getting Started",
				Meta:       []curate.MetaTag{{Name: "description", Content: "d"}},
			},
		}

		result := curate.FormatRecords(records)

		expected := "## Record: Getting Started\nuri: https://example.com/a\ncapability: curatable\nmeta: 1 tags"
		assert.Equal(t, expected, result)
	})

	t.Run("uses URI when title is empty", func(t *testing.T) {
		t.Parallel()

		records := []*curate.Record{
			{URI: "https://example.com/docs", Capability: curate.CapabilityGoverned},
		}

		result := curate.FormatRecords(records)

		expected := "## Record: https://example.com/docs\nuri: https://example.com/docs\ncapability: governed\nmeta: 0 tags"
		assert.Equal(t, expected, result)
	})

	t.Run("lists social graph properties sorted by key", func(t *testing.T) {
		t.Parallel()

		records := []*curate.Record{
			{
				URI:        "u",
				Capability: curate.CapabilityCuratable,
				Title:      "T",
				SocialGraph: &curate.SocialGraph{
					OpenGraph: curate.OpenGraph{"type": "article", "title": "T"},
					Twitter:   curate.TwitterCard{"card": "summary"},
				},
			},
		}

		result := curate.FormatRecords(records)

		expected := "## Record: T\nuri: u\ncapability: curatable\n" +
			"og:title: T\nog:type: article\ntwitter:card: summary\nmeta: 0 tags"
		assert.Equal(t, expected, result)
	})

	t.Run("lists schema types with a marker for untyped schemas", func(t *testing.T) {
		t.Parallel()

		records := []*curate.Record{
			{
				URI:        "u",
				Capability: curate.CapabilityQueryable,
				Schemas: []any{
					map[string]any{"@type": "NewsArticle"},
					map[string]any{"@index": 1, "@error": "bad"},
				},
			},
		}

		result := curate.FormatRecords(records)

		assert.Contains(t, result, "schemas: NewsArticle, ?\n")
	})

	t.Run("appends the article excerpt", func(t *testing.T) {
		t.Parallel()

		records := []*curate.Record{
			{
				URI:        "u",
				Capability: curate.CapabilityReadable,
				Title:      "T",
				Article:    &curate.RecordArticle{Excerpt: "A short summary."},
			},
		}

		result := curate.FormatRecords(records)

		expected := "## Record: T\nuri: u\ncapability: readable\nmeta: 0 tags\n\nA short summary."
		assert.Equal(t, expected, result)
	})

	t.Run("formats multiple records with blank line separator", func(t *testing.T) {
		t.Parallel()

		records := []*curate.Record{
			{URI: "a", Capability: curate.CapabilityGoverned, Title: "One"},
			{URI: "b", Capability: curate.CapabilityGoverned, Title: "Two"},
		}

		result := curate.FormatRecords(records)

		expected := "## Record: One\nuri: a\ncapability: governed\nmeta: 0 tags\n\n" +
			"## Record: Two\nuri: b\ncapability: governed\nmeta: 0 tags"
		assert.Equal(t, expected, result)
	})

	t.Run("returns empty string for nil slice", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, curate.FormatRecords(nil))
	})
}
