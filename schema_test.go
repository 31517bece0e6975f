package curate_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/curate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSchemas(t *testing.T) {
	t.Parallel()

	t.Run("decodes well-formed blocks in order", func(t *testing.T) {
		t.Parallel()

		blocks := []string{
			`{"@type": "NewsArticle", "headline": "A"}`,
			`{"@type": "WebPage"}`,
			`{"@type": "Organization"}`,
		}

		schemas := curate.ExtractSchemas(blocks, true, nil, nil)

		require.Len(t, schemas, 3)
		assert.Equal(t, "NewsArticle", curate.SchemaType(schemas[0]))
		assert.Equal(t, "WebPage", curate.SchemaType(schemas[1]))
		assert.Equal(t, "Organization", curate.SchemaType(schemas[2]))
	})

	t.Run("keeps a placeholder for a malformed block", func(t *testing.T) {
		t.Parallel()

		blocks := []string{
			`{"@type": "A"}`,
			`{"@type": "B",, }`,
			`{"@type": "C"}`,
		}

		var calls []int
		schemas := curate.ExtractSchemas(blocks, true, nil, func(m *curate.MalformedSchema, index int) {
			calls = append(calls, index)
			assert.Equal(t, 1, m.Index)
			assert.Equal(t, blocks[1], m.Text)
			assert.Error(t, m.Err)
		})

		assert.Equal(t, []int{1}, calls)
		require.Len(t, schemas, 3)
		assert.Equal(t, "A", curate.SchemaType(schemas[0]))
		malformed, ok := schemas[1].(*curate.MalformedSchema)
		require.True(t, ok)
		assert.Equal(t, 1, malformed.Index)
		assert.Contains(t, malformed.Error(), "malformed JSON-LD block 1")
		assert.Equal(t, "C", curate.SchemaType(schemas[2]))
	})

	t.Run("reports every malformed block with its own index", func(t *testing.T) {
		t.Parallel()

		blocks := []string{`nope`, `{"@type": "A"}`, ``, `{"@type": "B"} trailing`}

		var calls []int
		schemas := curate.ExtractSchemas(blocks, false, nil, func(_ *curate.MalformedSchema, index int) {
			calls = append(calls, index)
		})

		assert.Equal(t, []int{0, 2, 3}, calls)
		assert.Len(t, schemas, 4)
	})

	t.Run("flattens arrays in place", func(t *testing.T) {
		t.Parallel()

		blocks := []string{
			`{"@type": "First"}`,
			`[{"@type": "A"}, {"@type": "B"}]`,
			`{"@type": "Last"}`,
		}

		schemas := curate.ExtractSchemas(blocks, true, nil, nil)

		require.Len(t, schemas, 4)
		assert.Equal(t, []string{"First", "A", "B", "Last"}, types(schemas))
	})

	t.Run("keeps arrays nested without flatten", func(t *testing.T) {
		t.Parallel()

		blocks := []string{`[{"@type": "A"}, {"@type": "B"}]`}

		schemas := curate.ExtractSchemas(blocks, false, nil, nil)

		require.Len(t, schemas, 1)
		nested, ok := schemas[0].([]any)
		require.True(t, ok)
		assert.Len(t, nested, 2)
	})

	t.Run("expands graphs and inherits the context", func(t *testing.T) {
		t.Parallel()

		blocks := []string{`{
			"@context": "https://schema.org",
			"@graph": [
				{"@type": "WebSite"},
				{"@type": "Person", "@context": "https://example.org/ctx"}
			]
		}`}

		schemas := curate.ExtractSchemas(blocks, true, nil, nil)

		require.Len(t, schemas, 2)
		site := schemas[0].(map[string]any)
		person := schemas[1].(map[string]any)
		assert.Equal(t, "https://schema.org", site["@context"])
		assert.Equal(t, "https://example.org/ctx", person["@context"])
	})

	t.Run("filter receives the block index", func(t *testing.T) {
		t.Parallel()

		blocks := []string{`{"@type": "A"}`, `[{"@type": "B"}, {"@type": "C"}]`, `broken`}

		var seen []int
		schemas := curate.ExtractSchemas(blocks, true, func(schema curate.UntypedSchema, index int) bool {
			seen = append(seen, index)
			return curate.SchemaType(schema) != "B"
		}, nil)

		assert.Equal(t, []int{0, 1, 1, 2}, seen)
		require.Len(t, schemas, 3)
		assert.Equal(t, "A", curate.SchemaType(schemas[0]))
		assert.Equal(t, "C", curate.SchemaType(schemas[1]))
		assert.IsType(t, &curate.MalformedSchema{}, schemas[2])
	})

	t.Run("returns empty slice for no blocks", func(t *testing.T) {
		t.Parallel()

		schemas := curate.ExtractSchemas(nil, true, nil, nil)

		assert.NotNil(t, schemas)
		assert.Empty(t, schemas)
	})

	t.Run("unwraps comment and CDATA wrappers", func(t *testing.T) {
		t.Parallel()

		blocks := []string{
			"<!-- {\"@type\": \"A\"} -->",
			"//<![CDATA[\n{\"@type\": \"B\"}\n//]]>",
		}

		schemas := curate.ExtractSchemas(blocks, true, nil, nil)

		assert.Equal(t, []string{"A", "B"}, types(schemas))
	})

	t.Run("decodes numbers as json.Number", func(t *testing.T) {
		t.Parallel()

		schemas := curate.ExtractSchemas([]string{`{"@type": "Offer", "price": 19.990}`}, true, nil, nil)

		require.Len(t, schemas, 1)
		offer := schemas[0].(map[string]any)
		assert.Equal(t, json.Number("19.990"), offer["price"])
	})
}

func TestSchemaType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Thing", curate.SchemaType(map[string]any{"@type": "Thing"}))
	assert.Equal(t, "Article", curate.SchemaType(map[string]any{"@type": []any{"Article", "NewsArticle"}}))
	assert.Empty(t, curate.SchemaType(map[string]any{"name": "untyped"}))
	assert.Empty(t, curate.SchemaType("just a string"))
	assert.Empty(t, curate.SchemaType(&curate.MalformedSchema{}))
}

func TestIsJSONLDType(t *testing.T) {
	t.Parallel()

	assert.True(t, curate.IsJSONLDType("application/ld+json"))
	assert.True(t, curate.IsJSONLDType(" Application/LD+JSON "))
	assert.True(t, curate.IsJSONLDType("application/ld+json; charset=utf-8"))
	assert.False(t, curate.IsJSONLDType("application/json"))
	assert.False(t, curate.IsJSONLDType("text/javascript"))
	assert.False(t, curate.IsJSONLDType(""))
}

func types(schemas []curate.UntypedSchema) []string {
	out := make([]string, 0, len(schemas))
	for _, s := range schemas {
		out = append(out, curate.SchemaType(s))
	}
	return out
}
