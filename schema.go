package curate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// JSONLDMIMEType is the media type of embedded JSON-LD script blocks.
const JSONLDMIMEType = "application/ld+json"

// UntypedSchema is one decoded JSON-LD value. No shape is imposed: objects
// decode to map[string]any, arrays to []any and numbers to json.Number.
// Blocks that fail to decode are represented by *MalformedSchema.
type UntypedSchema = any

// SchemaFilter decides whether a schema is included in the result. index is
// the position of the originating block among all JSON-LD blocks.
type SchemaFilter func(schema UntypedSchema, index int) bool

// SchemaErrorFunc is called once for every JSON-LD block that fails to
// decode. index is the position of the block among all JSON-LD blocks.
type SchemaErrorFunc func(malformed *MalformedSchema, index int)

// MalformedSchema stands in for a JSON-LD block that could not be decoded
// so that results stay aligned with the blocks in the source document.
type MalformedSchema struct {
	// Index is the zero-based position of the block among JSON-LD blocks.
	Index int

	// Text is the raw, undecoded block text.
	Text string

	// Err is the decoding error.
	Err error
}

// Error implements the error interface.
func (m *MalformedSchema) Error() string {
	return fmt.Sprintf("malformed JSON-LD block %d: %v", m.Index, m.Err)
}

// Unwrap returns the underlying decoding error.
func (m *MalformedSchema) Unwrap() error {
	return m.Err
}

// ExtractSchemas decodes JSON-LD block texts given in document order.
//
// Each block is decoded on its own; a block that fails produces a
// *MalformedSchema at its position and a call to onError, and never stops
// the remaining blocks from being decoded. With flatten set, top-level
// arrays and @graph containers are expanded in place into their entries.
// filter, if non-nil, is applied to every resulting element, including
// malformed placeholders. The result is never nil.
func ExtractSchemas(blocks []string, flatten bool, filter SchemaFilter, onError SchemaErrorFunc) []UntypedSchema {
	schemas := make([]UntypedSchema, 0, len(blocks))

	for i, block := range blocks {
		var elems []UntypedSchema

		v, err := decodeSchema(block)
		if err != nil {
			malformed := &MalformedSchema{Index: i, Text: block, Err: err}
			if onError != nil {
				onError(malformed, i)
			}
			elems = []UntypedSchema{malformed}
		} else if flatten {
			elems = flattenSchema(v, nil)
		} else {
			elems = []UntypedSchema{v}
		}

		for _, elem := range elems {
			if filter != nil && !filter(elem, i) {
				continue
			}
			schemas = append(schemas, elem)
		}
	}

	return schemas
}

// SchemaType returns the @type of a decoded schema object. For a type
// array the first string entry is returned. Returns an empty string when
// the schema has no type.
func SchemaType(schema UntypedSchema) string {
	obj, ok := schema.(map[string]any)
	if !ok {
		return ""
	}
	switch t := obj["@type"].(type) {
	case string:
		return t
	case []any:
		for _, v := range t {
			if s, ok := v.(string); ok {
				return s
			}
		}
	}
	return ""
}

// IsJSONLDType reports whether a script type attribute denotes JSON-LD.
func IsJSONLDType(typ string) bool {
	essence, _, _ := strings.Cut(typ, ";")
	return strings.EqualFold(strings.TrimSpace(essence), JSONLDMIMEType)
}

// decodeSchema decodes exactly one JSON value from block.
func decodeSchema(block string) (any, error) {
	text := unwrapBlock(block)
	if text == "" {
		return nil, errors.New("empty block")
	}

	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after JSON value")
	}
	return v, nil
}

// unwrapBlock strips whitespace and the comment or CDATA wrappers some
// publishers put around script contents.
func unwrapBlock(block string) string {
	text := strings.TrimSpace(block)
	for _, wrap := range [][2]string{
		{"<!--", "-->"},
		{"//<![CDATA[", "//]]>"},
		{"<![CDATA[", "]]>"},
	} {
		if strings.HasPrefix(text, wrap[0]) && strings.HasSuffix(text, wrap[1]) {
			text = strings.TrimSpace(text[len(wrap[0]) : len(text)-len(wrap[1])])
		}
	}
	return text
}

// flattenSchema expands arrays and @graph containers into their entries,
// preserving order. Graph entries without their own @context inherit the
// nearest enclosing one.
func flattenSchema(v any, inherited any) []UntypedSchema {
	switch t := v.(type) {
	case []any:
		out := make([]UntypedSchema, 0, len(t))
		for _, elem := range t {
			out = append(out, flattenSchema(elem, inherited)...)
		}
		return out
	case map[string]any:
		if ctx, ok := t["@context"]; ok {
			inherited = ctx
		}
		if graph, ok := t["@graph"].([]any); ok {
			return flattenSchema(graph, inherited)
		}
		if _, ok := t["@context"]; !ok && inherited != nil {
			t["@context"] = inherited
		}
		return []UntypedSchema{t}
	default:
		return []UntypedSchema{t}
	}
}
