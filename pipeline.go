package curate

import (
	"context"
	"fmt"
	"strings"
)

// Transformer is a single pipeline stage. Implementations hold no mutable
// state and may be shared by concurrent pipeline runs. A stage never
// modifies its input; it returns the input itself or a new, richer value.
type Transformer interface {
	Transform(ctx context.Context, content Content, init *InitContext) (Content, error)
}

// TransformerFunc adapts a function to the Transformer interface.
type TransformerFunc func(ctx context.Context, content Content, init *InitContext) (Content, error)

// Transform calls f.
func (f TransformerFunc) Transform(ctx context.Context, content Content, init *InitContext) (Content, error) {
	return f(ctx, content, init)
}

// Ensure Pipeline implements Transformer at compile time.
var _ Transformer = (*Pipeline)(nil)

// Pipeline runs a fixed list of transformers strictly in order.
type Pipeline struct {
	stages []Transformer
}

// Pipe composes stages into a Pipeline.
func Pipe(stages ...Transformer) *Pipeline {
	return &Pipeline{stages: append([]Transformer(nil), stages...)}
}

// Stages returns a copy of the pipeline's stages.
func (p *Pipeline) Stages() []Transformer {
	return append([]Transformer(nil), p.stages...)
}

// StageName names the stage at position i by its type, for example
// "1:BuildCuratableContent". Stages with a Name method, such as
// decorators, are named by it instead.
func StageName(i int, stage Transformer) string {
	if named, ok := stage.(interface{ Name() string }); ok {
		return named.Name()
	}
	name := fmt.Sprintf("%T", stage)
	return fmt.Sprintf("%d:%s", i, name[strings.LastIndex(name, ".")+1:])
}

// Transform passes content through every stage. Each stage receives the
// previous stage's result. The first failing stage aborts the run and its
// error is returned unchanged.
func (p *Pipeline) Transform(ctx context.Context, content Content, init *InitContext) (Content, error) {
	for _, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		next, err := stage.Transform(ctx, content, init)
		if err != nil {
			return nil, err
		}
		if next == nil {
			return nil, Errorf(EINTERNAL, "pipeline stage returned no content")
		}
		content = next
	}
	return content, nil
}

// Flow builds the GovernedContent for input and runs it through the
// pipeline. If init has a content type but no parsed MIME type, the
// content type is parsed first.
func (p *Pipeline) Flow(ctx context.Context, input Input, init InitContext) (Content, error) {
	if init.MIMEType.IsZero() && init.ContentType != "" {
		mt, err := ParseMIMEType(init.ContentType)
		if err != nil {
			return nil, err
		}
		init.MIMEType = mt
	}
	if init.ContentType == "" {
		init.ContentType = init.MIMEType.String()
	}

	content := &GovernedContent{
		HTMLSource:  input.HTMLSource,
		URI:         input.URI,
		ContentType: init.ContentType,
		MIMEType:    init.MIMEType,
	}
	return p.Transform(ctx, content, &init)
}

// StandardPipeline returns the curation pipeline: enrich with HTML query
// capability, build curatable content, standardize the title.
func StandardPipeline(parser HTMLParser) *Pipeline {
	return Pipe(
		&EnrichQueryableHTMLContent{Parser: parser},
		&BuildCuratableContent{},
		&StandardizeCurationTitle{},
	)
}

// ExtendedPipeline returns StandardPipeline followed by readable.
func ExtendedPipeline(parser HTMLParser, readable *EnrichReadableContent) *Pipeline {
	return Pipe(append(StandardPipeline(parser).Stages(), readable)...)
}
