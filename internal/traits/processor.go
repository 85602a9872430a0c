package traits

import (
	"github.com/weftlang/weft/internal/pipeline"
)

// ComposerProcessor is the pipeline stage that runs trait composition
// over every class of the unit, in declaration order.
type ComposerProcessor struct{}

func (cp *ComposerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Unit == nil {
		return ctx
	}
	var lookup CompanionLookup = ctx.Lookup
	composer := NewComposer(lookup, ctx.Diags)
	for _, class := range ctx.Unit.Classes {
		composer.Compose(class)
	}
	return ctx
}
