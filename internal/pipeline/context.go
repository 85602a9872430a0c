package pipeline

import (
	"github.com/weftlang/weft/internal/ast"
	"github.com/weftlang/weft/internal/diagnostics"
)

// CompanionSource loads precompiled trait companions by qualified trait
// name. Declared here rather than imported from the composition package
// to break a dependency cycle; the composition package declares the
// identical interface on its side.
type CompanionSource interface {
	LookupCompanions(traitName string) (helper, fieldHelper *ast.ClassDecl, ok bool, err error)
}

// Processor is a single pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext carries one compilation unit through the stages.
type PipelineContext struct {
	FilePath string
	Unit     *ast.Unit
	Lookup   CompanionSource // nil when no precompiled artifacts are attached
	Diags    *diagnostics.Collector
}

// NewPipelineContext creates a context for one unit with a fresh
// diagnostic collector.
func NewPipelineContext(unit *ast.Unit) *PipelineContext {
	ctx := &PipelineContext{
		Unit:  unit,
		Diags: diagnostics.NewCollector(),
	}
	if unit != nil {
		ctx.FilePath = unit.File
	}
	return ctx
}
