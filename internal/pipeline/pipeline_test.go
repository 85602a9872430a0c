package pipeline

import (
	"testing"

	"github.com/weftlang/weft/internal/ast"
	"github.com/weftlang/weft/internal/diagnostics"
	"github.com/weftlang/weft/internal/token"
)

type recordingProcessor struct {
	name string
	log  *[]string
	fail bool
}

func (r *recordingProcessor) Process(ctx *PipelineContext) *PipelineContext {
	*r.log = append(*r.log, r.name)
	if r.fail {
		ctx.Diags.Add(diagnostics.NewError(diagnostics.ErrT002, token.Token{}, r.name))
	}
	return ctx
}

func TestRunContinuesAfterDiagnostics(t *testing.T) {
	var log []string
	p := New(
		&recordingProcessor{name: "first", log: &log, fail: true},
		&recordingProcessor{name: "second", log: &log},
	)
	ctx := p.Run(NewPipelineContext(&ast.Unit{}))

	if len(log) != 2 || log[0] != "first" || log[1] != "second" {
		t.Errorf("stages ran %v, want both in order", log)
	}
	if ctx.Diags.Count() != 1 {
		t.Errorf("expected the first stage's diagnostic to be kept, got %d", ctx.Diags.Count())
	}
}

func TestNewPipelineContext(t *testing.T) {
	unit := &ast.Unit{File: "app/model.weft"}
	ctx := NewPipelineContext(unit)
	if ctx.FilePath != "app/model.weft" {
		t.Errorf("FilePath = %q", ctx.FilePath)
	}
	if ctx.Diags == nil {
		t.Error("context must carry a collector")
	}

	if got := NewPipelineContext(nil); got.FilePath != "" || got.Diags == nil {
		t.Errorf("nil-unit context = %+v", got)
	}
}
