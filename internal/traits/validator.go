package traits

import (
	"github.com/weftlang/weft/internal/ast"
	"github.com/weftlang/weft/internal/diagnostics"
)

// ValidateSupertrait checks that a trait's declared supertype, if any, is
// itself a trait. A violation is reported at the supertype's source
// position and the supertype relationship is not processed further; the
// rest of the compilation is unaffected.
func ValidateSupertrait(trait *ast.ClassDecl, diags *diagnostics.Collector) {
	super := trait.Supertype
	if super == nil || super.IsObject() {
		return
	}
	// The front end resolves supertype declarations before composition,
	// so an unresolved supertype is not trait-marked by definition.
	if !super.Decl.IsTrait() {
		diags.Add(diagnostics.NewError(diagnostics.ErrT001, super.GetToken(), super.Name))
	}
}
