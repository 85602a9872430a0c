package traits

import (
	"strings"

	"github.com/weftlang/weft/internal/ast"
	"github.com/weftlang/weft/internal/diagnostics"
)

// CompanionLookup loads the companion declarations of a previously
// compiled trait by qualified trait name. Absence is reported through ok,
// not through err; err is reserved for storage-level failures.
type CompanionLookup interface {
	LookupCompanions(traitName string) (helper, fieldHelper *ast.ClassDecl, ok bool, err error)
}

// ResolvedCompanions is the pair of companion declarations a trait
// contributes from. FieldHelper is nil for stateless traits.
type ResolvedCompanions struct {
	Helper      *ast.ClassDecl
	FieldHelper *ast.ClassDecl
}

// HelperResolver locates a trait's companions, either among the trait's
// nested declarations (trait compiled in the current unit) or through the
// precompiled lookup capability.
type HelperResolver struct {
	lookup CompanionLookup
}

func NewHelperResolver(lookup CompanionLookup) *HelperResolver {
	return &HelperResolver{lookup: lookup}
}

// Resolve returns the trait's companions, or a diagnostic when the helper
// is unavailable. A missing field helper is not an error: the trait
// simply carries no state.
func (r *HelperResolver) Resolve(trait *ast.ClassDecl) (ResolvedCompanions, *diagnostics.DiagnosticError) {
	if len(trait.Nested) > 0 {
		// Trait declared in the unit being compiled: the generator left
		// its companions as nested declarations.
		var comps ResolvedCompanions
		for _, nested := range trait.Nested {
			switch {
			case strings.HasSuffix(nested.Name, FieldHelperSuffix):
				comps.FieldHelper = nested
			case strings.HasSuffix(nested.Name, HelperSuffix):
				comps.Helper = nested
			}
		}
		if comps.Helper != nil {
			return comps, nil
		}
		// Nested declarations without a helper among them: fall through
		// to precompiled resolution.
	}
	if r.lookup == nil {
		return ResolvedCompanions{}, diagnostics.NewError(diagnostics.ErrT002, trait.GetToken(),
			trait.QualifiedName(), "(no companion lookup configured)")
	}
	helper, fieldHelper, ok, err := r.lookup.LookupCompanions(trait.QualifiedName())
	if err != nil {
		return ResolvedCompanions{}, diagnostics.NewError(diagnostics.ErrT002, trait.GetToken(),
			trait.QualifiedName(), err.Error())
	}
	if !ok || helper == nil {
		return ResolvedCompanions{}, diagnostics.NewError(diagnostics.ErrT002, trait.GetToken(),
			trait.QualifiedName())
	}
	return ResolvedCompanions{Helper: helper, FieldHelper: fieldHelper}, nil
}
