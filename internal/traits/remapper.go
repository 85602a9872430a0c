package traits

import (
	"sort"
	"strings"

	"github.com/weftlang/weft/internal/ast"
	"github.com/weftlang/weft/internal/diagnostics"
)

// isDirectGetter classifies a field-helper accessor name. The ordering
// predicate below is pure so the getter-first guarantee never depends on
// shared state.
func isDirectGetter(name string) bool {
	return strings.HasSuffix(name, DirectGetterSuffix)
}

// getterBefore orders getters ahead of setters. A setter body references
// the backing field its getter creates, so this ordering is load-bearing.
func getterBefore(a, b *ast.MethodDecl) bool {
	return isDirectGetter(a.Name) && !isDirectGetter(b.Name)
}

// splitAccessor decodes an accessor name into its logical field name and
// operation ("get" or "set"). ok is false for names outside the
// convention.
func splitAccessor(name string) (fieldName, op string, ok bool) {
	if !strings.HasSuffix(name, DirectGetterSuffix) && !strings.HasSuffix(name, DirectSetterSuffix) {
		return "", "", false
	}
	idx := strings.LastIndex(name, "$")
	return name[:idx], name[idx+1:], true
}

// ApplyState remaps the field helper's accessor contract onto the
// composite: the composite conforms to the field helper, every logical
// field gets a private backing field named after the (trait, field) pair,
// and each accessor gets a concrete body reading or writing that field.
// Field defaults are not set here; the helper's state-initializer supplies
// them during construction.
func ApplyState(trait, composite, fieldHelper *ast.ClassDecl, diags *diagnostics.Collector) {
	composite.AddInterface(&ast.TypeRef{
		Token: fieldHelper.Token,
		Name:  fieldHelper.QualifiedName(),
		Decl:  fieldHelper,
	})

	accessors := make([]*ast.MethodDecl, len(fieldHelper.Methods))
	copy(accessors, fieldHelper.Methods)
	sort.SliceStable(accessors, func(i, j int) bool {
		return getterBefore(accessors[i], accessors[j])
	})

	for _, m := range accessors {
		fieldName, op, ok := splitAccessor(m.Name)
		if !ok {
			continue
		}
		getter := op == "get"
		backingName := RemappedFieldName(trait, fieldName)
		if getter {
			composite.AddField(&ast.FieldDecl{
				Token: m.Token,
				Name:  backingName,
				Mods:  ast.ModPrivate,
				Type:  m.ReturnType,
			})
		}
		field := composite.LookupField(backingName)
		if field == nil {
			// Setter with no paired getter: there is no backing storage
			// for its body to assign into.
			diags.Add(diagnostics.NewError(diagnostics.ErrT004, m.GetToken(),
				trait.QualifiedName()+"."+fieldName))
			continue
		}
		var params []*ast.Param
		var body ast.Stmt
		if getter {
			body = &ast.ReturnStmt{Value: &ast.FieldExpr{Field: field}}
		} else {
			if len(m.Params) == 0 {
				diags.Add(diagnostics.NewError(diagnostics.ErrT003, m.GetToken(), m.Name))
				continue
			}
			params = []*ast.Param{{Name: "val", Type: m.Params[0].Type}}
			body = &ast.AssignStmt{
				Target: &ast.FieldExpr{Field: field},
				Value:  &ast.VarExpr{Name: "val"},
			}
		}
		composite.AddMethod(&ast.MethodDecl{
			Token:      m.Token,
			Name:       m.Name,
			Mods:       ast.ModPublic | ast.ModSynthetic,
			Params:     params,
			ReturnType: m.ReturnType,
			Body:       body,
		})
	}
}
