package traits

import (
	"fmt"
	"strings"

	"github.com/weftlang/weft/internal/ast"
)

// eligibleDefault reports whether a helper method carries a forwardable
// default body: it must have a body to forward, an explicit receiver as
// first parameter, the static modifier (non-static entries are synthetic
// artifacts of the generator), and a user-visible name.
func eligibleDefault(m *ast.MethodDecl) bool {
	return !m.IsAbstract() &&
		len(m.Params) > 0 &&
		m.IsStatic() &&
		!strings.Contains(m.Name, SyntheticMarker)
}

// forwardingParams derives the forwarding signature from a helper method:
// the leading receiver parameter is dropped and the remaining types keep
// their order under positional placeholder names.
func forwardingParams(m *ast.MethodDecl) []*ast.Param {
	params := make([]*ast.Param, 0, len(m.Params)-1)
	for i := 1; i < len(m.Params); i++ {
		params = append(params, &ast.Param{
			Name: fmt.Sprintf("arg%d", i),
			Type: m.Params[i].Type,
		})
	}
	return params
}

// ApplyMethods synthesizes, for every eligible default method on helper, a
// forwarding instance method on composite. An explicit declaration on the
// composite wins without error: an exact name+signature match or a
// shadowing property suppresses the forwarder. Returns the methods
// actually added.
func ApplyMethods(composite, helper *ast.ClassDecl) []*ast.MethodDecl {
	var added []*ast.MethodDecl
	for _, m := range helper.Methods {
		if !eligibleDefault(m) {
			continue
		}
		params := forwardingParams(m)
		paramTypes := make([]*ast.TypeRef, len(params))
		for i, p := range params {
			paramTypes[i] = p.Type
		}
		if composite.DeclaresMethod(m.Name, paramTypes) {
			continue
		}
		if IsShadowedByProperty(m.Name, composite, len(params)) {
			continue
		}
		args := make([]ast.Expr, 0, len(params)+1)
		args = append(args, ast.ThisExpr())
		for _, p := range params {
			args = append(args, &ast.VarExpr{Name: p.Name})
		}
		call := &ast.CallExpr{
			Receiver: &ast.ClassExpr{Target: helper},
			Method:   m.Name,
			Args:     args,
			Direct:   true,
		}
		var body ast.Stmt
		if m.ReturnType.IsVoid() {
			body = &ast.ExprStmt{X: call}
		} else {
			body = &ast.ReturnStmt{Value: call}
		}
		forwarder := &ast.MethodDecl{
			Token:      m.Token,
			Name:       m.Name,
			Mods:       m.Mods.Without(ast.ModStatic),
			Params:     params,
			ReturnType: m.ReturnType,
			Throws:     m.Throws,
			Body:       body,
		}
		if composite.AddMethod(forwarder) {
			added = append(added, forwarder)
		}
	}
	return added
}

// AppendInitializer wires the helper's state-initializer into the
// composite's construction sequence: a direct call passing the composite
// instance, appended once per helper, in the order traits are applied.
func AppendInitializer(composite, helper *ast.ClassDecl) bool {
	step := &ast.ExprStmt{X: &ast.CallExpr{
		Receiver: &ast.ClassExpr{Target: helper},
		Method:   InitMethodName,
		Args:     []ast.Expr{ast.ThisExpr()},
		Direct:   true,
	}}
	return composite.AddConstructionStep(helper.QualifiedName(), step)
}
