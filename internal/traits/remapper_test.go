package traits

import (
	"testing"

	"github.com/weftlang/weft/internal/ast"
	"github.com/weftlang/weft/internal/diagnostics"
)

func TestStateRemapping(t *testing.T) {
	// Setter declared before its getter: the getter-first ordering must
	// still create the backing field before the setter body binds to it.
	fieldHelper := newFieldHelper("Counted",
		accessor("count", "set", "Int"),
		accessor("count", "get", "Int"),
	)
	trait := newTrait("Counted", newHelper("Counted"), fieldHelper)
	composite := newComposite("Tally", trait)

	diags := compose(t, composite)
	expectNoDiagnostics(t, diags)

	wantField := RemappedFieldName(trait, "count")
	field := composite.LookupField(wantField)
	if field == nil {
		t.Fatalf("backing field %s not created", wantField)
	}
	if !field.Mods.Has(ast.ModPrivate) {
		t.Errorf("backing field must be private")
	}
	if field.Type == nil || field.Type.Name != "Int" {
		t.Errorf("backing field type = %v, want Int", field.Type)
	}
	if field.Initial != nil {
		t.Errorf("backing field must have no default value; the state initializer supplies it")
	}

	conforms := false
	for _, it := range composite.Interfaces {
		if it.Decl == fieldHelper {
			conforms = true
		}
	}
	if !conforms {
		t.Errorf("composite must conform to the field helper's accessor contract")
	}

	getter := findMethod(t, composite, "count"+DirectGetterSuffix)
	ret, ok := getter.Body.(*ast.ReturnStmt)
	if !ok {
		t.Fatalf("getter body = %T, want ReturnStmt", getter.Body)
	}
	if fe, ok := ret.Value.(*ast.FieldExpr); !ok || fe.Field != field {
		t.Errorf("getter must return the backing field")
	}
	if !getter.Mods.Has(ast.ModPublic) {
		t.Errorf("accessor implementation must be public")
	}

	setter := findMethod(t, composite, "count"+DirectSetterSuffix, "Int")
	if len(setter.Params) != 1 || setter.Params[0].Name != "val" {
		t.Fatalf("setter params = %v, want single val", setter.Params)
	}
	assign, ok := setter.Body.(*ast.AssignStmt)
	if !ok {
		t.Fatalf("setter body = %T, want AssignStmt", setter.Body)
	}
	if fe, ok := assign.Target.(*ast.FieldExpr); !ok || fe.Field != field {
		t.Errorf("setter must assign into the backing field")
	}
	if v, ok := assign.Value.(*ast.VarExpr); !ok || v.Name != "val" {
		t.Errorf("setter must assign its sole parameter, got %v", assign.Value)
	}
}

func TestBackingFieldNamesDoNotCollideAcrossTraits(t *testing.T) {
	a := newTrait("Counted", newHelper("Counted"), newFieldHelper("Counted",
		accessor("count", "get", "Int")))
	b := newTrait("Metered", newHelper("Metered"), newFieldHelper("Metered",
		accessor("count", "get", "Int")))
	composite := newComposite("Tally", a, b)

	diags := compose(t, composite)
	expectNoDiagnostics(t, diags)

	if composite.LookupField(RemappedFieldName(a, "count")) == nil {
		t.Errorf("missing backing field for Counted.count")
	}
	if composite.LookupField(RemappedFieldName(b, "count")) == nil {
		t.Errorf("missing backing field for Metered.count")
	}
	if len(composite.Fields) != 2 {
		t.Errorf("expected 2 backing fields, got %d", len(composite.Fields))
	}
}

func TestSetterWithoutGetterIsDiagnosed(t *testing.T) {
	fieldHelper := newFieldHelper("Counted",
		accessor("count", "set", "Int"),
	)
	trait := newTrait("Counted", newHelper("Counted"), fieldHelper)
	composite := newComposite("Tally", trait)

	diags := compose(t, composite)

	errs := diags.ByCode(diagnostics.ErrT004)
	if len(errs) != 1 {
		t.Fatalf("expected one T004 diagnostic, got %d", len(errs))
	}
	if composite.LookupField(RemappedFieldName(trait, "count")) != nil {
		t.Errorf("no backing field may be created for a setter without a getter")
	}
	for _, m := range composite.Methods {
		if m.Name == "count"+DirectSetterSuffix {
			t.Errorf("broken setter body must not be synthesized")
		}
	}
}

func TestNonAccessorFieldHelperEntriesIgnored(t *testing.T) {
	fieldHelper := newFieldHelper("Counted",
		accessor("count", "get", "Int"),
		&ast.MethodDecl{Name: "unrelated", Mods: ast.ModPublic | ast.ModAbstract},
	)
	trait := newTrait("Counted", newHelper("Counted"), fieldHelper)
	composite := newComposite("Tally", trait)

	diags := compose(t, composite)
	expectNoDiagnostics(t, diags)

	for _, m := range composite.Methods {
		if m.Name == "unrelated" {
			t.Errorf("non-accessor field-helper entry must not be implemented")
		}
	}
}

func TestStatelessTraitSkipsRemapping(t *testing.T) {
	trait := newTrait("Greeter", newHelper("Greeter", helperMethod("greet", "String", "String")))
	composite := newComposite("Person", trait)

	diags := compose(t, composite)
	expectNoDiagnostics(t, diags)

	if len(composite.Fields) != 0 {
		t.Errorf("stateless trait must not create fields")
	}
	if len(composite.Interfaces) != 1 {
		t.Errorf("stateless trait must not add a field-helper conformance")
	}
}
