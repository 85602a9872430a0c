package ast

import "testing"

func ref(name string) *TypeRef { return &TypeRef{Name: name} }

func method(name string, paramTypes ...string) *MethodDecl {
	m := &MethodDecl{Name: name, Mods: ModPublic}
	for _, pt := range paramTypes {
		m.Params = append(m.Params, &Param{Name: "p", Type: ref(pt)})
	}
	return m
}

func TestSignature(t *testing.T) {
	tests := []struct {
		types []*TypeRef
		want  string
	}{
		{nil, "()"},
		{[]*TypeRef{ref("Int")}, "(Int)"},
		{[]*TypeRef{ref("Int"), ref("String")}, "(Int,String)"},
	}
	for _, tt := range tests {
		if got := Signature(tt.types); got != tt.want {
			t.Errorf("Signature(%v) = %q, want %q", tt.types, got, tt.want)
		}
	}
}

func TestAddMethodReportsAlreadyPresent(t *testing.T) {
	c := &ClassDecl{Name: "Person"}
	if !c.AddMethod(method("greet", "String")) {
		t.Fatal("first add must succeed")
	}
	if c.AddMethod(method("greet", "String")) {
		t.Error("duplicate name+signature must be rejected")
	}
	if !c.AddMethod(method("greet", "Int")) {
		t.Error("same name, different signature is an overload and must succeed")
	}
	if !c.AddMethod(method("greet")) {
		t.Error("zero-parameter overload must succeed")
	}
	if len(c.Methods) != 3 {
		t.Errorf("expected 3 methods, got %d", len(c.Methods))
	}
}

func TestAddFieldReportsAlreadyPresent(t *testing.T) {
	c := &ClassDecl{Name: "Person"}
	if !c.AddField(&FieldDecl{Name: "x", Type: ref("Int")}) {
		t.Fatal("first add must succeed")
	}
	if c.AddField(&FieldDecl{Name: "x", Type: ref("String")}) {
		t.Error("duplicate field name must be rejected")
	}
}

func TestAddInterfaceReportsAlreadyPresent(t *testing.T) {
	c := &ClassDecl{Name: "Person", Interfaces: []*TypeRef{ref("app.Named")}}
	if c.AddInterface(ref("app.Named")) {
		t.Error("declared interface must be detected as present")
	}
	if !c.AddInterface(ref("app.Aged")) {
		t.Error("new interface must be appended")
	}
	if len(c.Interfaces) != 2 {
		t.Errorf("expected 2 interfaces, got %d", len(c.Interfaces))
	}
}

func TestAddConstructionStepDeduplicatesByKey(t *testing.T) {
	c := &ClassDecl{Name: "Person"}
	step := &ExprStmt{X: &VarExpr{Name: "this"}}
	if !c.AddConstructionStep("app.Greeter$Trait$Helper", step) {
		t.Fatal("first step must be appended")
	}
	if c.AddConstructionStep("app.Greeter$Trait$Helper", step) {
		t.Error("same key must not append twice")
	}
	if !c.AddConstructionStep("app.Audited$Trait$Helper", step) {
		t.Error("different key must append")
	}
	if len(c.ConstructionSteps) != 2 {
		t.Errorf("expected 2 steps, got %d", len(c.ConstructionSteps))
	}
}

func TestQualifiedName(t *testing.T) {
	if got := (&ClassDecl{Name: "Person", Package: "app"}).QualifiedName(); got != "app.Person" {
		t.Errorf("QualifiedName = %q", got)
	}
	if got := (&ClassDecl{Name: "Person"}).QualifiedName(); got != "Person" {
		t.Errorf("default-package QualifiedName = %q", got)
	}
}

func TestIsTrait(t *testing.T) {
	tests := []struct {
		name string
		c    *ClassDecl
		want bool
	}{
		{"nil", nil, false},
		{"class", &ClassDecl{Name: "C"}, false},
		{"plain interface", &ClassDecl{Name: "I", IsInterface: true}, false},
		{"marked class", &ClassDecl{Name: "C", TraitMarker: true}, false},
		{"trait", &ClassDecl{Name: "T", IsInterface: true, TraitMarker: true}, true},
	}
	for _, tt := range tests {
		if got := tt.c.IsTrait(); got != tt.want {
			t.Errorf("%s: IsTrait = %v, want %v", tt.name, got, tt.want)
		}
	}
}
