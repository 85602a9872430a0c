package ast

import (
	"strings"

	"github.com/weftlang/weft/internal/token"
)

// MethodDecl is a method declaration or an abstract method signature.
type MethodDecl struct {
	Token      token.Token
	Name       string
	Mods       Modifiers
	Params     []*Param
	ReturnType *TypeRef   // nil means void
	Throws     []*TypeRef // declared checked-failure set
	Body       Stmt       // nil when abstract or loaded from an artifact
}

func (m *MethodDecl) TokenLiteral() string { return m.Token.Lexeme }
func (m *MethodDecl) GetToken() token.Token {
	if m == nil {
		return token.Token{}
	}
	return m.Token
}

func (m *MethodDecl) IsAbstract() bool { return m.Mods.Has(ModAbstract) }
func (m *MethodDecl) IsStatic() bool   { return m.Mods.Has(ModStatic) }

// ParamTypes returns the parameter types in declaration order.
func (m *MethodDecl) ParamTypes() []*TypeRef {
	types := make([]*TypeRef, len(m.Params))
	for i, p := range m.Params {
		types[i] = p.Type
	}
	return types
}

// Signature renders the parameter type list as a comparable key.
// Return types do not participate in overload identity.
func Signature(paramTypes []*TypeRef) string {
	names := make([]string, len(paramTypes))
	for i, t := range paramTypes {
		if t == nil {
			names[i] = "void"
			continue
		}
		names[i] = t.Name
	}
	return "(" + strings.Join(names, ",") + ")"
}

// FieldDecl is a field declaration.
type FieldDecl struct {
	Token   token.Token
	Name    string
	Mods    Modifiers
	Type    *TypeRef
	Initial Expr // nil when the field has no default value
}

func (f *FieldDecl) TokenLiteral() string { return f.Token.Lexeme }
func (f *FieldDecl) GetToken() token.Token {
	if f == nil {
		return token.Token{}
	}
	return f.Token
}

// PropertyDecl is an explicitly declared property on a class. The front
// end induces the conventional accessor pair from it; composition only
// needs the name to decide precedence.
type PropertyDecl struct {
	Token token.Token
	Name  string
	Type  *TypeRef
}

func (p *PropertyDecl) TokenLiteral() string { return p.Token.Lexeme }
func (p *PropertyDecl) GetToken() token.Token {
	if p == nil {
		return token.Token{}
	}
	return p.Token
}

// ClassDecl is any class-shaped declaration: a class, an interface, a
// trait (interface carrying the trait marker), or a trait's generated
// helper / field-helper companion. Composition mutates it only through
// the Add* builder operations, each of which reports whether the member
// was actually appended.
type ClassDecl struct {
	Token       token.Token
	Name        string // simple name
	Package     string // enclosing package, "" for the default package
	IsInterface bool
	TraitMarker bool
	Supertype   *TypeRef   // nil or the universal root when absent
	Interfaces  []*TypeRef // declared supertypes in interface position
	Nested      []*ClassDecl

	Methods    []*MethodDecl
	Properties []*PropertyDecl
	Fields     []*FieldDecl

	// ConstructionSteps run for every constructor path, in order, before
	// user constructor body logic.
	ConstructionSteps []Stmt

	initKeys   map[string]bool
	ifaceNames map[string]bool
}

func (c *ClassDecl) TokenLiteral() string { return c.Token.Lexeme }
func (c *ClassDecl) GetToken() token.Token {
	if c == nil {
		return token.Token{}
	}
	return c.Token
}

// QualifiedName returns the package-qualified name of the declaration.
func (c *ClassDecl) QualifiedName() string {
	if c.Package == "" {
		return c.Name
	}
	return c.Package + "." + c.Name
}

// IsTrait reports whether the declaration is processed as a trait:
// an interface carrying the trait marker.
func (c *ClassDecl) IsTrait() bool {
	return c != nil && c.IsInterface && c.TraitMarker
}

// DeclaresMethod reports whether the class already declares a method with
// the given name and parameter type list.
func (c *ClassDecl) DeclaresMethod(name string, paramTypes []*TypeRef) bool {
	return c.FindMethod(name, paramTypes) != nil
}

// FindMethod returns the declared method with the given name and
// parameter type list, or nil.
func (c *ClassDecl) FindMethod(name string, paramTypes []*TypeRef) *MethodDecl {
	want := Signature(paramTypes)
	for _, m := range c.Methods {
		if m.Name == name && Signature(m.ParamTypes()) == want {
			return m
		}
	}
	return nil
}

// DeclaresProperty reports whether the class declares a property with the
// given name.
func (c *ClassDecl) DeclaresProperty(name string) bool {
	for _, p := range c.Properties {
		if p.Name == name {
			return true
		}
	}
	return false
}

// LookupField returns the declared field with the given name, or nil.
func (c *ClassDecl) LookupField(name string) *FieldDecl {
	for _, f := range c.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// AddMethod appends a method unless an identically named method with the
// same parameter type list is already declared. Reports whether the
// method was appended.
func (c *ClassDecl) AddMethod(m *MethodDecl) bool {
	if c.DeclaresMethod(m.Name, m.ParamTypes()) {
		return false
	}
	c.Methods = append(c.Methods, m)
	return true
}

// AddField appends a field unless a field with the same name exists.
func (c *ClassDecl) AddField(f *FieldDecl) bool {
	if c.LookupField(f.Name) != nil {
		return false
	}
	c.Fields = append(c.Fields, f)
	return true
}

// AddInterface makes the class conform to the given interface unless it
// already does (by qualified name).
func (c *ClassDecl) AddInterface(t *TypeRef) bool {
	if c.ifaceNames == nil {
		c.ifaceNames = make(map[string]bool)
		for _, it := range c.Interfaces {
			c.ifaceNames[it.Name] = true
		}
	}
	if c.ifaceNames[t.Name] {
		return false
	}
	c.ifaceNames[t.Name] = true
	c.Interfaces = append(c.Interfaces, t)
	return true
}

// AddConstructionStep appends a construction step under a caller-chosen
// identity key. A step with a key that was already appended is skipped,
// which keeps construction idempotent under repeated composition.
func (c *ClassDecl) AddConstructionStep(key string, step Stmt) bool {
	if c.initKeys == nil {
		c.initKeys = make(map[string]bool)
	}
	if c.initKeys[key] {
		return false
	}
	c.initKeys[key] = true
	c.ConstructionSteps = append(c.ConstructionSteps, step)
	return true
}
