package ast

import (
	"github.com/weftlang/weft/internal/token"
)

// TokenProvider is an interface for any node that can provide its primary
// token. This is useful for error reporting.
type TokenProvider interface {
	GetToken() token.Token
}

// Node is the base interface for all declaration-tree nodes.
type Node interface {
	TokenLiteral() string
}

// Unit is the root of a compilation unit: the top-level class declarations
// of one source file, after parsing and name resolution.
type Unit struct {
	File    string // source file path
	Classes []*ClassDecl
}

func (u *Unit) TokenLiteral() string {
	if len(u.Classes) > 0 {
		return u.Classes[0].TokenLiteral()
	}
	return ""
}

// Lookup returns the top-level class with the given simple name, or nil.
func (u *Unit) Lookup(name string) *ClassDecl {
	for _, c := range u.Classes {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ObjectTypeName is the qualified name of the universal root type.
const ObjectTypeName = "weft.lang.Object"

// TypeRef is a reference to a named type. Decl is filled in by the
// resolution phase for types declared in the current unit; references to
// previously compiled types keep Decl nil and are resolved by qualified
// name against loaded artifacts.
type TypeRef struct {
	Token token.Token
	Name  string     // qualified name
	Decl  *ClassDecl // resolved declaration, when local
}

func (t *TypeRef) TokenLiteral() string { return t.Token.Lexeme }
func (t *TypeRef) GetToken() token.Token {
	if t == nil {
		return token.Token{}
	}
	return t.Token
}

// IsObject reports whether the reference names the universal root type.
func (t *TypeRef) IsObject() bool {
	return t != nil && t.Name == ObjectTypeName
}

// IsVoid reports whether the reference denotes the absent return type.
// A nil return TypeRef means void; descriptors may also spell it out.
func (t *TypeRef) IsVoid() bool {
	return t == nil || t.Name == "void"
}

// Param is a single formal parameter.
type Param struct {
	Token token.Token
	Name  string
	Type  *TypeRef
}

func (p *Param) TokenLiteral() string { return p.Token.Lexeme }
func (p *Param) GetToken() token.Token {
	if p == nil {
		return token.Token{}
	}
	return p.Token
}

// Modifiers is the access and shape flag set of a declaration.
type Modifiers uint16

const (
	ModPublic Modifiers = 1 << iota
	ModPrivate
	ModStatic
	ModAbstract
	ModFinal
	ModSynthetic
)

// Has reports whether all flags in f are set.
func (m Modifiers) Has(f Modifiers) bool { return m&f == f }

// Without returns the modifier set with the flags in f cleared.
func (m Modifiers) Without(f Modifiers) Modifiers { return m &^ f }
