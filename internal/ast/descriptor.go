package ast

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Descriptors are the serialized form of declarations: the shape stored in
// the companion registry for precompiled traits, and the unit input format
// of the composition driver. Bodies never serialize — a descriptor method
// is a signature, and a precompiled body lives in the compiled artifact.

type UnitDescriptor struct {
	File    string             `yaml:"file,omitempty"`
	Classes []*ClassDescriptor `yaml:"classes"`
}

type ClassDescriptor struct {
	Name       string              `yaml:"name"`
	Package    string              `yaml:"package,omitempty"`
	Interface  bool                `yaml:"interface,omitempty"`
	Trait      bool                `yaml:"trait,omitempty"`
	Supertype  string              `yaml:"supertype,omitempty"`
	Interfaces []string            `yaml:"interfaces,omitempty"`
	Nested     []*ClassDescriptor  `yaml:"nested,omitempty"`
	Methods    []*MethodDescriptor `yaml:"methods,omitempty"`
	Properties []string            `yaml:"properties,omitempty"`
	Fields     []*FieldDescriptor  `yaml:"fields,omitempty"`
}

type MethodDescriptor struct {
	Name      string             `yaml:"name"`
	Modifiers []string           `yaml:"modifiers,omitempty"`
	Params    []*ParamDescriptor `yaml:"params,omitempty"`
	Return    string             `yaml:"return,omitempty"`
	Throws    []string           `yaml:"throws,omitempty"`
	HasBody   bool               `yaml:"hasBody,omitempty"`
}

type ParamDescriptor struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type FieldDescriptor struct {
	Name      string   `yaml:"name"`
	Type      string   `yaml:"type"`
	Modifiers []string `yaml:"modifiers,omitempty"`
}

var modifierNames = []struct {
	name string
	flag Modifiers
}{
	{"public", ModPublic},
	{"private", ModPrivate},
	{"static", ModStatic},
	{"abstract", ModAbstract},
	{"final", ModFinal},
	{"synthetic", ModSynthetic},
}

func modifiersToNames(m Modifiers) []string {
	var out []string
	for _, mn := range modifierNames {
		if m.Has(mn.flag) {
			out = append(out, mn.name)
		}
	}
	return out
}

func namesToModifiers(names []string) (Modifiers, error) {
	var m Modifiers
	for _, n := range names {
		found := false
		for _, mn := range modifierNames {
			if mn.name == n {
				m |= mn.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown modifier %q", n)
		}
	}
	return m, nil
}

func typeRefName(t *TypeRef) string {
	if t == nil {
		return ""
	}
	return t.Name
}

// Describe converts a declaration to its descriptor form.
func Describe(c *ClassDecl) *ClassDescriptor {
	d := &ClassDescriptor{
		Name:      c.Name,
		Package:   c.Package,
		Interface: c.IsInterface,
		Trait:     c.TraitMarker,
		Supertype: typeRefName(c.Supertype),
	}
	for _, it := range c.Interfaces {
		d.Interfaces = append(d.Interfaces, it.Name)
	}
	for _, n := range c.Nested {
		d.Nested = append(d.Nested, Describe(n))
	}
	for _, m := range c.Methods {
		md := &MethodDescriptor{
			Name:      m.Name,
			Modifiers: modifiersToNames(m.Mods),
			Return:    typeRefName(m.ReturnType),
			HasBody:   m.Body != nil,
		}
		for _, p := range m.Params {
			md.Params = append(md.Params, &ParamDescriptor{Name: p.Name, Type: typeRefName(p.Type)})
		}
		for _, t := range m.Throws {
			md.Throws = append(md.Throws, t.Name)
		}
		d.Methods = append(d.Methods, md)
	}
	for _, p := range c.Properties {
		d.Properties = append(d.Properties, p.Name)
	}
	for _, f := range c.Fields {
		d.Fields = append(d.Fields, &FieldDescriptor{
			Name:      f.Name,
			Type:      typeRefName(f.Type),
			Modifiers: modifiersToNames(f.Mods),
		})
	}
	return d
}

// Build converts a descriptor back into a declaration. Type references are
// name-only; Resolve links them against a unit afterwards.
func (d *ClassDescriptor) Build() (*ClassDecl, error) {
	c := &ClassDecl{
		Name:        d.Name,
		Package:     d.Package,
		IsInterface: d.Interface,
		TraitMarker: d.Trait,
	}
	if d.Supertype != "" {
		c.Supertype = &TypeRef{Name: d.Supertype}
	}
	for _, n := range d.Interfaces {
		c.Interfaces = append(c.Interfaces, &TypeRef{Name: n})
	}
	for _, nd := range d.Nested {
		n, err := nd.Build()
		if err != nil {
			return nil, err
		}
		if n.Package == "" {
			n.Package = c.Package
		}
		c.Nested = append(c.Nested, n)
	}
	for _, md := range d.Methods {
		mods, err := namesToModifiers(md.Modifiers)
		if err != nil {
			return nil, fmt.Errorf("method %s: %w", md.Name, err)
		}
		m := &MethodDecl{Name: md.Name, Mods: mods}
		if md.Return != "" && md.Return != "void" {
			m.ReturnType = &TypeRef{Name: md.Return}
		}
		for _, pd := range md.Params {
			m.Params = append(m.Params, &Param{Name: pd.Name, Type: &TypeRef{Name: pd.Type}})
		}
		for _, tn := range md.Throws {
			m.Throws = append(m.Throws, &TypeRef{Name: tn})
		}
		c.Methods = append(c.Methods, m)
	}
	for _, pn := range d.Properties {
		c.Properties = append(c.Properties, &PropertyDecl{Name: pn})
	}
	for _, fd := range d.Fields {
		mods, err := namesToModifiers(fd.Modifiers)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", fd.Name, err)
		}
		c.Fields = append(c.Fields, &FieldDecl{Name: fd.Name, Type: &TypeRef{Name: fd.Type}, Mods: mods})
	}
	return c, nil
}

// DecodeUnit parses a yaml unit descriptor and resolves type references
// between the unit's own classes.
func DecodeUnit(data []byte) (*Unit, error) {
	var d UnitDescriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("unit descriptor: %w", err)
	}
	u := &Unit{File: d.File}
	for _, cd := range d.Classes {
		c, err := cd.Build()
		if err != nil {
			return nil, err
		}
		u.Classes = append(u.Classes, c)
	}
	u.resolve()
	return u, nil
}

// EncodeClass serializes one declaration as yaml.
func EncodeClass(c *ClassDecl) ([]byte, error) {
	return yaml.Marshal(Describe(c))
}

// DecodeClass parses one yaml class descriptor into a declaration.
func DecodeClass(data []byte) (*ClassDecl, error) {
	var d ClassDescriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("class descriptor: %w", err)
	}
	return d.Build()
}

// resolve links name-only TypeRefs to declarations within the unit.
// References to names not declared in the unit stay name-only; the
// composer treats those as precompiled.
func (u *Unit) resolve() {
	byName := make(map[string]*ClassDecl)
	var index func(c *ClassDecl)
	index = func(c *ClassDecl) {
		byName[c.QualifiedName()] = c
		byName[c.Name] = c
		for _, n := range c.Nested {
			index(n)
		}
	}
	for _, c := range u.Classes {
		index(c)
	}
	link := func(t *TypeRef) {
		if t == nil || t.Decl != nil {
			return
		}
		if d, ok := byName[t.Name]; ok {
			t.Decl = d
		}
	}
	var walk func(c *ClassDecl)
	walk = func(c *ClassDecl) {
		link(c.Supertype)
		for _, it := range c.Interfaces {
			link(it)
		}
		for _, m := range c.Methods {
			link(m.ReturnType)
			for _, p := range m.Params {
				link(p.Type)
			}
			for _, th := range m.Throws {
				link(th)
			}
		}
		for _, f := range c.Fields {
			link(f.Type)
		}
		for _, n := range c.Nested {
			walk(n)
		}
	}
	for _, c := range u.Classes {
		walk(c)
	}
}
