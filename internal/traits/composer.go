package traits

import (
	"strings"

	"github.com/weftlang/weft/internal/ast"
	"github.com/weftlang/weft/internal/diagnostics"
)

// Composer merges trait defaults and trait state into compiling classes.
// It is the driver of the composition phase: one Compose call per
// compiling class, appending members and construction steps to that class
// only. A failed trait application degrades to a diagnostic; it never
// aborts the rest of the unit.
type Composer struct {
	resolver *HelperResolver
	diags    *diagnostics.Collector
}

func NewComposer(lookup CompanionLookup, diags *diagnostics.Collector) *Composer {
	return &Composer{
		resolver: NewHelperResolver(lookup),
		diags:    diags,
	}
}

// Compose applies every trait declared on the class, in declaration
// order. If the class is itself a trait, its own supertype is validated
// first and its own induced state initializer precedes those of its
// declared traits. Repeated composition of the same class is a no-op:
// every append is guarded by the builder's already-present checks.
func (c *Composer) Compose(class *ast.ClassDecl) {
	if class.IsTrait() {
		ValidateSupertrait(class, c.diags)
		if own := localHelper(class); own != nil {
			AppendInitializer(class, own)
		}
	}
	// The generated helper conforms to its trait's interface; weaving the
	// trait back into its own helper would recurse, so helpers are never
	// composition targets.
	if strings.HasSuffix(class.Name, HelperSuffix) {
		return
	}
	for _, ref := range class.Interfaces {
		trait := ref.Decl
		if !trait.IsTrait() {
			continue
		}
		c.apply(trait, class)
	}
}

// apply performs one (trait, composite) application: resolve companions,
// forward default methods, wire state initialization, remap state.
func (c *Composer) apply(trait, composite *ast.ClassDecl) {
	comps, derr := c.resolver.Resolve(trait)
	if derr != nil {
		c.diags.Add(derr)
		return
	}
	ApplyMethods(composite, comps.Helper)
	AppendInitializer(composite, comps.Helper)
	if comps.FieldHelper != nil {
		ApplyState(trait, composite, comps.FieldHelper, c.diags)
	}
}

// localHelper returns the class's own nested helper, when present.
func localHelper(class *ast.ClassDecl) *ast.ClassDecl {
	for _, nested := range class.Nested {
		if strings.HasSuffix(nested.Name, HelperSuffix) {
			return nested
		}
	}
	return nil
}
