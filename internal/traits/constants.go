package traits

import (
	"strings"

	"github.com/weftlang/weft/internal/ast"
)

// Naming conventions shared with the companion generator. The generator
// emits, next to every trait T, a helper T$Trait$Helper carrying the
// default method bodies and a field helper T$Trait$FieldHelper exposing
// the trait's private state; composition only consumes them, so the two
// sides must agree on these names.
const (
	// HelperSuffix ends the name of a trait's helper companion.
	HelperSuffix = "$Trait$Helper"
	// FieldHelperSuffix ends the name of a trait's field-helper companion.
	FieldHelperSuffix = "$Trait$FieldHelper"
	// InitMethodName is the helper's state-initializer function. It takes
	// the composite instance and performs the trait's field-default
	// initialization.
	InitMethodName = "$init$"
	// DirectGetterSuffix / DirectSetterSuffix end field-helper accessor
	// names: logical field name, '$', operation.
	DirectGetterSuffix = "$get"
	DirectSetterSuffix = "$set"
	// SyntheticMarker appears in compiler-generated bridge names. Helper
	// methods containing it are never forwarded.
	SyntheticMarker = "$"
)

// RemappedFieldName mangles a trait's logical field name into the backing
// field name on the composite. Including the trait identity keeps two
// traits with the same logical field name from colliding.
func RemappedFieldName(trait *ast.ClassDecl, fieldName string) string {
	return strings.ReplaceAll(trait.QualifiedName(), ".", "_") + "__" + fieldName
}
