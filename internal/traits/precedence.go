package traits

import (
	"strings"
	"unicode"

	"github.com/weftlang/weft/internal/ast"
)

// IsShadowedByProperty reports whether a candidate forwarder with the
// given name and parameter count is already satisfied by a property
// declared on the composite. A getter-shaped name (get/is prefix, zero
// parameters) or setter-shaped name (set prefix, one parameter) shadows
// the property derived by the standard decapitalization convention;
// any other name never shadows a property.
func IsShadowedByProperty(name string, composite *ast.ClassDecl, paramCount int) bool {
	property := name
	getter := false
	switch {
	case strings.HasPrefix(name, "get"):
		property = property[3:]
		getter = true
	case strings.HasPrefix(name, "is"):
		property = property[2:]
		getter = true
	case strings.HasPrefix(name, "set"):
		property = property[3:]
	default:
		return false
	}
	if property == "" {
		return false
	}
	if getter && paramCount > 0 {
		return false
	}
	if !getter && paramCount != 1 {
		return false
	}
	return composite.DeclaresProperty(Decapitalize(property))
}

// Decapitalize lowers the leading character of a name, except when the
// first two characters are both upper case: "Count" becomes "count" but
// "URL" stays "URL", per the standard property naming convention.
func Decapitalize(name string) string {
	if name == "" {
		return name
	}
	runes := []rune(name)
	if len(runes) > 1 && unicode.IsUpper(runes[0]) && unicode.IsUpper(runes[1]) {
		return name
	}
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
