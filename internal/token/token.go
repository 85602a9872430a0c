package token

// TokenType identifies the lexical class of a token.
type TokenType string

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Identifiers. The front end distinguishes type names from member
	// names, so the distinction is preserved here.
	IDENT_UPPER TokenType = "IDENT_UPPER"
	IDENT_LOWER TokenType = "IDENT_LOWER"

	// Declaration keywords that survive into the declaration tree.
	CLASS     TokenType = "CLASS"
	INTERFACE TokenType = "INTERFACE"
	TRAIT     TokenType = "TRAIT"
	EXTENDS   TokenType = "EXTENDS"
)

// Token is a single lexical token with its source position.
// Line and Column are 1-based; a zero Token means "no position"
// (used for diagnostics that cannot be attributed to source).
type Token struct {
	Type    TokenType
	Lexeme  string      // the raw source text
	Literal interface{} // parsed value, when meaningful
	Line    int
	Column  int
}

// Pos reports whether the token carries a real source position.
func (t Token) Pos() bool {
	return t.Line > 0
}
