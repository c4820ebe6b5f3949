// Package lexer provides tokenization for the bowerbird view language.
package lexer

// TokenType represents the type of a token.
type TokenType string

// Token types produced by the scanner.
const (
	// Literals and names
	IDENT       TokenType = "IDENT"       // Component, property and alias names (e.g. Frame, text, myButton)
	INT         TokenType = "INT"         // Integer literals, decimal or hex (e.g. 42, -1, 0xFF8800)
	FLOAT       TokenType = "FLOAT"       // Floating-point literals (e.g. 0.5, -3.14)
	BOOL        TokenType = "BOOL"        // true or false
	STRING      TokenType = "STRING"      // Double-quoted strings with escapes (e.g. "hello\n")
	EXPR        TokenType = "EXPR"        // Embedded expression ={ ... }, value is the raw body
	PLACEHOLDER TokenType = "PLACEHOLDER" // Configuration placeholder %{ ... }, value is the raw body

	// Structural punctuation
	LBRACE   TokenType = "LBRACE"   // {
	RBRACE   TokenType = "RBRACE"   // }
	LPAREN   TokenType = "LPAREN"   // (
	RPAREN   TokenType = "RPAREN"   // )
	LBRACKET TokenType = "LBRACKET" // [
	RBRACKET TokenType = "RBRACKET" // ]
	COLON    TokenType = "COLON"    // :
	SEMI     TokenType = "SEMI"     // ;
	COMMA    TokenType = "COMMA"    // ,
	EQUALS   TokenType = "EQUALS"   // =
	DOT      TokenType = "DOT"      // .

	// End of input
	EOF TokenType = "EOF"
)

// Token represents a single token from the lexer.
type Token struct {
	Type   TokenType `json:"type"`
	Value  string    `json:"value"`
	Line   int       `json:"line"`
	Column int       `json:"col"`
}

// NewToken creates a new token with the given properties.
func NewToken(typ TokenType, value string, line, col int) Token {
	return Token{
		Type:   typ,
		Value:  value,
		Line:   line,
		Column: col,
	}
}

// IsLiteral returns true if the token represents a literal value.
func (t Token) IsLiteral() bool {
	switch t.Type {
	case INT, FLOAT, BOOL, STRING:
		return true
	}
	return false
}

// IsIdent returns true if the token is an identifier.
func (t Token) IsIdent() bool {
	return t.Type == IDENT
}
