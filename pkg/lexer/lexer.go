// Package lexer provides tokenization for the bowerbird view language.
//
// The scanner performs character-by-character processing to produce the
// token stream consumed by the parser.
//
// Token Types:
//
//	IDENT       - Component, alias and property names (e.g. Frame, okButton)
//	INT         - Integer literals, decimal or hexadecimal (e.g. 42, 0xFF8800)
//	FLOAT       - Floating-point literals (e.g. 0.5)
//	BOOL        - true / false
//	STRING      - Double-quoted strings with escape sequences
//	EXPR        - Embedded expression ={ ... }
//	PLACEHOLDER - Configuration placeholder %{ ... }
//
// Comments (// line and /* block */) and whitespace are skipped. Identifiers
// follow Go identifier rules: a Unicode letter or underscore followed by
// letters, digits or underscores.
package lexer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes view language source text.
type Lexer struct {
	input  string // The source text being tokenized
	pos    int    // Current byte position in input
	line   int    // Current line number (1-indexed)
	col    int    // Current column number (0-indexed)
	tokens []Token
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{
		input:  input,
		pos:    0,
		line:   1,
		col:    0,
		tokens: make([]Token, 0),
	}
}

// NewFromReader creates a new Lexer from an io.Reader.
func NewFromReader(r io.Reader) (*Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return New(string(data)), nil
}

// Tokenize processes the entire input and returns all tokens.
// A scan error aborts tokenization; the grammar has no recovery productions.
func (l *Lexer) Tokenize() ([]Token, error) {
	for !l.isAtEnd() {
		if err := l.scanToken(); err != nil {
			return nil, err
		}
	}
	l.tokens = append(l.tokens, NewToken(EOF, "", l.line, l.col))
	return l.tokens, nil
}

// TokenizeJSON processes the input and returns tokens as a JSON array.
func (l *Lexer) TokenizeJSON() (string, error) {
	tokens, err := l.Tokenize()
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(tokens)
	if err != nil {
		return "", fmt.Errorf("failed to marshal tokens: %w", err)
	}
	return string(data), nil
}

// Helper methods for character access and movement

func (l *Lexer) isAtEnd() bool {
	return l.pos >= len(l.input)
}

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekNext() byte {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

func (l *Lexer) advance() byte {
	ch := l.input[l.pos]
	l.pos++
	l.col++
	return ch
}

func (l *Lexer) addTokenAt(typ TokenType, value string, line, col int) {
	l.tokens = append(l.tokens, NewToken(typ, value, line, col))
}

func (l *Lexer) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%d:%d: %s", l.line, l.col, fmt.Sprintf(format, args...))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// scanToken scans a single token from the current position.
func (l *Lexer) scanToken() error {
	char := l.peek()
	next := l.peekNext()

	switch char {
	// Whitespace (space, tab, carriage return) - skip but track column
	case ' ', '\t', '\r':
		l.advance()
		return nil

	// Newline - not significant, update position only
	case '\n':
		l.advance()
		l.line++
		l.col = 0
		return nil

	case '{':
		startCol := l.col
		l.advance()
		l.addTokenAt(LBRACE, "{", l.line, startCol)
		return nil

	case '}':
		startCol := l.col
		l.advance()
		l.addTokenAt(RBRACE, "}", l.line, startCol)
		return nil

	case '(':
		startCol := l.col
		l.advance()
		l.addTokenAt(LPAREN, "(", l.line, startCol)
		return nil

	case ')':
		startCol := l.col
		l.advance()
		l.addTokenAt(RPAREN, ")", l.line, startCol)
		return nil

	case '[':
		startCol := l.col
		l.advance()
		l.addTokenAt(LBRACKET, "[", l.line, startCol)
		return nil

	case ']':
		startCol := l.col
		l.advance()
		l.addTokenAt(RBRACKET, "]", l.line, startCol)
		return nil

	case ':':
		startCol := l.col
		l.advance()
		l.addTokenAt(COLON, ":", l.line, startCol)
		return nil

	case ';':
		startCol := l.col
		l.advance()
		l.addTokenAt(SEMI, ";", l.line, startCol)
		return nil

	case ',':
		startCol := l.col
		l.advance()
		l.addTokenAt(COMMA, ",", l.line, startCol)
		return nil

	case '.':
		startCol := l.col
		l.advance()
		l.addTokenAt(DOT, ".", l.line, startCol)
		return nil

	// Equals - either the = of key=value, or the ={ ... } expression form
	case '=':
		if next == '{' {
			return l.scanDelimited(EXPR, "={")
		}
		startCol := l.col
		l.advance()
		l.addTokenAt(EQUALS, "=", l.line, startCol)
		return nil

	// Percent introduces the %{ ... } configuration placeholder form
	case '%':
		if next == '{' {
			return l.scanDelimited(PLACEHOLDER, "%{")
		}
		return l.errorf("unexpected character %q (expected %%{...})", string(char))

	// Comments: // to end of line, /* to matching */
	case '/':
		if next == '/' {
			for !l.isAtEnd() && l.peek() != '\n' {
				l.advance()
			}
			return nil
		}
		if next == '*' {
			return l.scanBlockComment()
		}
		return l.errorf("unexpected character %q", string(char))

	// Double-quoted string
	case '"':
		return l.scanString()

	// Numbers
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return l.scanNumber()

	// Minus introduces a negative number
	case '-':
		if isDigit(next) {
			return l.scanNumber()
		}
		return l.errorf("unexpected character %q", string(char))

	default:
		r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
		if isIdentStart(r) {
			return l.scanIdent()
		}
		return l.errorf("unexpected character %q", string(r))
	}
}

// scanBlockComment consumes /* ... */ including newlines.
func (l *Lexer) scanBlockComment() error {
	startLine, startCol := l.line, l.col
	l.advance() // /
	l.advance() // *
	for !l.isAtEnd() {
		c := l.peek()
		if c == '*' && l.peekNext() == '/' {
			l.advance()
			l.advance()
			return nil
		}
		if c == '\n' {
			l.advance()
			l.line++
			l.col = 0
		} else {
			l.advance()
		}
	}
	return fmt.Errorf("%d:%d: unterminated block comment", startLine, startCol)
}

// scanString handles "string" with standard escape sequences.
func (l *Lexer) scanString() error {
	startLine, startCol := l.line, l.col

	l.advance() // consume opening quote

	var str strings.Builder
	for !l.isAtEnd() {
		c := l.peek()
		if c == '"' {
			l.advance()
			l.addTokenAt(STRING, str.String(), startLine, startCol)
			return nil
		}
		if c == '\n' {
			return fmt.Errorf("%d:%d: unterminated string literal", startLine, startCol)
		}
		if c == '\\' {
			l.advance()
			if l.isAtEnd() {
				break
			}
			esc := l.advance()
			switch esc {
			case 'n':
				str.WriteByte('\n')
			case 't':
				str.WriteByte('\t')
			case 'r':
				str.WriteByte('\r')
			case '\\':
				str.WriteByte('\\')
			case '"':
				str.WriteByte('"')
			case '\'':
				str.WriteByte('\'')
			case '0':
				str.WriteByte(0)
			default:
				return fmt.Errorf("%d:%d: unknown escape sequence \\%s", l.line, l.col, string(esc))
			}
			continue
		}
		str.WriteByte(l.advance())
	}
	return fmt.Errorf("%d:%d: unterminated string literal", startLine, startCol)
}

// scanNumber handles integer (decimal and hex) and floating-point numbers,
// with an optional leading minus sign.
func (l *Lexer) scanNumber() error {
	startCol := l.col

	var num strings.Builder
	if l.peek() == '-' {
		num.WriteByte(l.advance())
	}

	// Hexadecimal: 0x...
	if l.peek() == '0' && (l.peekNext() == 'x' || l.peekNext() == 'X') {
		num.WriteByte(l.advance()) // 0
		num.WriteByte(l.advance()) // x
		if !isHexDigit(l.peek()) {
			return l.errorf("malformed hex literal %q", num.String())
		}
		for !l.isAtEnd() && isHexDigit(l.peek()) {
			num.WriteByte(l.advance())
		}
		l.addTokenAt(INT, num.String(), l.line, startCol)
		return nil
	}

	for !l.isAtEnd() && isDigit(l.peek()) {
		num.WriteByte(l.advance())
	}

	// Decimal point followed by a digit makes it a float
	if !l.isAtEnd() && l.peek() == '.' && isDigit(l.peekNext()) {
		num.WriteByte(l.advance()) // consume the dot
		for !l.isAtEnd() && isDigit(l.peek()) {
			num.WriteByte(l.advance())
		}
		l.addTokenAt(FLOAT, num.String(), l.line, startCol)
		return nil
	}

	l.addTokenAt(INT, num.String(), l.line, startCol)
	return nil
}

// scanIdent handles identifiers and the boolean literals true/false.
func (l *Lexer) scanIdent() error {
	startCol := l.col

	var word strings.Builder
	for !l.isAtEnd() {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if !isIdentPart(r) {
			break
		}
		word.WriteString(l.input[l.pos : l.pos+size])
		l.pos += size
		l.col++
	}

	w := word.String()
	if w == "true" || w == "false" {
		l.addTokenAt(BOOL, w, l.line, startCol)
		return nil
	}
	l.addTokenAt(IDENT, w, l.line, startCol)
	return nil
}

// scanDelimited captures the raw body of a sigil-introduced delimiter pair,
// either ={ ... } or %{ ... }. Nested braces are balanced; the enclosing
// delimiters are not part of the token value.
func (l *Lexer) scanDelimited(typ TokenType, open string) error {
	startLine, startCol := l.line, l.col
	l.advance() // sigil
	l.advance() // {

	var body strings.Builder
	depth := 1
	for !l.isAtEnd() {
		c := l.peek()
		if c == '{' {
			depth++
		} else if c == '}' {
			depth--
			if depth == 0 {
				l.advance()
				l.addTokenAt(typ, strings.TrimSpace(body.String()), startLine, startCol)
				return nil
			}
		}
		if c == '\n' {
			body.WriteByte(l.advance())
			l.line++
			l.col = 0
		} else {
			body.WriteByte(l.advance())
		}
	}
	return fmt.Errorf("%d:%d: unterminated %s...}", startLine, startCol, open)
}

// String returns a string representation of the lexer state (for debugging).
func (l *Lexer) String() string {
	return fmt.Sprintf("Lexer{pos=%d, line=%d, col=%d, tokens=%d}",
		l.pos, l.line, l.col, len(l.tokens))
}
