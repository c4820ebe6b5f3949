// Package parser converts token streams into view language statement trees.
//
// Structural (grammar) errors abort the parse outright; the grammar defines
// no error-recovery productions. Semantic checking is not performed here: an
// unknown alias or a reference to an undeclared name is a walker concern.
package parser

import (
	"fmt"
	"strconv"

	"github.com/chazu/bowerbird/pkg/ast"
	"github.com/chazu/bowerbird/pkg/lexer"
)

// Parser converts token streams into a statement tree.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// ParseSource tokenizes and parses a complete view source text.
func ParseSource(src string) (*ast.Document, error) {
	tokens, err := lexer.New(src).Tokenize()
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// Parse parses a token stream into a Document.
func Parse(tokens []lexer.Token) (*ast.Document, error) {
	p := &Parser{tokens: tokens}
	doc := &ast.Document{}

	for !p.atEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		doc.Stmts = append(doc.Stmts, stmt)
	}
	return doc, nil
}

func (p *Parser) parseStatement() (ast.Stmt, error) {
	tok := p.peek()
	if tok.Type != lexer.IDENT {
		return nil, p.errorf(tok, "expected statement keyword, got %s", tok.Type)
	}

	switch tok.Value {
	case "components":
		return p.parseComponents()
	case "defaults":
		return p.parseDefaults()
	case "bind":
		return p.parseBind()
	case "colors":
		return p.parseResources(true)
	case "images":
		return p.parseResources(false)
	case "layout":
		return p.parseLayout()
	case "invoke":
		return p.parseInvoke()
	default:
		return nil, p.errorf(tok, "unknown statement keyword %q", tok.Value)
	}
}

// parseComponents handles: components { name: Alias(props); ... }
func (p *Parser) parseComponents() (ast.Stmt, error) {
	kw := p.advance() // components
	if err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}

	stmt := &ast.ComponentsStmt{At: pos(kw)}
	for !p.atEnd() && p.peek().Type != lexer.RBRACE {
		name, err := p.expectIdent("component name")
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		alias, err := p.expectIdent("alias")
		if err != nil {
			return nil, err
		}
		props, err := p.parsePropList()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.SEMI); err != nil {
			return nil, err
		}
		stmt.Decls = append(stmt.Decls, ast.ComponentDecl{
			Name:  name.Value,
			Alias: alias.Value,
			Props: props,
			At:    pos(name),
		})
	}
	if err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseDefaults handles: defaults { Alias(props); ... }
func (p *Parser) parseDefaults() (ast.Stmt, error) {
	kw := p.advance() // defaults
	if err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}

	stmt := &ast.DefaultsStmt{At: pos(kw)}
	for !p.atEnd() && p.peek().Type != lexer.RBRACE {
		alias, err := p.expectIdent("alias")
		if err != nil {
			return nil, err
		}
		props, err := p.parsePropList()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.SEMI); err != nil {
			return nil, err
		}
		stmt.Entries = append(stmt.Entries, ast.DefaultEntry{
			Alias: alias.Value,
			Props: props,
			At:    pos(alias),
		})
	}
	if err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseResources handles both colors { ... } and images { ... }.
func (p *Parser) parseResources(colors bool) (ast.Stmt, error) {
	kw := p.advance() // colors / images

	if err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}

	var decls []ast.ResourceDecl
	for !p.atEnd() && p.peek().Type != lexer.RBRACE {
		name, err := p.expectIdent("resource name")
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}

		decl := ast.ResourceDecl{Name: name.Value, At: pos(name)}
		tok := p.peek()
		switch {
		case tok.Type == lexer.IDENT:
			// Constructor form: rgb(255, 0, 0), resource("x.png"), url("...")
			ctor := p.advance()
			decl.Ctor = ctor.Value
			args, err := p.parseLiteralArgs()
			if err != nil {
				return nil, err
			}
			decl.Args = args
		case tok.IsLiteral():
			// Bare packed literal: 0xFF8800
			lit, err := p.parseLiteral()
			if err != nil {
				return nil, err
			}
			decl.Args = []ast.Literal{lit}
		default:
			return nil, p.errorf(tok, "expected constructor or literal, got %s", tok.Type)
		}

		if err := p.expect(lexer.SEMI); err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}
	if err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}

	if colors {
		return &ast.ColorsStmt{Decls: decls, At: pos(kw)}, nil
	}
	return &ast.ImagesStmt{Decls: decls, At: pos(kw)}, nil
}

// parseBind handles: bind { target: expr (root) [triggers]; ... }
func (p *Parser) parseBind() (ast.Stmt, error) {
	kw := p.advance() // bind
	if err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}

	stmt := &ast.BindStmt{At: pos(kw)}
	for !p.atEnd() && p.peek().Type != lexer.RBRACE {
		decl, err := p.parseBindDecl()
		if err != nil {
			return nil, err
		}
		stmt.Decls = append(stmt.Decls, decl)
	}
	if err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseBindDecl() (ast.BindDecl, error) {
	var decl ast.BindDecl
	tok := p.peek()
	decl.At = pos(tok)

	// Target: component.property | groupName(members) | (members)
	switch {
	case tok.Type == lexer.LPAREN:
		members, err := p.parseMemberList()
		if err != nil {
			return decl, err
		}
		decl.Members = members

	case tok.Type == lexer.IDENT:
		name := p.advance()
		switch p.peek().Type {
		case lexer.DOT:
			p.advance()
			prop, err := p.expectIdent("property name")
			if err != nil {
				return decl, err
			}
			decl.Component = name.Value
			decl.Property = prop.Value
		case lexer.LPAREN:
			members, err := p.parseMemberList()
			if err != nil {
				return decl, err
			}
			decl.GroupName = name.Value
			decl.Members = members
		default:
			return decl, p.errorf(p.peek(), "expected '.' or '(' after %q in bind target", name.Value)
		}

	default:
		return decl, p.errorf(tok, "expected bind target, got %s", tok.Type)
	}

	if err := p.expect(lexer.COLON); err != nil {
		return decl, err
	}

	expr, err := p.parseExprRef()
	if err != nil {
		return decl, err
	}
	decl.Expr = expr

	// Optional root selector: (primary) | (secondary) | (none) | (bean name)
	if p.peek().Type == lexer.LPAREN {
		root, err := p.parseRootRef()
		if err != nil {
			return decl, err
		}
		decl.Root = root
	} else {
		decl.Root = ast.RootRef{Kind: ast.PrimaryRoot}
	}

	// Optional refresh trigger list: [save, reload]
	if p.peek().Type == lexer.LBRACKET {
		p.advance()
		for {
			trig, err := p.expectIdent("trigger name")
			if err != nil {
				return decl, err
			}
			decl.Triggers = append(decl.Triggers, trig.Value)
			if p.peek().Type != lexer.COMMA {
				break
			}
			p.advance()
		}
		if err := p.expect(lexer.RBRACKET); err != nil {
			return decl, err
		}
	}

	if err := p.expect(lexer.SEMI); err != nil {
		return decl, err
	}
	return decl, nil
}

// parseMemberList parses (a, b, c) into member names.
func (p *Parser) parseMemberList() ([]string, error) {
	if err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var members []string
	for {
		m, err := p.expectIdent("group member name")
		if err != nil {
			return nil, err
		}
		members = append(members, m.Value)
		if p.peek().Type != lexer.COMMA {
			break
		}
		p.advance()
	}
	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return members, nil
}

// parseExprRef parses the right-hand side of a bind clause: an embedded
// expression token, a placeholder token, or a dotted property path.
func (p *Parser) parseExprRef() (ast.ExprRef, error) {
	tok := p.peek()
	switch tok.Type {
	case lexer.EXPR:
		p.advance()
		return ast.ExprRef{Form: ast.EmbeddedExpr, Text: tok.Value, At: pos(tok)}, nil
	case lexer.PLACEHOLDER:
		p.advance()
		return ast.ExprRef{Form: ast.PlaceholderExpr, Text: tok.Value, At: pos(tok)}, nil
	case lexer.IDENT:
		path := p.advance().Value
		for p.peek().Type == lexer.DOT {
			p.advance()
			seg, err := p.expectIdent("path segment")
			if err != nil {
				return ast.ExprRef{}, err
			}
			path += "." + seg.Value
		}
		return ast.ExprRef{Form: ast.PathExpr, Text: path, At: pos(tok)}, nil
	default:
		return ast.ExprRef{}, p.errorf(tok, "expected expression, got %s", tok.Type)
	}
}

// parseRootRef parses (primary), (secondary), (none) or (bean name).
func (p *Parser) parseRootRef() (ast.RootRef, error) {
	if err := p.expect(lexer.LPAREN); err != nil {
		return ast.RootRef{}, err
	}
	kind, err := p.expectIdent("root selector")
	if err != nil {
		return ast.RootRef{}, err
	}

	var root ast.RootRef
	switch kind.Value {
	case "primary":
		root.Kind = ast.PrimaryRoot
	case "secondary":
		root.Kind = ast.SecondaryRoot
	case "none":
		root.Kind = ast.NoRoot
	case "bean":
		name, err := p.expectIdent("bean name")
		if err != nil {
			return ast.RootRef{}, err
		}
		root.Kind = ast.BeanRoot
		root.Bean = name.Value
	default:
		return ast.RootRef{}, p.errorf(kind, "unknown root selector %q", kind.Value)
	}

	if err := p.expect(lexer.RPAREN); err != nil {
		return ast.RootRef{}, err
	}
	return root, nil
}

// parseLayout handles: layout { container: style(items); ... }
func (p *Parser) parseLayout() (ast.Stmt, error) {
	kw := p.advance() // layout
	if err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}

	stmt := &ast.LayoutStmt{At: pos(kw)}
	for !p.atEnd() && p.peek().Type != lexer.RBRACE {
		target, err := p.expectIdent("layout target")
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		style, err := p.expectIdent("layout style")
		if err != nil {
			return nil, err
		}

		decl := ast.LayoutDecl{Target: target.Value, Style: style.Value, At: pos(target)}
		if err := p.expect(lexer.LPAREN); err != nil {
			return nil, err
		}
		for p.peek().Type != lexer.RPAREN {
			item, err := p.parseLayoutItem()
			if err != nil {
				return nil, err
			}
			decl.Items = append(decl.Items, item)
			if p.peek().Type != lexer.COMMA {
				break
			}
			p.advance()
		}
		if err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		if err := p.expect(lexer.SEMI); err != nil {
			return nil, err
		}
		stmt.Decls = append(stmt.Decls, decl)
	}
	if err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseLayoutItem parses one layout argument: key=value, a bare reference,
// or a call item such as rigid(4, 4) or cell(x=1, y=0).
func (p *Parser) parseLayoutItem() (ast.LayoutItem, error) {
	tok := p.peek()
	if tok.Type != lexer.IDENT {
		return ast.LayoutItem{}, p.errorf(tok, "expected layout item, got %s", tok.Type)
	}
	name := p.advance()
	item := ast.LayoutItem{At: pos(name)}

	switch p.peek().Type {
	case lexer.EQUALS:
		p.advance()
		lit, err := p.parseLiteral()
		if err != nil {
			return ast.LayoutItem{}, err
		}
		item.Key = name.Value
		item.Value = &lit
		return item, nil

	case lexer.LPAREN:
		p.advance()
		item.Name = name.Value
		for p.peek().Type != lexer.RPAREN {
			if p.peek().Type == lexer.IDENT && p.peekAhead(1).Type == lexer.EQUALS {
				key := p.advance()
				p.advance() // =
				lit, err := p.parseLiteral()
				if err != nil {
					return ast.LayoutItem{}, err
				}
				item.KV = append(item.KV, ast.Prop{Key: key.Value, Value: lit})
			} else {
				lit, err := p.parseLiteral()
				if err != nil {
					return ast.LayoutItem{}, err
				}
				item.Args = append(item.Args, lit)
			}
			if p.peek().Type != lexer.COMMA {
				break
			}
			p.advance()
		}
		if err := p.expect(lexer.RPAREN); err != nil {
			return ast.LayoutItem{}, err
		}
		return item, nil

	default:
		item.Name = name.Value
		return item, nil
	}
}

// parseInvoke handles: invoke method; and invoke method (root);
func (p *Parser) parseInvoke() (ast.Stmt, error) {
	kw := p.advance() // invoke
	method, err := p.expectIdent("method name")
	if err != nil {
		return nil, err
	}

	stmt := &ast.InvokeStmt{Method: method.Value, Root: ast.RootRef{Kind: ast.PrimaryRoot}, At: pos(kw)}
	if p.peek().Type == lexer.LPAREN {
		root, err := p.parseRootRef()
		if err != nil {
			return nil, err
		}
		stmt.Root = root
	}
	if err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parsePropList parses (key=literal, ...); the parens are required, the
// list may be empty.
func (p *Parser) parsePropList() ([]ast.Prop, error) {
	if err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var props []ast.Prop
	for p.peek().Type != lexer.RPAREN {
		key, err := p.expectIdent("property name")
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.EQUALS); err != nil {
			return nil, err
		}
		lit, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		props = append(props, ast.Prop{Key: key.Value, Value: lit})
		if p.peek().Type != lexer.COMMA {
			break
		}
		p.advance()
	}
	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return props, nil
}

// parseLiteralArgs parses (literal, ...); the list may be empty.
func (p *Parser) parseLiteralArgs() ([]ast.Literal, error) {
	if err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var args []ast.Literal
	for p.peek().Type != lexer.RPAREN {
		lit, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		args = append(args, lit)
		if p.peek().Type != lexer.COMMA {
			break
		}
		p.advance()
	}
	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return args, nil
}

// parseLiteral parses a literal value or a bare name reference.
func (p *Parser) parseLiteral() (ast.Literal, error) {
	tok := p.peek()
	switch tok.Type {
	case lexer.INT:
		p.advance()
		v, err := parseInt(tok.Value)
		if err != nil {
			return ast.Literal{}, p.errorf(tok, "bad integer literal %q: %v", tok.Value, err)
		}
		return ast.Literal{Kind: ast.IntLit, Int: v, At: pos(tok)}, nil
	case lexer.FLOAT:
		p.advance()
		v, err := parseFloat(tok.Value)
		if err != nil {
			return ast.Literal{}, p.errorf(tok, "bad float literal %q: %v", tok.Value, err)
		}
		return ast.Literal{Kind: ast.FloatLit, Float: v, At: pos(tok)}, nil
	case lexer.BOOL:
		p.advance()
		return ast.Literal{Kind: ast.BoolLit, Bool: tok.Value == "true", At: pos(tok)}, nil
	case lexer.STRING:
		p.advance()
		return ast.Literal{Kind: ast.StringLit, Str: tok.Value, At: pos(tok)}, nil
	case lexer.IDENT:
		p.advance()
		return ast.Literal{Kind: ast.NameLit, Str: tok.Value, At: pos(tok)}, nil
	default:
		return ast.Literal{}, p.errorf(tok, "expected literal value, got %s", tok.Type)
	}
}

// Token cursor helpers

func (p *Parser) peek() lexer.Token {
	if p.pos >= len(p.tokens) {
		return lexer.Token{Type: lexer.EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekAhead(n int) lexer.Token {
	if p.pos+n >= len(p.tokens) {
		return lexer.Token{Type: lexer.EOF}
	}
	return p.tokens[p.pos+n]
}

func (p *Parser) advance() lexer.Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) atEnd() bool {
	return p.peek().Type == lexer.EOF
}

func (p *Parser) expect(typ lexer.TokenType) error {
	tok := p.peek()
	if tok.Type != typ {
		return p.errorf(tok, "expected %s, got %s", typ, tok.Type)
	}
	p.advance()
	return nil
}

func (p *Parser) expectIdent(what string) (lexer.Token, error) {
	tok := p.peek()
	if tok.Type != lexer.IDENT {
		return tok, p.errorf(tok, "expected %s, got %s", what, tok.Type)
	}
	p.advance()
	return tok, nil
}

func (p *Parser) errorf(tok lexer.Token, format string, args ...interface{}) error {
	return fmt.Errorf("%d:%d: %s", tok.Line, tok.Column, fmt.Sprintf(format, args...))
}

func pos(tok lexer.Token) ast.Pos {
	return ast.Pos{Line: tok.Line, Col: tok.Column}
}

// parseInt accepts decimal and 0x-prefixed hex, with an optional minus sign.
func parseInt(s string) (int64, error) {
	return strconv.ParseInt(s, 0, 64)
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
