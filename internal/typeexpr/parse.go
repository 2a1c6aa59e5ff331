package typeexpr

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
)

// ParseError reports where a type expression stopped making sense.
type ParseError struct {
	Pos hcl.Pos
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid type expression at column %d: %s", e.Pos.Column, e.Msg)
}

// Parse reads a type constraint. `optional(T, default)` keeps T and discards
// the default expression.
func Parse(expr string) (*Type, error) {
	tokens, diags := hclsyntax.LexExpression([]byte(expr), "type", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		pos := hcl.Pos{Line: 1, Column: 1}
		if d := diags[0]; d.Subject != nil {
			pos = d.Subject.Start
		}
		return nil, &ParseError{Pos: pos, Msg: diags[0].Summary}
	}

	p := &parser{tokens: significant(tokens)}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Type != hclsyntax.TokenEOF {
		return nil, p.errorf(tok, "unexpected %q after type", tok.Bytes)
	}
	return t, nil
}

// significant drops newline tokens; they carry no meaning inside a type.
func significant(tokens hclsyntax.Tokens) hclsyntax.Tokens {
	out := make(hclsyntax.Tokens, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Type == hclsyntax.TokenNewline {
			continue
		}
		out = append(out, tok)
	}
	return out
}

type parser struct {
	tokens hclsyntax.Tokens
	pos    int
}

func (p *parser) peek() hclsyntax.Token {
	if p.pos >= len(p.tokens) {
		return hclsyntax.Token{Type: hclsyntax.TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *parser) next() hclsyntax.Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *parser) expect(tt hclsyntax.TokenType, what string) (hclsyntax.Token, error) {
	tok := p.next()
	if tok.Type != tt {
		return tok, p.errorf(tok, "expected %s, got %s", what, describe(tok))
	}
	return tok, nil
}

func (p *parser) errorf(tok hclsyntax.Token, format string, args ...any) *ParseError {
	return &ParseError{Pos: tok.Range.Start, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) parseType() (*Type, error) {
	tok := p.next()
	if tok.Type != hclsyntax.TokenIdent {
		return nil, p.errorf(tok, "expected a type, got %s", describe(tok))
	}

	switch name := Kind(tok.Bytes); name {
	case String, Number, Bool, Any:
		return &Type{Kind: name}, nil
	case List, Set, Map:
		elem, err := p.parseWrapped(false)
		if err != nil {
			return nil, err
		}
		return &Type{Kind: name, Elem: elem}, nil
	case Optional:
		elem, err := p.parseWrapped(true)
		if err != nil {
			return nil, err
		}
		return &Type{Kind: Optional, Elem: elem}, nil
	case Object:
		return p.parseObject()
	case Tuple:
		return p.parseTuple()
	default:
		return nil, p.errorf(tok, "unknown type %q", tok.Bytes)
	}
}

// parseWrapped reads `( T )`. With allowDefault, `( T , <expr> )` is accepted
// and the expression skipped.
func (p *parser) parseWrapped(allowDefault bool) (*Type, error) {
	if _, err := p.expect(hclsyntax.TokenOParen, `"("`); err != nil {
		return nil, err
	}
	elem, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if allowDefault && p.peek().Type == hclsyntax.TokenComma {
		p.next()
		if err := p.skipExpression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(hclsyntax.TokenCParen, `")"`); err != nil {
		return nil, err
	}
	return elem, nil
}

func (p *parser) parseObject() (*Type, error) {
	if _, err := p.expect(hclsyntax.TokenOParen, `"("`); err != nil {
		return nil, err
	}
	if _, err := p.expect(hclsyntax.TokenOBrace, `"{"`); err != nil {
		return nil, err
	}

	obj := &Type{Kind: Object}
	for {
		tok := p.peek()
		if tok.Type == hclsyntax.TokenCBrace {
			p.next()
			break
		}
		if tok.Type == hclsyntax.TokenComma {
			p.next()
			continue
		}

		name, err := p.attributeName()
		if err != nil {
			return nil, err
		}
		sep := p.next()
		if sep.Type != hclsyntax.TokenEqual && sep.Type != hclsyntax.TokenColon {
			return nil, p.errorf(sep, "expected \"=\" after attribute %q, got %s", name, describe(sep))
		}
		attrType, err := p.parseType()
		if err != nil {
			return nil, err
		}
		obj.Attrs = append(obj.Attrs, Attribute{Name: name, Type: attrType})
	}

	if _, err := p.expect(hclsyntax.TokenCParen, `")"`); err != nil {
		return nil, err
	}
	return obj, nil
}

// parseTuple reads `([ T, T, ... ])`.
func (p *parser) parseTuple() (*Type, error) {
	if _, err := p.expect(hclsyntax.TokenOParen, `"("`); err != nil {
		return nil, err
	}
	if _, err := p.expect(hclsyntax.TokenOBrack, `"["`); err != nil {
		return nil, err
	}

	tuple := &Type{Kind: Tuple}
	for {
		tok := p.peek()
		if tok.Type == hclsyntax.TokenCBrack {
			p.next()
			break
		}
		if tok.Type == hclsyntax.TokenComma && len(tuple.Elems) > 0 {
			p.next()
			continue
		}
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		tuple.Elems = append(tuple.Elems, elem)
	}

	if _, err := p.expect(hclsyntax.TokenCParen, `")"`); err != nil {
		return nil, err
	}
	return tuple, nil
}

func (p *parser) attributeName() (string, error) {
	tok := p.next()
	switch tok.Type {
	case hclsyntax.TokenIdent:
		return string(tok.Bytes), nil
	case hclsyntax.TokenOQuote:
		lit, err := p.expect(hclsyntax.TokenQuotedLit, "attribute name")
		if err != nil {
			return "", err
		}
		if _, err := p.expect(hclsyntax.TokenCQuote, `closing quote`); err != nil {
			return "", err
		}
		return string(lit.Bytes), nil
	default:
		return "", p.errorf(tok, "expected attribute name, got %s", describe(tok))
	}
}

// skipExpression advances past one default-value expression, stopping before
// the `)` that closes the enclosing optional(...).
func (p *parser) skipExpression() error {
	depth := 0
	for {
		tok := p.peek()
		switch tok.Type {
		case hclsyntax.TokenEOF:
			return p.errorf(tok, "unterminated optional default")
		case hclsyntax.TokenOParen, hclsyntax.TokenOBrace, hclsyntax.TokenOBrack,
			hclsyntax.TokenTemplateInterp, hclsyntax.TokenTemplateControl:
			depth++
		case hclsyntax.TokenCParen, hclsyntax.TokenCBrace, hclsyntax.TokenCBrack,
			hclsyntax.TokenTemplateSeqEnd:
			if depth == 0 {
				return nil
			}
			depth--
		}
		p.next()
	}
}

func describe(tok hclsyntax.Token) string {
	if tok.Type == hclsyntax.TokenEOF {
		return "end of expression"
	}
	return fmt.Sprintf("%q", tok.Bytes)
}
