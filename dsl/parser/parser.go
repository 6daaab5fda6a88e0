package parser

import (
	"fmt"
	"strconv"

	"github.com/thisisjab/tably/dsl/token"
	"github.com/thisisjab/tably/dsl/value"
	"github.com/thisisjab/tably/fault"
)

// Parser consumes a token sequence by recursive descent and builds the root
// table. The cursor is a plain index so the constant-declaration speculation
// can rewind it; constants declared before the root table live exactly as
// long as this one parse.
type Parser struct {
	tokens    []token.Token
	pos       int
	constants *constTable
}

func New(tokens []token.Token) *Parser {
	return &Parser{
		tokens:    tokens,
		constants: newConstTable(),
	}
}

func (p *Parser) current() token.Token {
	if p.pos >= len(p.tokens) {
		// Tokenize terminates every sequence with an EOF token, so this
		// only guards a hand-built slice.
		return token.Token{Type: token.EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) currentIs(t token.TokenType) bool {
	return p.current().Type == t
}

func (p *Parser) eat(t token.TokenType) (token.Token, error) {
	tok := p.current()
	if tok.Type != t {
		return tok, unexpected(t.String(), tok)
	}
	p.pos++
	return tok, nil
}

func unexpected(want string, got token.Token) error {
	return fault.New(fault.ParseErrorCode,
		fmt.Sprintf("expected %s, got %s at offset %d", want, got.Type, got.Pos)).
		WithMetadata(map[string]any{"expected": want, "actual": got.Type.String(), "offset": got.Pos})
}

// ParseConfig parses `constant_decl* table_expr` and requires the token
// sequence to be fully consumed. The grammar cannot tell a constant
// declaration from the root table without trying: both can start a config,
// so each NAME at the top level begins a speculative declaration parse that
// rewinds and falls through to the table expression on failure.
func (p *Parser) ParseConfig() (*value.Table, error) {
	for p.currentIs(token.NAME) {
		save := p.pos

		name, val, err := p.parseConstantDecl()
		if err != nil {
			p.pos = save
			break
		}

		if err := p.constants.declare(name, val); err != nil {
			return nil, err
		}
	}

	root, err := p.parseTableExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.eat(token.EOF); err != nil {
		return nil, err
	}

	return root, nil
}

func (p *Parser) parseConstantDecl() (string, value.Value, error) {
	name, err := p.eat(token.NAME)
	if err != nil {
		return "", nil, err
	}

	if _, err := p.eat(token.EQUAL); err != nil {
		return "", nil, err
	}

	val, err := p.parseValue()
	if err != nil {
		return "", nil, err
	}

	if _, err := p.eat(token.SEMI); err != nil {
		return "", nil, err
	}

	return name.Literal, val, nil
}

func (p *Parser) parseTableExpr() (*value.Table, error) {
	if _, err := p.eat(token.TABLE); err != nil {
		return nil, err
	}
	if _, err := p.eat(token.LPAREN); err != nil {
		return nil, err
	}
	if _, err := p.eat(token.LBRACK); err != nil {
		return nil, err
	}

	t, err := p.parsePairs()
	if err != nil {
		return nil, err
	}

	if _, err := p.eat(token.RBRACK); err != nil {
		return nil, err
	}
	if _, err := p.eat(token.RPAREN); err != nil {
		return nil, err
	}

	return t, nil
}

func (p *Parser) parsePairs() (*value.Table, error) {
	t := value.NewTable()

	if !p.currentIs(token.NAME) {
		return t, nil
	}

	key, val, err := p.parsePair()
	if err != nil {
		return nil, err
	}
	t.Set(key, val)

	for p.currentIs(token.COMMA) {
		p.pos++

		keyTok := p.current()

		key, val, err := p.parsePair()
		if err != nil {
			return nil, err
		}

		if t.Has(key) {
			return nil, fault.New(fault.DuplicateKeyCode,
				fmt.Sprintf("duplicate key %q in table at offset %d", key, keyTok.Pos)).
				WithMetadata(map[string]any{"key": key, "offset": keyTok.Pos})
		}

		t.Set(key, val)
	}

	return t, nil
}

func (p *Parser) parsePair() (string, value.Value, error) {
	name, err := p.eat(token.NAME)
	if err != nil {
		return "", nil, err
	}

	if _, err := p.eat(token.EQUAL); err != nil {
		return "", nil, err
	}

	val, err := p.parseValue()
	if err != nil {
		return "", nil, err
	}

	return name.Literal, val, nil
}

func (p *Parser) parseValue() (value.Value, error) {
	tok := p.current()

	switch tok.Type {
	case token.NUMBER:
		p.pos++
		n, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, fault.New(fault.ParseErrorCode,
				fmt.Sprintf("number %s at offset %d does not fit in 64 bits", tok.Literal, tok.Pos)).
				WithOriginal(err)
		}
		return value.Int(n), nil

	case token.STRING:
		p.pos++
		return value.String(tok.Literal), nil

	case token.TRUE:
		p.pos++
		return value.Bool(true), nil

	case token.FALSE:
		p.pos++
		return value.Bool(false), nil

	case token.TABLE:
		return p.parseTableExpr()

	case token.QUESTION:
		return p.parseConstRef()

	default:
		return nil, unexpected("value", tok)
	}
}

func (p *Parser) parseConstRef() (value.Value, error) {
	if _, err := p.eat(token.QUESTION); err != nil {
		return nil, err
	}

	name, err := p.eat(token.NAME)
	if err != nil {
		return nil, err
	}

	if _, err := p.eat(token.RBRACE); err != nil {
		return nil, err
	}

	v, ok := p.constants.lookup(name.Literal)
	if !ok {
		return nil, fault.New(fault.UndefinedConstantCode,
			fmt.Sprintf("undefined constant %q at offset %d", name.Literal, name.Pos)).
			WithMetadata(map[string]any{"name": name.Literal, "offset": name.Pos})
	}

	return v, nil
}
