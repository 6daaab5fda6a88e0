package lexer

import (
	"fmt"

	"github.com/thisisjab/tably/dsl/token"
	"github.com/thisisjab/tably/fault"
)

// Lexer scans a comment-stripped source byte by byte. Every token it emits
// starts exactly at the cursor; there is no searching ahead.
type Lexer struct {
	input   string
	pos     int  // position of the current character in the input string
	readPos int  // position of the next character to be read
	char    byte // current character being processed
}

// Reserved words are scanned as maximal-munch identifiers first and then
// reclassified here, so `truex` stays a name.
var keywords = map[string]token.TokenType{
	"table": token.TABLE,
	"true":  token.TRUE,
	"false": token.FALSE,
}

func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.char = 0
	} else {
		l.char = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) NextToken() token.Token {
	var tok token.Token

	l.skipWhitespace()

	pos := l.pos

	switch l.char {
	case '(':
		tok = token.Token{Type: token.LPAREN, Literal: "(", Pos: pos}
	case ')':
		tok = token.Token{Type: token.RPAREN, Literal: ")", Pos: pos}
	case '[':
		tok = token.Token{Type: token.LBRACK, Literal: "[", Pos: pos}
	case ']':
		tok = token.Token{Type: token.RBRACK, Literal: "]", Pos: pos}
	case '=':
		tok = token.Token{Type: token.EQUAL, Literal: "=", Pos: pos}
	case ',':
		tok = token.Token{Type: token.COMMA, Literal: ",", Pos: pos}
	case ';':
		tok = token.Token{Type: token.SEMI, Literal: ";", Pos: pos}
	case '}':
		tok = token.Token{Type: token.RBRACE, Literal: "}", Pos: pos}
	case '?':
		if l.peekChar() == '{' {
			l.readChar()
			tok = token.Token{Type: token.QUESTION, Literal: "?{", Pos: pos}
		} else {
			tok = token.Token{Type: token.ILLEGAL, Literal: "?", Pos: pos}
		}
	case '"':
		literal, ok := l.readQuotedString()
		if !ok {
			// Reached end of input before the closing quote; report the
			// opening quote as the offending character.
			return token.Token{Type: token.ILLEGAL, Literal: `"`, Pos: pos}
		}
		tok = token.Token{Type: token.STRING, Literal: literal, Pos: pos}
	case 0:
		tok = token.Token{Type: token.EOF, Literal: "", Pos: pos}
	default:
		if isLetter(l.char) {
			return l.readIdentifier()
		} else if isDigit(l.char) {
			return l.readNumber()
		}
		tok = token.Token{Type: token.ILLEGAL, Literal: string(l.char), Pos: pos}
	}

	l.readChar()
	return tok
}

func (l *Lexer) readIdentifier() token.Token {
	pos := l.pos

	for isLetter(l.char) {
		l.readChar()
	}

	literal := l.input[pos:l.pos]

	return token.Token{Type: lookupIdent(literal), Literal: literal, Pos: pos}
}

func (l *Lexer) readNumber() token.Token {
	pos := l.pos

	for isDigit(l.char) {
		l.readChar()
	}

	return token.Token{Type: token.NUMBER, Literal: l.input[pos:l.pos], Pos: pos}
}

// readQuotedString returns the text between the quotes. There is no escape
// processing: the string ends at the very next quote character.
func (l *Lexer) readQuotedString() (string, bool) {
	pos := l.pos + 1

	for {
		l.readChar()
		if l.char == '"' {
			return l.input[pos:l.pos], true
		}
		if l.char == 0 {
			return "", false
		}
	}
}

func lookupIdent(ident string) token.TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return token.NAME
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || c == '_'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func (l *Lexer) skipWhitespace() {
	for isWhitespace(l.char) {
		l.readChar()
	}
}

// Tokenize strips comments from src, scans it to the end, and returns the
// token sequence terminated by one end-of-input token. The first character
// that matches no token pattern aborts the scan.
func Tokenize(src string) ([]token.Token, error) {
	l := New(StripComments(src))

	var tokens []token.Token
	for {
		tok := l.NextToken()

		if tok.Type == token.ILLEGAL {
			return nil, fault.New(fault.LexErrorCode,
				fmt.Sprintf("unexpected character %q at offset %d", tok.Literal, tok.Pos)).
				WithMetadata(map[string]any{"offset": tok.Pos})
		}

		tokens = append(tokens, tok)

		if tok.Type == token.EOF {
			return tokens, nil
		}
	}
}
