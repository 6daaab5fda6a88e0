package token

const (
	ILLEGAL TokenType = iota
	EOF

	// Identifiers + literals
	NAME   // lowercase identifier: [a-z_]+
	NUMBER // unsigned decimal digits
	STRING // double-quoted, no escapes

	// Keywords
	TABLE
	TRUE
	FALSE

	// Delimiters
	LPAREN   // (
	RPAREN   // )
	LBRACK   // [
	RBRACK   // ]
	EQUAL    // =
	COMMA    // ,
	SEMI     // ;
	QUESTION // ?{
	RBRACE   // }
)

type TokenType int

var typeNames = [...]string{
	ILLEGAL:  "illegal",
	EOF:      "end of input",
	NAME:     "name",
	NUMBER:   "number",
	STRING:   "string",
	TABLE:    "`table`",
	TRUE:     "`true`",
	FALSE:    "`false`",
	LPAREN:   "`(`",
	RPAREN:   "`)`",
	LBRACK:   "`[`",
	RBRACK:   "`]`",
	EQUAL:    "`=`",
	COMMA:    "`,`",
	SEMI:     "`;`",
	QUESTION: "`?{`",
	RBRACE:   "`}`",
}

func (t TokenType) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// Token is one lexical unit. Pos is the byte offset of the token's first
// character in the comment-stripped source, used only in error messages.
type Token struct {
	Type    TokenType
	Literal string
	Pos     int
}
