package syntax

import "fmt"

type TokenType int

const (
	TOKEN_NUMBER TokenType = iota + 1
	TOKEN_ADD
	TOKEN_SUB
	TOKEN_MUL
	TOKEN_DIV
	TOKEN_LPAREN
	TOKEN_RPAREN
)

var (
	TokenTypeStr = map[TokenType]string{
		TOKEN_NUMBER: "NUMBER",
		TOKEN_ADD:    "ADD",
		TOKEN_SUB:    "SUB",
		TOKEN_MUL:    "MUL",
		TOKEN_DIV:    "DIV",
		TOKEN_LPAREN: "LPAREN",
		TOKEN_RPAREN: "RPAREN",
	}
)

func (t TokenType) String() string {
	if s, ok := TokenTypeStr[t]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is immutable once scanned. Pos is the byte offset of Lexeme in the
// scanned source.
type Token struct {
	TokenType TokenType
	Lexeme    string
	Pos       int
}

func NewToken(tokenType TokenType, lexeme string, pos int) Token {
	return Token{tokenType, lexeme, pos}
}

func (t Token) String() string {
	return fmt.Sprintf("token: {type: %s lexeme:%s, pos: %d}", t.TokenType, t.Lexeme, t.Pos)
}
