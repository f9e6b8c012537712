package syntax

import (
	"regexp"
)

type tokenRule struct {
	tokenType TokenType
	pattern   *regexp.Regexp
}

// rules are tried in order and the first match wins. No two patterns share a
// leading character, so the order never decides between competing matches.
var rules = []tokenRule{
	{TOKEN_NUMBER, regexp.MustCompile(`^[0-9]+`)},
	{TOKEN_ADD, regexp.MustCompile(`^\+`)},
	{TOKEN_SUB, regexp.MustCompile(`^-`)},
	{TOKEN_MUL, regexp.MustCompile(`^\*`)},
	{TOKEN_DIV, regexp.MustCompile(`^/`)},
	{TOKEN_LPAREN, regexp.MustCompile(`^\(`)},
	{TOKEN_RPAREN, regexp.MustCompile(`^\)`)},
}

type Scanner struct {
	source  string
	tokens  []Token
	current int
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		tokens: make([]Token, 0),
	}
}

// ScanTokens splits the whole source into tokens. Whitespace is not skipped:
// any byte no rule matches fails the scan with a *LexError.
func (s *Scanner) ScanTokens() ([]Token, error) {
	for !s.isEnd() {
		if !s.scanToken() {
			return nil, &LexError{Pos: s.current, Remainder: s.source[s.current:]}
		}
	}
	return s.tokens, nil
}

func (s *Scanner) scanToken() bool {
	rest := s.source[s.current:]
	for _, rule := range rules {
		lexeme := rule.pattern.FindString(rest)
		if lexeme == "" {
			continue
		}
		s.tokens = append(s.tokens, NewToken(rule.tokenType, lexeme, s.current))
		s.current += len(lexeme)
		return true
	}
	return false
}

func (s *Scanner) isEnd() bool {
	return s.current >= len(s.source)
}
