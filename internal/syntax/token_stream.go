package syntax

// TokenStream is a FIFO cursor over a scanned token buffer. It belongs to a
// single parse; the buffer itself is never modified.
type TokenStream struct {
	tokens  []Token
	current int
}

func NewTokenStream(tokens []Token) *TokenStream {
	return &TokenStream{tokens: tokens}
}

// Peek returns the front token without consuming it. ok is false when the
// stream is empty.
func (ts *TokenStream) Peek() (tok Token, ok bool) {
	if ts.IsEmpty() {
		return Token{}, false
	}
	return ts.tokens[ts.current], true
}

// Take consumes and returns the front token.
func (ts *TokenStream) Take() (tok Token, ok bool) {
	tok, ok = ts.Peek()
	if ok {
		ts.current++
	}
	return tok, ok
}

func (ts *TokenStream) IsEmpty() bool {
	return ts.current >= len(ts.tokens)
}

// Remaining returns the tokens not consumed yet.
func (ts *TokenStream) Remaining() []Token {
	return ts.tokens[ts.current:]
}

// Pos is the source offset of the front token, or the end of the last token
// once the stream is exhausted.
func (ts *TokenStream) Pos() int {
	if tok, ok := ts.Peek(); ok {
		return tok.Pos
	}
	if len(ts.tokens) == 0 {
		return 0
	}
	last := ts.tokens[len(ts.tokens)-1]
	return last.Pos + len(last.Lexeme)
}
