package syntax

/*
Precedence from lowest to highest:

Operator    	          Associativity
Term:        - +          Left
Factor:      / *          Left
Unary:       -            Right

Left recursion is removed with the tail rules A and B:

expression ->  term a
term       ->  factor b
a          ->  ( "+" | "-" ) term a | ε
b          ->  ( "*" | "/" ) factor b | ε
factor     ->  NUMBER | "(" expression ")" | "-" factor

Every choice looks at one token only and never backtracks. Left
associativity is restored by whoever walks the tails.
*/

type Option func(*Parser)

// WithAllowTrailing makes Parse ignore tokens left after the expression.
func WithAllowTrailing(allow bool) Option {
	return func(p *Parser) {
		p.allowTrailing = allow
	}
}

// WithLenientClose drops whatever token follows a parenthesized expression
// without checking that it is ")".
func WithLenientClose(lenient bool) Option {
	return func(p *Parser) {
		p.lenientClose = lenient
	}
}

type Parser struct {
	stream        *TokenStream
	allowTrailing bool
	lenientClose  bool
}

func NewParser(tokens []Token, opts ...Option) *Parser {
	p := &Parser{
		stream: NewTokenStream(tokens),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses one Expression and requires it to cover every token.
func (p *Parser) Parse() (*Expression, error) {
	expr, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if !p.allowTrailing {
		if tok, ok := p.stream.Peek(); ok {
			return nil, p.error(&tok, "unexpected trailing token")
		}
	}
	return expr, nil
}

// ParseExpression runs the Expression production. Tokens it does not need
// stay in the stream; see Remaining.
func (p *Parser) ParseExpression() (*Expression, error) {
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	tail, err := p.parseA()
	if err != nil {
		return nil, err
	}
	return NewExpression(term, tail), nil
}

// Remaining returns the tokens the parser has not consumed.
func (p *Parser) Remaining() []Token {
	return p.stream.Remaining()
}

func (p *Parser) parseTerm() (*Term, error) {
	factor, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	tail, err := p.parseB()
	if err != nil {
		return nil, err
	}
	return NewTerm(factor, tail), nil
}

func (p *Parser) parseA() (*A, error) {
	if !p.check(TOKEN_ADD, TOKEN_SUB) {
		return EmptyA(), nil
	}
	op, _ := p.stream.Take()
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	next, err := p.parseA()
	if err != nil {
		return nil, err
	}
	return NewA(op, term, next), nil
}

func (p *Parser) parseB() (*B, error) {
	if !p.check(TOKEN_MUL, TOKEN_DIV) {
		return EmptyB(), nil
	}
	op, _ := p.stream.Take()
	factor, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	next, err := p.parseB()
	if err != nil {
		return nil, err
	}
	return NewB(op, factor, next), nil
}

func (p *Parser) parseFactor() (Factor, error) {
	tok, ok := p.stream.Peek()
	if !ok {
		return nil, p.error(nil, "expected Factor")
	}
	switch tok.TokenType {
	case TOKEN_NUMBER:
		p.stream.Take()
		return NewNumberFactor(tok), nil
	case TOKEN_LPAREN:
		p.stream.Take()
		expr, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.closeGroup(); err != nil {
			return nil, err
		}
		return NewGroupFactor(expr), nil
	case TOKEN_SUB:
		p.stream.Take()
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return NewNegateFactor(operand), nil
	}
	return nil, p.error(&tok, "expected Factor")
}

func (p *Parser) closeGroup() error {
	if p.lenientClose {
		p.stream.Take()
		return nil
	}
	tok, ok := p.stream.Peek()
	if !ok {
		return p.error(nil, "expected ')' after expression")
	}
	if tok.TokenType != TOKEN_RPAREN {
		return p.error(&tok, "expected ')' after expression")
	}
	p.stream.Take()
	return nil
}

func (p *Parser) check(tokenTypes ...TokenType) bool {
	tok, ok := p.stream.Peek()
	if !ok {
		return false
	}
	for _, type_ := range tokenTypes {
		if tok.TokenType == type_ {
			return true
		}
	}
	return false
}

func (p *Parser) error(found *Token, message string) error {
	return &ParseError{Pos: p.stream.Pos(), Found: found, Message: message}
}
