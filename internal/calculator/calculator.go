package calculator

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/littlekuo/calc-treewalk/internal/config"
	"github.com/littlekuo/calc-treewalk/internal/interpreter"
	"github.com/littlekuo/calc-treewalk/internal/logging"
	"github.com/littlekuo/calc-treewalk/internal/syntax"
)

type Option func(*Calculator)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Calculator) {
		c.logger = logger
	}
}

func WithParserOptions(opts ...syntax.Option) Option {
	return func(c *Calculator) {
		c.parserOpts = append(c.parserOpts, opts...)
	}
}

// WithParserConfig applies the [parser] config section.
func WithParserConfig(cfg config.ParserConfig) Option {
	return WithParserOptions(
		syntax.WithAllowTrailing(cfg.AllowTrailing),
		syntax.WithLenientClose(cfg.LenientClose),
	)
}

// Calculator holds one lexed input. Each ParseExpression call parses it
// with a fresh token stream.
type Calculator struct {
	source     string
	tokens     []syntax.Token
	remaining  []syntax.Token
	parserOpts []syntax.Option
	logger     *slog.Logger
}

// New lexes input right away and fails with a *syntax.LexError on input no
// token rule accepts.
func New(input string, opts ...Option) (*Calculator, error) {
	c := &Calculator{
		source: input,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	tokens, err := syntax.NewScanner(input).ScanTokens()
	if err != nil {
		c.logger.Debug("lex failed", "input", input, "error", err)
		return nil, err
	}
	c.tokens = tokens
	c.logger.Debug("lexed input", "input", input, "tokens", len(tokens))
	return c, nil
}

func (c *Calculator) Source() string {
	return c.source
}

func (c *Calculator) Tokens() []syntax.Token {
	return c.tokens
}

// Remaining returns the tokens the last ParseExpression left unconsumed.
// It is only non-empty when trailing tokens are allowed.
func (c *Calculator) Remaining() []syntax.Token {
	return c.remaining
}

// ParseExpression parses the whole token sequence into a tree rooted at
// Expression.
func (c *Calculator) ParseExpression() (*syntax.Expression, error) {
	parser := syntax.NewParser(c.tokens, c.parserOpts...)
	expr, err := parser.Parse()
	if err != nil {
		c.logger.Debug("parse failed", "input", c.source, "error", err)
		return nil, err
	}
	c.remaining = parser.Remaining()
	if len(c.remaining) > 0 {
		c.logger.Warn("ignored trailing tokens", "input", c.source, "count", len(c.remaining))
	}
	return expr, nil
}

// Traverse runs a string-producing traversal over the tree.
func (c *Calculator) Traverse(tree *syntax.Expression, v syntax.Visitor) (string, error) {
	out, err := syntax.Walk(v, tree)
	if err != nil {
		c.logger.Error("traversal failed", "input", c.source, "error", err)
		return "", err
	}
	return out, nil
}

func (c *Calculator) Evaluate(tree *syntax.Expression) (float64, error) {
	return interpreter.NewInterpreter().Evaluate(tree)
}

// Render runs the whole pipeline for the named traversal: rpn, original or
// eval.
func Render(input string, traversal string, opts ...Option) (string, error) {
	c, err := New(input, opts...)
	if err != nil {
		return "", err
	}
	tree, err := c.ParseExpression()
	if err != nil {
		return "", err
	}
	c.logger.Debug("rendering", "traversal", traversal)
	switch traversal {
	case config.TraversalRPN:
		return c.Traverse(tree, syntax.RPNPrinter{})
	case config.TraversalOriginal:
		return c.Traverse(tree, syntax.OriginalPrinter{})
	case config.TraversalEval:
		value, err := c.Evaluate(tree)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(value, 'g', -1, 64), nil
	}
	return "", fmt.Errorf("unknown traversal %q", traversal)
}
