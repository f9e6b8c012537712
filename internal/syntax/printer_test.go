package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRPNPrinter(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1+2*(4+3)", "1 2 4 3 +*+"},
		{"(1+2)", "1 2 +"},
		{"-(1+2)", "-1 2 +"},
		{"7", "7 "},
		{"1-2-3", "1 2 3 --"},
		{"2*3/4", "2 3 4 /*"},
		{"10*-2", "10 -2 *"},
		{"((5))", "5 "},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := RPNPrinter{}.Print(parse(t, tt.input))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestOriginalPrinter(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1+2", "1 plus 2"},
		{"1-2", "1 plus 2"},
		{"1+2*(4+3)", "1 plus 2*[[4 plus 3]]"},
		{"(1+2)", "[[1 plus 2]]"},
		{"-(1+2)", "-[[1 plus 2]]"},
		{"6/3", "6/3"},
		{"12", "12"},
		{"2*-3", "2*-3"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := OriginalPrinter{}.Print(parse(t, tt.input))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPrinters_MalformedTree(t *testing.T) {
	one := NewTerm(NewNumberFactor(NewToken(TOKEN_NUMBER, "1", 0)), EmptyB())

	tests := []struct {
		name string
		tree *Expression
	}{
		{
			name: "additive tail with multiplicative operator",
			tree: NewExpression(one, NewA(NewToken(TOKEN_MUL, "*", 1), one, EmptyA())),
		},
		{
			name: "additive tail without successor",
			tree: NewExpression(one, NewA(NewToken(TOKEN_ADD, "+", 1), one, nil)),
		},
		{
			name: "expression without tail",
			tree: NewExpression(one, nil),
		},
		{
			name: "number factor holding an operator",
			tree: NewExpression(NewTerm(NewNumberFactor(NewToken(TOKEN_ADD, "+", 0)), EmptyB()), EmptyA()),
		},
		{
			name: "empty group",
			tree: NewExpression(NewTerm(NewGroupFactor(nil), EmptyB()), EmptyA()),
		},
		{
			name: "nil tree",
			tree: nil,
		},
		{
			name: "nil negation operand",
			tree: NewExpression(NewTerm(NewNegateFactor((*NumberFactor)(nil)), EmptyB()), EmptyA()),
		},
		{
			name: "nil group inside multiplicative tail",
			tree: NewExpression(NewTerm(one.Factor, NewB(NewToken(TOKEN_MUL, "*", 1), (*GroupFactor)(nil), EmptyB())), EmptyA()),
		},
		{
			name: "nil term in additive tail",
			tree: NewExpression(one, NewA(NewToken(TOKEN_ADD, "+", 1), (*Term)(nil), EmptyA())),
		},
		{
			name: "additive tail with operator but no operands",
			tree: NewExpression(one, NewA(NewToken(TOKEN_ADD, "+", 1), nil, nil)),
		},
		{
			name: "multiplicative tail with operator but no operands",
			tree: NewExpression(NewTerm(one.Factor, NewB(NewToken(TOKEN_DIV, "/", 1), nil, nil)), EmptyA()),
		},
		{
			name: "multiplicative tail with additive operator",
			tree: NewExpression(NewTerm(one.Factor, NewB(NewToken(TOKEN_SUB, "-", 1), one.Factor, EmptyB())), EmptyA()),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range []Visitor{OriginalPrinter{}, RPNPrinter{}} {
				_, err := Walk(v, tt.tree)
				require.ErrorIs(t, err, ErrInternal)
				require.NotErrorIs(t, err, ErrParse)
				require.NotErrorIs(t, err, ErrLex)
			}
			_, err := TreeDumper{}.Dump(tt.tree)
			require.ErrorIs(t, err, ErrInternal)
		})
	}
}

// countingVisitor is a traversal defined outside the printers; it needs no
// change to the tree types.
type countingVisitor struct{}

func (c countingVisitor) VisitExpression(expr *Expression) Result {
	return c.sum(expr.Term, expr.Tail)
}

func (c countingVisitor) VisitTerm(term *Term) Result { return c.sum(term.Factor, term.Tail) }

func (c countingVisitor) VisitA(a *A) Result {
	if a.IsEpsilon() {
		return Result{Value: 0}
	}
	return c.sum(a.Term, a.Next)
}

func (c countingVisitor) VisitB(b *B) Result {
	if b.IsEpsilon() {
		return Result{Value: 0}
	}
	return c.sum(b.Factor, b.Next)
}

func (c countingVisitor) VisitNumberFactor(*NumberFactor) Result { return Result{Value: 1} }

func (c countingVisitor) VisitGroupFactor(g *GroupFactor) Result { return g.Expression.Accept(c) }

func (c countingVisitor) VisitNegateFactor(n *NegateFactor) Result { return n.Operand.Accept(c) }

func (c countingVisitor) sum(nodes ...Node) Result {
	total := 0
	for _, n := range nodes {
		total += n.Accept(c).Value.(int)
	}
	return Result{Value: total}
}

func TestVisitor_NewTraversal(t *testing.T) {
	result := parse(t, "1+2*(4+3)-5").Accept(countingVisitor{})
	require.NoError(t, result.Err)
	require.Equal(t, 5, result.Value)

	_, err := Walk(countingVisitor{}, parse(t, "1"))
	require.ErrorIs(t, err, ErrInternal, "Walk wants a string")
}

func TestIsEpsilon(t *testing.T) {
	require.True(t, EmptyA().IsEpsilon())
	require.True(t, EmptyB().IsEpsilon())
	require.False(t, (*A)(nil).IsEpsilon())
	require.False(t, (*B)(nil).IsEpsilon())
	require.False(t, NewA(NewToken(TOKEN_SUB, "-", 0), nil, nil).IsEpsilon())
	require.False(t, NewB(NewToken(TOKEN_MUL, "*", 0), nil, nil).IsEpsilon())

	require.ErrorIs(t, CheckA(nil), ErrInternal)
	require.ErrorIs(t, CheckB(nil), ErrInternal)
	require.ErrorIs(t, CheckTerm(nil), ErrInternal)
	require.ErrorIs(t, CheckNumberFactor(nil), ErrInternal)
	require.ErrorIs(t, CheckNegateFactor(nil), ErrInternal)
}

func TestLabels(t *testing.T) {
	expr := parse(t, "-1*(2)+3")
	require.Equal(t, LABEL_EXPRESSION, expr.Label())
	require.Equal(t, LABEL_TERM, expr.Term.Label())
	require.Equal(t, LABEL_A, expr.Tail.Label())
	require.Equal(t, LABEL_B, expr.Term.Tail.Label())
	require.Equal(t, LABEL_FACTOR, expr.Term.Factor.Label())
	require.Equal(t, LABEL_FACTOR, expr.Term.Tail.Factor.Label())
	require.Equal(t, "Expression", LABEL_EXPRESSION.String())
	require.Equal(t, "Unknown", Label(99).String())
}
