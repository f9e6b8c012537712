package syntax

/*
The tree mirrors the grammar one node type per production:

Expression → Term A
Term       → Factor B
A          → "+" Term A | "-" Term A | ε
B          → "*" Factor B | "/" Factor B | ε
Factor     → NUMBER | "(" Expression ")" | "-" Factor

A and B are the right-recursive tails that replace left recursion; an
epsilon A or B has no operator and no operands. Nodes are never mutated
after the parser builds them.
*/

type Label int

const (
	LABEL_EXPRESSION Label = iota + 1
	LABEL_TERM
	LABEL_A
	LABEL_B
	LABEL_FACTOR
)

var labelStr = map[Label]string{
	LABEL_EXPRESSION: "Expression",
	LABEL_TERM:       "Term",
	LABEL_A:          "A",
	LABEL_B:          "B",
	LABEL_FACTOR:     "Factor",
}

func (l Label) String() string {
	if s, ok := labelStr[l]; ok {
		return s
	}
	return "Unknown"
}

type Result struct {
	Value any
	Err   error
}

type Node interface {
	Label() Label
	Accept(v Visitor) Result
}

// Factor is sealed to the three alternatives of the Factor production.
type Factor interface {
	Node
	factorNode()
}

type Expression struct {
	Term *Term
	Tail *A
}

func NewExpression(term *Term, tail *A) *Expression {
	return &Expression{Term: term, Tail: tail}
}

func (e *Expression) Label() Label { return LABEL_EXPRESSION }

func (e *Expression) Accept(v Visitor) Result { return v.VisitExpression(e) }

type Term struct {
	Factor Factor
	Tail   *B
}

func NewTerm(factor Factor, tail *B) *Term {
	return &Term{Factor: factor, Tail: tail}
}

func (t *Term) Label() Label { return LABEL_TERM }

func (t *Term) Accept(v Visitor) Result { return v.VisitTerm(t) }

// A is the additive tail. Operator is ADD or SUB unless the node is epsilon.
type A struct {
	Operator Token
	Term     *Term
	Next     *A
}

func NewA(operator Token, term *Term, next *A) *A {
	return &A{Operator: operator, Term: term, Next: next}
}

func EmptyA() *A {
	return &A{}
}

// IsEpsilon reports the empty production: no operator and no operands.
func (a *A) IsEpsilon() bool {
	return a != nil && a.Operator.TokenType == 0 && a.Term == nil && a.Next == nil
}

func (a *A) Label() Label { return LABEL_A }

func (a *A) Accept(v Visitor) Result { return v.VisitA(a) }

// B is the multiplicative tail. Operator is MUL or DIV unless the node is
// epsilon.
type B struct {
	Operator Token
	Factor   Factor
	Next     *B
}

func NewB(operator Token, factor Factor, next *B) *B {
	return &B{Operator: operator, Factor: factor, Next: next}
}

func EmptyB() *B {
	return &B{}
}

func (b *B) IsEpsilon() bool {
	return b != nil && b.Operator.TokenType == 0 && b.Factor == nil && b.Next == nil
}

func (b *B) Label() Label { return LABEL_B }

func (b *B) Accept(v Visitor) Result { return v.VisitB(b) }

type NumberFactor struct {
	Value Token
}

func NewNumberFactor(value Token) *NumberFactor {
	return &NumberFactor{Value: value}
}

func (n *NumberFactor) Label() Label { return LABEL_FACTOR }

func (n *NumberFactor) Accept(v Visitor) Result { return v.VisitNumberFactor(n) }

func (n *NumberFactor) factorNode() {}

// GroupFactor is "(" Expression ")".
type GroupFactor struct {
	Expression *Expression
}

func NewGroupFactor(expr *Expression) *GroupFactor {
	return &GroupFactor{Expression: expr}
}

func (g *GroupFactor) Label() Label { return LABEL_FACTOR }

func (g *GroupFactor) Accept(v Visitor) Result { return v.VisitGroupFactor(g) }

func (g *GroupFactor) factorNode() {}

// NegateFactor is "-" Factor.
type NegateFactor struct {
	Operand Factor
}

func NewNegateFactor(operand Factor) *NegateFactor {
	return &NegateFactor{Operand: operand}
}

func (n *NegateFactor) Label() Label { return LABEL_FACTOR }

func (n *NegateFactor) Accept(v Visitor) Result { return v.VisitNegateFactor(n) }

func (n *NegateFactor) factorNode() {}
