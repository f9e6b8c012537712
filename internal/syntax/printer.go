package syntax

import (
	"strings"
)

// OriginalPrinter re-renders the expression in source order. Groups become
// "[[...]]" and every additive operator is spelled " plus ", so the output is
// not a round trip of the input.
type OriginalPrinter struct{}

func (o OriginalPrinter) Print(node Node) (string, error) {
	return Walk(o, node)
}

func (o OriginalPrinter) VisitExpression(expr *Expression) Result {
	if err := CheckExpression(expr); err != nil {
		return Result{Err: err}
	}
	return concat(o, "", "", expr.Term, expr.Tail)
}

func (o OriginalPrinter) VisitTerm(term *Term) Result {
	if err := CheckTerm(term); err != nil {
		return Result{Err: err}
	}
	return concat(o, "", "", term.Factor, term.Tail)
}

func (o OriginalPrinter) VisitA(a *A) Result {
	if err := CheckA(a); err != nil {
		return Result{Err: err}
	}
	if a.IsEpsilon() {
		return Result{Value: ""}
	}
	return concat(o, " plus ", "", a.Term, a.Next)
}

func (o OriginalPrinter) VisitB(b *B) Result {
	if err := CheckB(b); err != nil {
		return Result{Err: err}
	}
	if b.IsEpsilon() {
		return Result{Value: ""}
	}
	return concat(o, b.Operator.Lexeme, "", b.Factor, b.Next)
}

func (o OriginalPrinter) VisitNumberFactor(factor *NumberFactor) Result {
	if err := CheckNumberFactor(factor); err != nil {
		return Result{Err: err}
	}
	return Result{Value: factor.Value.Lexeme}
}

func (o OriginalPrinter) VisitGroupFactor(factor *GroupFactor) Result {
	if err := CheckGroupFactor(factor); err != nil {
		return Result{Err: err}
	}
	return concat(o, "[[", "]]", factor.Expression)
}

func (o OriginalPrinter) VisitNegateFactor(factor *NegateFactor) Result {
	if err := CheckNegateFactor(factor); err != nil {
		return Result{Err: err}
	}
	return concat(o, "-", "", factor.Operand)
}

// RPNPrinter emits postfix form. Every number is followed by one space and
// operators are appended after both operands; parentheses disappear.
type RPNPrinter struct{}

func (r RPNPrinter) Print(node Node) (string, error) {
	return Walk(r, node)
}

func (r RPNPrinter) VisitExpression(expr *Expression) Result {
	if err := CheckExpression(expr); err != nil {
		return Result{Err: err}
	}
	return concat(r, "", "", expr.Term, expr.Tail)
}

func (r RPNPrinter) VisitTerm(term *Term) Result {
	if err := CheckTerm(term); err != nil {
		return Result{Err: err}
	}
	return concat(r, "", "", term.Factor, term.Tail)
}

// + T A => T A +
func (r RPNPrinter) VisitA(a *A) Result {
	if err := CheckA(a); err != nil {
		return Result{Err: err}
	}
	if a.IsEpsilon() {
		return Result{Value: ""}
	}
	return concat(r, "", a.Operator.Lexeme, a.Term, a.Next)
}

func (r RPNPrinter) VisitB(b *B) Result {
	if err := CheckB(b); err != nil {
		return Result{Err: err}
	}
	if b.IsEpsilon() {
		return Result{Value: ""}
	}
	return concat(r, "", b.Operator.Lexeme, b.Factor, b.Next)
}

func (r RPNPrinter) VisitNumberFactor(factor *NumberFactor) Result {
	if err := CheckNumberFactor(factor); err != nil {
		return Result{Err: err}
	}
	return Result{Value: factor.Value.Lexeme + " "}
}

func (r RPNPrinter) VisitGroupFactor(factor *GroupFactor) Result {
	if err := CheckGroupFactor(factor); err != nil {
		return Result{Err: err}
	}
	return concat(r, "", "", factor.Expression)
}

func (r RPNPrinter) VisitNegateFactor(factor *NegateFactor) Result {
	if err := CheckNegateFactor(factor); err != nil {
		return Result{Err: err}
	}
	return concat(r, "-", "", factor.Operand)
}

func concat(v Visitor, prefix, suffix string, nodes ...Node) Result {
	var builder strings.Builder

	builder.WriteString(prefix)
	for _, node := range nodes {
		s, err := Walk(v, node)
		if err != nil {
			return Result{Err: err}
		}
		builder.WriteString(s)
	}
	builder.WriteString(suffix)

	return Result{Value: builder.String()}
}
