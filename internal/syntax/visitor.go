package syntax

import "fmt"

// Visitor has one method per node variant. A new traversal is a new Visitor;
// the tree types never change for it.
type Visitor interface {
	VisitExpression(expr *Expression) Result
	VisitTerm(term *Term) Result
	VisitA(a *A) Result
	VisitB(b *B) Result
	VisitNumberFactor(factor *NumberFactor) Result
	VisitGroupFactor(factor *GroupFactor) Result
	VisitNegateFactor(factor *NegateFactor) Result
}

// Walk runs v over node and expects a string result.
func Walk(v Visitor, node Node) (string, error) {
	if node == nil {
		return "", &InternalError{Message: "nil node"}
	}
	result := node.Accept(v)
	if result.Err != nil {
		return "", result.Err
	}
	s, ok := result.Value.(string)
	if !ok {
		return "", &InternalError{Label: node.Label(), Message: fmt.Sprintf("traversal produced %T, want string", result.Value)}
	}
	return s, nil
}

func nilNode(label Label) error {
	return &InternalError{Label: label, Message: "nil node"}
}

// CheckExpression reports a malformed Expression node.
func CheckExpression(expr *Expression) error {
	if expr == nil {
		return nilNode(LABEL_EXPRESSION)
	}
	if expr.Term == nil || expr.Tail == nil {
		return &InternalError{Label: LABEL_EXPRESSION, Message: "missing child"}
	}
	return nil
}

func CheckTerm(term *Term) error {
	if term == nil {
		return nilNode(LABEL_TERM)
	}
	if term.Factor == nil || term.Tail == nil {
		return &InternalError{Label: LABEL_TERM, Message: "missing child"}
	}
	return nil
}

func CheckA(a *A) error {
	if a == nil {
		return nilNode(LABEL_A)
	}
	if a.IsEpsilon() {
		return nil
	}
	if a.Term == nil || a.Next == nil {
		return &InternalError{Label: LABEL_A, Message: "missing child"}
	}
	if a.Operator.TokenType != TOKEN_ADD && a.Operator.TokenType != TOKEN_SUB {
		return &InternalError{Label: LABEL_A, Message: fmt.Sprintf("unexpected operator %q", a.Operator.Lexeme)}
	}
	return nil
}

func CheckB(b *B) error {
	if b == nil {
		return nilNode(LABEL_B)
	}
	if b.IsEpsilon() {
		return nil
	}
	if b.Factor == nil || b.Next == nil {
		return &InternalError{Label: LABEL_B, Message: "missing child"}
	}
	if b.Operator.TokenType != TOKEN_MUL && b.Operator.TokenType != TOKEN_DIV {
		return &InternalError{Label: LABEL_B, Message: fmt.Sprintf("unexpected operator %q", b.Operator.Lexeme)}
	}
	return nil
}

func CheckNumberFactor(factor *NumberFactor) error {
	if factor == nil {
		return nilNode(LABEL_FACTOR)
	}
	if factor.Value.TokenType != TOKEN_NUMBER {
		return &InternalError{Label: LABEL_FACTOR, Message: fmt.Sprintf("number factor holds %s", factor.Value.TokenType)}
	}
	return nil
}

func CheckGroupFactor(factor *GroupFactor) error {
	if factor == nil {
		return nilNode(LABEL_FACTOR)
	}
	if factor.Expression == nil {
		return &InternalError{Label: LABEL_FACTOR, Message: "empty group"}
	}
	return nil
}

func CheckNegateFactor(factor *NegateFactor) error {
	if factor == nil {
		return nilNode(LABEL_FACTOR)
	}
	if factor.Operand == nil {
		return &InternalError{Label: LABEL_FACTOR, Message: "negation without operand"}
	}
	return nil
}
