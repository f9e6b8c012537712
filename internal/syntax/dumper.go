package syntax

import "fmt"

// DumpNode is a plain, serializable copy of one tree node.
type DumpNode struct {
	Label    string      `yaml:"label" json:"label"`
	Text     string      `yaml:"text,omitempty" json:"text,omitempty"`
	Epsilon  bool        `yaml:"epsilon,omitempty" json:"epsilon,omitempty"`
	Children []*DumpNode `yaml:"children,omitempty" json:"children,omitempty"`
}

// TreeDumper converts a tree into DumpNodes, keeping the literal of each
// production in Text.
type TreeDumper struct{}

func (d TreeDumper) Dump(node Node) (*DumpNode, error) {
	if node == nil {
		return nil, &InternalError{Message: "nil node"}
	}
	result := node.Accept(d)
	if result.Err != nil {
		return nil, result.Err
	}
	dn, ok := result.Value.(*DumpNode)
	if !ok {
		return nil, &InternalError{Label: node.Label(), Message: fmt.Sprintf("dump produced %T", result.Value)}
	}
	return dn, nil
}

func (d TreeDumper) VisitExpression(expr *Expression) Result {
	if err := CheckExpression(expr); err != nil {
		return Result{Err: err}
	}
	return d.node(LABEL_EXPRESSION, "", expr.Term, expr.Tail)
}

func (d TreeDumper) VisitTerm(term *Term) Result {
	if err := CheckTerm(term); err != nil {
		return Result{Err: err}
	}
	return d.node(LABEL_TERM, "", term.Factor, term.Tail)
}

func (d TreeDumper) VisitA(a *A) Result {
	if err := CheckA(a); err != nil {
		return Result{Err: err}
	}
	if a.IsEpsilon() {
		return Result{Value: &DumpNode{Label: LABEL_A.String(), Epsilon: true}}
	}
	return d.node(LABEL_A, a.Operator.Lexeme, a.Term, a.Next)
}

func (d TreeDumper) VisitB(b *B) Result {
	if err := CheckB(b); err != nil {
		return Result{Err: err}
	}
	if b.IsEpsilon() {
		return Result{Value: &DumpNode{Label: LABEL_B.String(), Epsilon: true}}
	}
	return d.node(LABEL_B, b.Operator.Lexeme, b.Factor, b.Next)
}

func (d TreeDumper) VisitNumberFactor(factor *NumberFactor) Result {
	if err := CheckNumberFactor(factor); err != nil {
		return Result{Err: err}
	}
	return d.node(LABEL_FACTOR, factor.Value.Lexeme)
}

func (d TreeDumper) VisitGroupFactor(factor *GroupFactor) Result {
	if err := CheckGroupFactor(factor); err != nil {
		return Result{Err: err}
	}
	return d.node(LABEL_FACTOR, "()", factor.Expression)
}

func (d TreeDumper) VisitNegateFactor(factor *NegateFactor) Result {
	if err := CheckNegateFactor(factor); err != nil {
		return Result{Err: err}
	}
	return d.node(LABEL_FACTOR, "-", factor.Operand)
}

func (d TreeDumper) node(label Label, text string, children ...Node) Result {
	dn := &DumpNode{Label: label.String(), Text: text}
	for _, child := range children {
		c, err := d.Dump(child)
		if err != nil {
			return Result{Err: err}
		}
		dn.Children = append(dn.Children, c)
	}
	return Result{Value: dn}
}
