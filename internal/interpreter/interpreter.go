package interpreter

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/littlekuo/calc-treewalk/internal/syntax"
)

var ErrDivisionByZero = errors.New("division by zero")

// pending is one "op operand" step of an A or B tail, waiting to be folded
// into the value on its left.
type pending struct {
	operator syntax.Token
	operand  float64
}

// Interpreter evaluates a tree as float64. The grammar's tails are right
// recursive, so each tail is flattened into pending steps and folded left to
// right by the node that owns it: 8-2-1 is (8-2)-1.
type Interpreter struct{}

func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

func (a *Interpreter) Evaluate(node syntax.Node) (float64, error) {
	if node == nil {
		return 0, &syntax.InternalError{Message: "nil node"}
	}
	result := node.Accept(a)
	if result.Err != nil {
		return 0, result.Err
	}
	value, ok := result.Value.(float64)
	if !ok {
		return 0, &syntax.InternalError{Label: node.Label(), Message: fmt.Sprintf("evaluated to %T", result.Value)}
	}
	return value, nil
}

func (a *Interpreter) VisitExpression(expr *syntax.Expression) syntax.Result {
	if err := syntax.CheckExpression(expr); err != nil {
		return syntax.Result{Err: err}
	}
	return a.fold(expr.Term, expr.Tail)
}

func (a *Interpreter) VisitTerm(term *syntax.Term) syntax.Result {
	if err := syntax.CheckTerm(term); err != nil {
		return syntax.Result{Err: err}
	}
	return a.fold(term.Factor, term.Tail)
}

func (a *Interpreter) VisitA(tail *syntax.A) syntax.Result {
	if err := syntax.CheckA(tail); err != nil {
		return syntax.Result{Err: err}
	}
	if tail.IsEpsilon() {
		return syntax.Result{Value: []pending(nil)}
	}
	return a.step(tail.Operator, tail.Term, tail.Next)
}

func (a *Interpreter) VisitB(tail *syntax.B) syntax.Result {
	if err := syntax.CheckB(tail); err != nil {
		return syntax.Result{Err: err}
	}
	if tail.IsEpsilon() {
		return syntax.Result{Value: []pending(nil)}
	}
	return a.step(tail.Operator, tail.Factor, tail.Next)
}

func (a *Interpreter) VisitNumberFactor(factor *syntax.NumberFactor) syntax.Result {
	if err := syntax.CheckNumberFactor(factor); err != nil {
		return syntax.Result{Err: err}
	}
	value, err := strconv.ParseFloat(factor.Value.Lexeme, 64)
	if err != nil {
		return syntax.Result{Err: fmt.Errorf("number %q: %w", factor.Value.Lexeme, err)}
	}
	return syntax.Result{Value: value}
}

func (a *Interpreter) VisitGroupFactor(factor *syntax.GroupFactor) syntax.Result {
	if err := syntax.CheckGroupFactor(factor); err != nil {
		return syntax.Result{Err: err}
	}
	return factor.Expression.Accept(a)
}

func (a *Interpreter) VisitNegateFactor(factor *syntax.NegateFactor) syntax.Result {
	if err := syntax.CheckNegateFactor(factor); err != nil {
		return syntax.Result{Err: err}
	}
	value, err := a.Evaluate(factor.Operand)
	if err != nil {
		return syntax.Result{Err: err}
	}
	return syntax.Result{Value: -value}
}

func (a *Interpreter) step(operator syntax.Token, operand syntax.Node, next syntax.Node) syntax.Result {
	value, err := a.Evaluate(operand)
	if err != nil {
		return syntax.Result{Err: err}
	}
	rest, err := a.pendingSteps(next)
	if err != nil {
		return syntax.Result{Err: err}
	}
	return syntax.Result{Value: append([]pending{{operator: operator, operand: value}}, rest...)}
}

func (a *Interpreter) fold(head syntax.Node, tail syntax.Node) syntax.Result {
	acc, err := a.Evaluate(head)
	if err != nil {
		return syntax.Result{Err: err}
	}
	steps, err := a.pendingSteps(tail)
	if err != nil {
		return syntax.Result{Err: err}
	}
	for _, s := range steps {
		acc, err = apply(s.operator, acc, s.operand)
		if err != nil {
			return syntax.Result{Err: err}
		}
	}
	return syntax.Result{Value: acc}
}

func (a *Interpreter) pendingSteps(tail syntax.Node) ([]pending, error) {
	result := tail.Accept(a)
	if result.Err != nil {
		return nil, result.Err
	}
	steps, ok := result.Value.([]pending)
	if !ok {
		return nil, &syntax.InternalError{Label: tail.Label(), Message: fmt.Sprintf("tail evaluated to %T", result.Value)}
	}
	return steps, nil
}

func apply(operator syntax.Token, left, right float64) (float64, error) {
	switch operator.TokenType {
	case syntax.TOKEN_ADD:
		return left + right, nil
	case syntax.TOKEN_SUB:
		return left - right, nil
	case syntax.TOKEN_MUL:
		return left * right, nil
	case syntax.TOKEN_DIV:
		if right == 0 {
			return 0, fmt.Errorf("at col %d: %w", operator.Pos+1, ErrDivisionByZero)
		}
		return left / right, nil
	}
	// unreachable
	return 0, fmt.Errorf("unknown operator: %s", operator.Lexeme)
}
