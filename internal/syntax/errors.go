package syntax

import (
	"errors"

	"github.com/littlekuo/calc-treewalk/internal/util"
)

var (
	ErrLex      = errors.New("lex error")
	ErrParse    = errors.New("parse error")
	ErrInternal = errors.New("internal error")
)

// LexError reports input that no token rule matches. Remainder is everything
// from Pos to the end of the source.
type LexError struct {
	Pos       int
	Remainder string
}

func (e *LexError) Error() string {
	return util.ErrorAt(e.Pos, e.Remainder, "found unparseable token").Error()
}

func (e *LexError) Is(target error) bool {
	return target == ErrLex
}

// ParseError reports a token sequence the grammar rejects. Found is nil when
// the stream ran out.
type ParseError struct {
	Pos     int
	Found   *Token
	Message string
}

func (e *ParseError) Error() string {
	if e.Found == nil {
		return util.ErrorMsg(e.Pos, e.Message+", found none").Error()
	}
	return util.ErrorAt(e.Pos, e.Found.Lexeme, e.Message).Error()
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// InternalError means a traversal met a tree shape the parser never builds.
type InternalError struct {
	Label   Label
	Message string
}

func (e *InternalError) Error() string {
	return "internal error: " + e.Label.String() + ": " + e.Message
}

func (e *InternalError) Is(target error) bool {
	return target == ErrInternal
}
