package asm

import (
	"github.com/harlos0517/merak16-asm/isa"
	"github.com/harlos0517/merak16-asm/translate"
)

var f = translate.From

// ErrGroupMismatch is returned when an operand is in the wrong register group.
type ErrGroupMismatch struct {
	Opcode  isa.Opcode
	Operand isa.RegisterRef
	Want    isa.Group
}

func (err ErrGroupMismatch) Error() string {
	return f("%v: register %v is in group %v, expected group %v",
		err.Opcode, err.Operand, err.Operand.Group, err.Want)
}

func (err ErrGroupMismatch) Is(target error) (ok bool) {
	_, ok = target.(ErrGroupMismatch)
	return
}

// ErrMalformedOperand is returned for operand text that does not have the
// shape required by the opcode.
type ErrMalformedOperand struct {
	Opcode  isa.Opcode
	Operand string
}

func (err ErrMalformedOperand) Error() string {
	return f("%v: malformed operand '%v'", err.Opcode, err.Operand)
}

func (err ErrMalformedOperand) Is(target error) (ok bool) {
	_, ok = target.(ErrMalformedOperand)
	return
}

// ErrSyntax indicates the source line of an assembly error.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrParseExpression is returned for a $(...) that is not an integer expression.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
