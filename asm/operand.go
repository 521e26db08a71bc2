package asm

import (
	"strconv"
	"strings"

	"github.com/harlos0517/merak16-asm/isa"
)

// splitLine separates the mnemonic from the operand text. The operand text
// is returned trimmed, but otherwise intact.
func splitLine(line string) (mnemonic, operands string) {
	line = strings.TrimSpace(line)
	n := strings.IndexAny(line, " \t")
	if n < 0 {
		return line, ""
	}

	return line[:n], strings.TrimSpace(line[n:])
}

// splitOperands splits operand text into exactly count comma separated
// tokens.
func splitOperands(op isa.Opcode, text string, count int) (tokens []string, err error) {
	tokens = strings.Split(text, ",")
	if len(tokens) != count {
		err = ErrMalformedOperand{Opcode: op, Operand: text}
		return
	}

	for n, token := range tokens {
		tokens[n] = strings.TrimSpace(token)
	}

	return
}

// registers resolves a register list.
func registers(op isa.Opcode, text string, count int) (refs []isa.RegisterRef, err error) {
	tokens, err := splitOperands(op, text, count)
	if err != nil {
		return
	}

	refs = make([]isa.RegisterRef, len(tokens))
	for n, token := range tokens {
		refs[n], err = isa.Resolve(token)
		if err != nil {
			return
		}
	}

	return
}

// immediate parses an integer literal. Text that is not a literal is 0.
func immediate(text string) (value int) {
	v64, err := strconv.ParseInt(strings.TrimSpace(text), 0, 64)
	if err != nil {
		return 0
	}

	return int(v64)
}

// displacement parses 'offset(register)'. The offset may be omitted.
func displacement(op isa.Opcode, text string) (offset int, ref isa.RegisterRef, err error) {
	open := strings.IndexByte(text, '(')
	if open < 0 || !strings.HasSuffix(text, ")") || strings.Count(text, "(") != 1 {
		err = ErrMalformedOperand{Opcode: op, Operand: text}
		return
	}

	ref, err = isa.Resolve(strings.TrimSpace(text[open+1 : len(text)-1]))
	if err != nil {
		return
	}

	offset = immediate(text[:open])

	return
}

// sameGroup checks that all registers share the group of the first.
func sameGroup(op isa.Opcode, refs ...isa.RegisterRef) (err error) {
	for _, ref := range refs[1:] {
		if ref.Group != refs[0].Group {
			err = ErrGroupMismatch{Opcode: op, Operand: ref, Want: refs[0].Group}
			return
		}
	}

	return
}

// inGroup checks that a register is in a specific group.
func inGroup(op isa.Opcode, ref isa.RegisterRef, group isa.Group) (err error) {
	if ref.Group != group {
		err = ErrGroupMismatch{Opcode: op, Operand: ref, Want: group}
	}

	return
}
