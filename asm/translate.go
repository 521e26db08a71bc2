package asm

import (
	"github.com/harlos0517/merak16-asm/isa"
)

// moveGroups are the required (rd, rs1) groups of the group moves.
var moveGroups = map[isa.Opcode][2]isa.Group{
	isa.OP_MVHL: {isa.GROUP_A, isa.GROUP_B},
	isa.OP_MVLH: {isa.GROUP_B, isa.GROUP_A},
	isa.OP_MVH:  {isa.GROUP_B, isa.GROUP_B},
}

// Translate assembles a single line of source into an instruction.
//
// The line is a mnemonic, followed by operand text whose shape depends on
// the instruction class. Integer literals that fail to parse are taken as
// 0; register, group and operand shape problems are errors.
//
// Literals follow Go integer syntax, so 0x1f and 0b101 are accepted and a
// leading 0 is octal. A literal is never parsed by prefix: 12abc is 0,
// not 12.
func Translate(line string) (enc isa.Encoded, err error) {
	mnemonic, text := splitLine(line)

	op, err := isa.ParseOpcode(mnemonic)
	if err != nil {
		return
	}

	switch op.Class() {
	case isa.CLASS_ALU:
		// op rd, rs1, rs2
		var refs []isa.RegisterRef
		refs, err = registers(op, text, 3)
		if err != nil {
			return
		}
		err = sameGroup(op, refs...)
		if err != nil {
			return
		}
		rd, rs1, rs2 := refs[0], refs[1], refs[2]
		enc = isa.EncodeAlu(op.Code(), rd.Group, rd.Index, rs1.Index, rs2.Index)
	case isa.CLASS_UNARY:
		// op rd, rs1
		var refs []isa.RegisterRef
		refs, err = registers(op, text, 2)
		if err != nil {
			return
		}
		err = sameGroup(op, refs...)
		if err != nil {
			return
		}
		rd, rs1 := refs[0], refs[1]
		enc = isa.EncodeUnary(op.Code(), rd.Group, rd.Index, rs1.Index)
	case isa.CLASS_MOVE:
		// op rd, rs1
		var refs []isa.RegisterRef
		refs, err = registers(op, text, 2)
		if err != nil {
			return
		}
		rd, rs1 := refs[0], refs[1]
		groups := moveGroups[op]
		err = inGroup(op, rd, groups[0])
		if err != nil {
			return
		}
		err = inGroup(op, rs1, groups[1])
		if err != nil {
			return
		}
		enc = isa.EncodeMove(op.Code(), rd.Index, rs1.Index)
	case isa.CLASS_LOAD:
		// lh rd, offset(rs1)
		var tokens []string
		tokens, err = splitOperands(op, text, 2)
		if err != nil {
			return
		}
		var rd, rs1 isa.RegisterRef
		rd, err = isa.Resolve(tokens[0])
		if err != nil {
			return
		}
		var offset int
		offset, rs1, err = displacement(op, tokens[1])
		if err != nil {
			return
		}
		err = sameGroup(op, rd, rs1)
		if err != nil {
			return
		}
		enc = isa.EncodeLoad(rd.Group, rd.Index, offset, rs1.Index)
	case isa.CLASS_LOAD_IMM:
		// li rd, imm
		var tokens []string
		tokens, err = splitOperands(op, text, 2)
		if err != nil {
			return
		}
		var rd isa.RegisterRef
		rd, err = isa.Resolve(tokens[0])
		if err != nil {
			return
		}
		enc = isa.EncodeLoadImmediate(rd.Group, rd.Index, immediate(tokens[1]))
	case isa.CLASS_STORE:
		// sh rs1, offset(rs2)
		var tokens []string
		tokens, err = splitOperands(op, text, 2)
		if err != nil {
			return
		}
		var rs1, rs2 isa.RegisterRef
		rs1, err = isa.Resolve(tokens[0])
		if err != nil {
			return
		}
		var offset int
		offset, rs2, err = displacement(op, tokens[1])
		if err != nil {
			return
		}
		err = sameGroup(op, rs1, rs2)
		if err != nil {
			return
		}
		enc = isa.EncodeStore(rs1.Group, rs1.Index, offset, rs2.Index)
	case isa.CLASS_SET:
		// op rs1, rs2
		var refs []isa.RegisterRef
		refs, err = registers(op, text, 2)
		if err != nil {
			return
		}
		err = sameGroup(op, refs...)
		if err != nil {
			return
		}
		rs1, rs2 := refs[0], refs[1]
		enc = isa.EncodeSet(op.Code(), rs1.Group, rs1.Index, rs2.Index)
	case isa.CLASS_BRANCH:
		// op offset
		var tokens []string
		tokens, err = splitOperands(op, text, 1)
		if err != nil {
			return
		}
		enc = isa.EncodeBranch(op.Code(), immediate(tokens[0]))
	case isa.CLASS_JUMP_REG:
		// jalr rs1, offset
		var tokens []string
		tokens, err = splitOperands(op, text, 2)
		if err != nil {
			return
		}
		var rs1 isa.RegisterRef
		rs1, err = isa.Resolve(tokens[0])
		if err != nil {
			return
		}
		enc = isa.EncodeJumpRegister(rs1.Group, rs1.Index, immediate(tokens[1]))
	case isa.CLASS_HALT:
		if len(text) != 0 {
			err = ErrMalformedOperand{Opcode: op, Operand: text}
			return
		}
		enc = isa.EncodeHalt()
	default:
		err = isa.ErrUnsupportedOpcode(mnemonic)
		return
	}

	return
}
