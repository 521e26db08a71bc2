package isa

import (
	"fmt"
	"strings"
)

const (
	IMM_LI_BITS   = 9  // Width of the load-immediate value.
	IMM_JALR_BITS = 6  // Width of the indirect jump offset.
	IMM_BR_BITS   = 10 // Width of the branch/jump displacement.
	IMM_MEM_BITS  = 3  // Width of the load/store offset.
)

// Format is an instruction bit layout.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_ALU      = Format(0) // alu
	FORMAT_UNARY    = Format(1) // unary
	FORMAT_MOVE     = Format(2) // move
	FORMAT_LOAD     = Format(3) // load
	FORMAT_LOAD_IMM = Format(4) // loadimm
	FORMAT_STORE    = Format(5) // store
	FORMAT_SET      = Format(6) // set
	FORMAT_BRANCH   = Format(7) // branch
	FORMAT_JUMP_REG = Format(8) // jumpreg
	FORMAT_HALT     = Format(9) // halt
)

var classFormat = [...]Format{
	CLASS_ALU:      FORMAT_ALU,
	CLASS_UNARY:    FORMAT_UNARY,
	CLASS_MOVE:     FORMAT_MOVE,
	CLASS_LOAD:     FORMAT_LOAD,
	CLASS_LOAD_IMM: FORMAT_LOAD_IMM,
	CLASS_STORE:    FORMAT_STORE,
	CLASS_SET:      FORMAT_SET,
	CLASS_BRANCH:   FORMAT_BRANCH,
	CLASS_JUMP_REG: FORMAT_JUMP_REG,
	CLASS_HALT:     FORMAT_HALT,
}

// Field is one bit field of a format.
type Field struct {
	Name  string
	Width uint
}

// formatLayout lists the fields of every format, MSB first.
var formatLayout = [...][]Field{
	FORMAT_ALU:      {{"op", 6}, {"g", 1}, {"rs2", 3}, {"rs1", 3}, {"rd", 3}},
	FORMAT_UNARY:    {{"prefix", 6}, {"g", 1}, {"code", 3}, {"rs1", 3}, {"rd", 3}},
	FORMAT_MOVE:     {{"prefix", 6}, {"code", 4}, {"rs1", 3}, {"rd", 3}},
	FORMAT_LOAD:     {{"prefix", 6}, {"g", 1}, {"offset", 3}, {"rs1", 3}, {"rd", 3}},
	FORMAT_LOAD_IMM: {{"prefix", 3}, {"imm[8:6]", 3}, {"g", 1}, {"imm[5:0]", 6}, {"rd", 3}},
	FORMAT_STORE:    {{"prefix", 6}, {"g", 1}, {"rs2", 3}, {"rs1", 3}, {"offset", 3}},
	FORMAT_SET:      {{"prefix", 6}, {"g", 1}, {"rs2", 3}, {"rs1", 3}, {"code", 3}},
	FORMAT_BRANCH:   {{"prefix", 3}, {"code", 3}, {"offset", 10}},
	FORMAT_JUMP_REG: {{"prefix", 6}, {"g", 1}, {"offset[5:3]", 3}, {"rs1", 3}, {"offset[2:0]", 3}},
	FORMAT_HALT:     {{"halt", 16}},
}

// Fixed prefixes of the formats that carry one.
const (
	PREFIX_UNARY    = 0b001000
	PREFIX_MOVE     = 0b001001
	PREFIX_LOAD     = 0b001001
	PREFIX_LOAD_IMM = 0b010
	PREFIX_STORE    = 0b001010
	PREFIX_SET      = 0b100000
	PREFIX_BRANCH   = 0b100
	PREFIX_JUMP_REG = 0b100101
	WORD_HALT       = 0xffff
)

// Layout returns the fields of the format, MSB first.
func (fm Format) Layout() []Field {
	return formatLayout[fm]
}

// Encoded is an assembled instruction.
type Encoded struct {
	Word   uint16 // Machine word.
	Binary string // Word as '_' separated fields, MSB first.
}

// String returns the listing form of the instruction.
func (enc Encoded) String() string {
	return fmt.Sprintf("%04x  %v", enc.Word, enc.Binary)
}

// Pack places one value per layout field into a word. Values are
// truncated to their field width.
func (fm Format) Pack(values ...uint16) (enc Encoded) {
	layout := fm.Layout()
	if len(values) != len(layout) {
		panic(fmt.Sprintf("format %v: %d values for %d fields", fm, len(values), len(layout)))
	}

	parts := make([]string, len(layout))
	shift := uint(16)
	for n, field := range layout {
		shift -= field.Width
		mask := uint16((uint32(1) << field.Width) - 1)
		value := values[n] & mask
		enc.Word |= value << shift
		parts[n] = fmt.Sprintf("%0*b", int(field.Width), value)
	}
	enc.Binary = strings.Join(parts, "_")

	return
}

// truncate returns value modulo 2^bits.
func truncate(value int, bits uint) uint16 {
	return uint16(value) & uint16((uint32(1)<<bits)-1)
}

// EncodeAlu encodes a two-source ALU operation.
func EncodeAlu(op uint16, g Group, rd, rs1, rs2 Register) Encoded {
	return FORMAT_ALU.Pack(op, uint16(g), uint16(rs2), uint16(rs1), uint16(rd))
}

// EncodeUnary encodes NOT (code 000) or COM (code 001).
func EncodeUnary(code uint16, g Group, rd, rs1 Register) Encoded {
	return FORMAT_UNARY.Pack(PREFIX_UNARY, uint16(g), code, uint16(rs1), uint16(rd))
}

// EncodeMove encodes a group crossing move. The code selects the
// direction and implies both groups.
func EncodeMove(code uint16, rd, rs1 Register) Encoded {
	return FORMAT_MOVE.Pack(PREFIX_MOVE, code, uint16(rs1), uint16(rd))
}

// EncodeLoad encodes rd = mem[rs1 + offset].
func EncodeLoad(g Group, rd Register, offset int, rs1 Register) Encoded {
	return FORMAT_LOAD.Pack(PREFIX_LOAD, uint16(g), truncate(offset, IMM_MEM_BITS), uint16(rs1), uint16(rd))
}

// EncodeLoadImmediate encodes rd = imm, with imm split around the group bit.
func EncodeLoadImmediate(g Group, rd Register, imm int) Encoded {
	imm9 := truncate(imm, IMM_LI_BITS)
	return FORMAT_LOAD_IMM.Pack(PREFIX_LOAD_IMM, imm9>>6, uint16(g), imm9&0x3f, uint16(rd))
}

// EncodeStore encodes mem[rs2 + offset] = rs1.
func EncodeStore(g Group, rs1 Register, offset int, rs2 Register) Encoded {
	return FORMAT_STORE.Pack(PREFIX_STORE, uint16(g), uint16(rs2), uint16(rs1), truncate(offset, IMM_MEM_BITS))
}

// EncodeSet encodes SLT (code 000) or SOE (code 001).
func EncodeSet(code uint16, g Group, rs1, rs2 Register) Encoded {
	return FORMAT_SET.Pack(PREFIX_SET, uint16(g), uint16(rs2), uint16(rs1), code)
}

// EncodeBranch encodes BOZ, BONZ or JAL with a relative displacement.
func EncodeBranch(code uint16, offset int) Encoded {
	return FORMAT_BRANCH.Pack(PREFIX_BRANCH, code, truncate(offset, IMM_BR_BITS))
}

// EncodeJumpRegister encodes JALR, with the offset split around rs1.
func EncodeJumpRegister(g Group, rs1 Register, offset int) Encoded {
	off6 := truncate(offset, IMM_JALR_BITS)
	return FORMAT_JUMP_REG.Pack(PREFIX_JUMP_REG, uint16(g), off6>>3, uint16(rs1), off6&0x7)
}

// EncodeHalt encodes HALT.
func EncodeHalt() Encoded {
	return FORMAT_HALT.Pack(WORD_HALT)
}
