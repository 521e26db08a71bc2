package isa

// Class is an instruction class. Each class is assembled by one operand
// parser and one encoder.
type Class int

//go:generate go tool stringer -linecomment -type=Class
const (
	CLASS_ALU      = Class(0) // alu
	CLASS_UNARY    = Class(1) // unary
	CLASS_MOVE     = Class(2) // move
	CLASS_LOAD     = Class(3) // load
	CLASS_LOAD_IMM = Class(4) // loadimm
	CLASS_STORE    = Class(5) // store
	CLASS_SET      = Class(6) // set
	CLASS_BRANCH   = Class(7) // branch
	CLASS_JUMP_REG = Class(8) // jumpreg
	CLASS_HALT     = Class(9) // halt
)

// Opcode is an instruction mnemonic.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ADD  = Opcode(0)  // add
	OP_SUB  = Opcode(1)  // sub
	OP_AND  = Opcode(2)  // and
	OP_OR   = Opcode(3)  // or
	OP_XOR  = Opcode(4)  // xor
	OP_SLL  = Opcode(5)  // sll
	OP_SRL  = Opcode(6)  // srl
	OP_SRA  = Opcode(7)  // sra
	OP_NOT  = Opcode(8)  // not
	OP_COM  = Opcode(9)  // com
	OP_MVHL = Opcode(10) // mvhl
	OP_MVLH = Opcode(11) // mvlh
	OP_MVH  = Opcode(12) // mvh
	OP_LH   = Opcode(13) // lh
	OP_LI   = Opcode(14) // li
	OP_SH   = Opcode(15) // sh
	OP_SLT  = Opcode(16) // slt
	OP_SOE  = Opcode(17) // soe
	OP_BOZ  = Opcode(18) // boz
	OP_BONZ = Opcode(19) // bonz
	OP_JAL  = Opcode(20) // jal
	OP_JALR = Opcode(21) // jalr
	OP_HALT = Opcode(22) // halt
)

// opcodeInfo is the class and sub-code of an opcode.
type opcodeInfo struct {
	Class Class
	Code  uint16
}

// opcodeTable holds the class of every opcode, and the code it places in
// its format's selector field (ALU op, unary code, move code, set code or
// branch code). Opcodes of formats without a selector carry 0.
var opcodeTable = [...]opcodeInfo{
	OP_ADD:  {CLASS_ALU, 0b000000},
	OP_SUB:  {CLASS_ALU, 0b000001},
	OP_AND:  {CLASS_ALU, 0b000010},
	OP_OR:   {CLASS_ALU, 0b000011},
	OP_XOR:  {CLASS_ALU, 0b000100},
	OP_SLL:  {CLASS_ALU, 0b000101},
	OP_SRL:  {CLASS_ALU, 0b000110},
	OP_SRA:  {CLASS_ALU, 0b000111},
	OP_NOT:  {CLASS_UNARY, 0b000},
	OP_COM:  {CLASS_UNARY, 0b001},
	OP_MVHL: {CLASS_MOVE, 0b0010},
	OP_MVLH: {CLASS_MOVE, 0b1010},
	OP_MVH:  {CLASS_MOVE, 0b1011},
	OP_LH:   {CLASS_LOAD, 0},
	OP_LI:   {CLASS_LOAD_IMM, 0},
	OP_SH:   {CLASS_STORE, 0},
	OP_SLT:  {CLASS_SET, 0b000},
	OP_SOE:  {CLASS_SET, 0b001},
	OP_BOZ:  {CLASS_BRANCH, 0b001},
	OP_BONZ: {CLASS_BRANCH, 0b010},
	OP_JAL:  {CLASS_BRANCH, 0b100},
	OP_JALR: {CLASS_JUMP_REG, 0},
	OP_HALT: {CLASS_HALT, 0},
}

// mnemonicMap maps mnemonics to opcodes.
var mnemonicMap = func() map[string]Opcode {
	m := make(map[string]Opcode, len(opcodeTable))
	for op := range Opcode(len(opcodeTable)) {
		m[op.String()] = op
	}
	return m
}()

// ParseOpcode returns the opcode for a mnemonic.
func ParseOpcode(mnemonic string) (op Opcode, err error) {
	op, ok := mnemonicMap[mnemonic]
	if !ok {
		err = ErrUnsupportedOpcode(mnemonic)
		return
	}

	return
}

// Class returns the instruction class of the opcode.
func (op Opcode) Class() Class {
	return opcodeTable[op].Class
}

// Code returns the selector code of the opcode within its format.
func (op Opcode) Code() uint16 {
	return opcodeTable[op].Code
}

// Format returns the instruction format of the opcode.
func (op Opcode) Format() Format {
	return classFormat[op.Class()]
}
