// Package isa describes the MERAK16 instruction set.
//
// MERAK16 has sixteen 16-bit registers split into two banks (groups A and
// B) of eight. Every instruction is a single 16-bit word. The package
// holds the register name table, the opcode table, and one encoder per
// instruction format. Encoders take already validated fields and are
// total over them; operand checking is done by the assembler.
package isa
