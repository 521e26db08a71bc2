package isa

import (
	"fmt"
)

// Group is a register bank selector.
type Group uint8

//go:generate go tool stringer -linecomment -type=Group
const (
	GROUP_A = Group(0) // A
	GROUP_B = Group(1) // B
)

// Register is a register index within a group.
type Register uint8

const (
	REG_R0 = Register(0)
	REG_R1 = Register(1)
	REG_R2 = Register(2)
	REG_R3 = Register(3)
	REG_R4 = Register(4)
	REG_R5 = Register(5)
	REG_R6 = Register(6)
	REG_R7 = Register(7)
)

// RegisterRef is a fully qualified register.
type RegisterRef struct {
	Group Group
	Index Register
}

// String returns the canonical register name.
func (ref RegisterRef) String() string {
	return fmt.Sprintf("a%d", uint(ref.Group)*8+uint(ref.Index))
}

// registerMap maps the canonical register names.
var registerMap = map[string]RegisterRef{
	"a0":  {GROUP_A, REG_R0},
	"a1":  {GROUP_A, REG_R1},
	"a2":  {GROUP_A, REG_R2},
	"a3":  {GROUP_A, REG_R3},
	"a4":  {GROUP_A, REG_R4},
	"a5":  {GROUP_A, REG_R5},
	"a6":  {GROUP_A, REG_R6},
	"a7":  {GROUP_A, REG_R7},
	"a8":  {GROUP_B, REG_R0},
	"a9":  {GROUP_B, REG_R1},
	"a10": {GROUP_B, REG_R2},
	"a11": {GROUP_B, REG_R3},
	"a12": {GROUP_B, REG_R4},
	"a13": {GROUP_B, REG_R5},
	"a14": {GROUP_B, REG_R6},
	"a15": {GROUP_B, REG_R7},
}

// Resolve returns the register named by name.
func Resolve(name string) (ref RegisterRef, err error) {
	ref, ok := registerMap[name]
	if !ok {
		err = ErrUnknownRegister(name)
		return
	}

	return
}
