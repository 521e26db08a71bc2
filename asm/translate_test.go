package asm

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harlos0517/merak16-asm/isa"
)

func TestTranslate(t *testing.T) {
	table := []struct {
		line   string
		word   uint16
		binary string
	}{
		{"halt", 0xffff, "1111111111111111"},
		{"  halt  ", 0xffff, "1111111111111111"},
		{"add a0, a1, a2", 0x0088, "000000_0_010_001_000"},
		{"add a0,a1,a2", 0x0088, "000000_0_010_001_000"},
		{"sub a8, a9, a10", 0x0688, "000001_1_010_001_000"},
		{"sra\ta7, a7, a7", 0x1dff, "000111_0_111_111_111"},
		{"not a1, a2", 0x2011, "001000_0_000_010_001"},
		{"com a9, a10", 0x2251, "001000_1_001_010_001"},
		{"mvhl a0, a9", 0x2488, "001001_0010_001_000"},
		{"mvlh a8, a1", 0x2688, "001001_1010_001_000"},
		{"mvh a10, a11", 0x26da, "001001_1011_011_010"},
		{"lh a3, 4(a1)", 0x250b, "001001_0_100_001_011"},
		{"lh a3, (a1)", 0x240b, "001001_0_000_001_011"},
		{"lh a3, x(a1)", 0x240b, "001001_0_000_001_011"},
		{"lh a3, 4( a1 )", 0x250b, "001001_0_100_001_011"},
		{"li a2, 600", 0x44c2, "010_001_0_011000_010"},
		{"li a0, 512", 0x4000, "010_000_0_000000_000"},
		{"li a9, -1", 0x5ff9, "010_111_1_111111_001"},
		{"li a2, 0x258", 0x44c2, "010_001_0_011000_010"},
		{"li a2, bogus", 0x4002, "010_000_0_000000_010"},
		{"li a0, 12abc", 0x4000, "010_000_0_000000_000"},
		{"li a0, 0b101", 0x4028, "010_000_0_000101_000"},
		{"lh a0, 3abc(a1)", 0x2408, "001001_0_000_001_000"},
		{"sh a1, 2(a3)", 0x28ca, "001010_0_011_001_010"},
		{"slt a1, a2", 0x8088, "100000_0_010_001_000"},
		{"soe a9, a10", 0x8289, "100000_1_010_001_001"},
		{"boz 5", 0x8405, "100_001_0000000101"},
		{"bonz -2", 0x8bfe, "100_010_1111111110"},
		{"jal 1024", 0x9000, "100_100_0000000000"},
		{"jal", 0x9000, "100_100_0000000000"},
		{"jalr a2, 13", 0x9455, "100101_0_001_010_101"},
		{"jalr a12, -1", 0x97e7, "100101_1_111_100_111"},
	}

	for _, entry := range table {
		t.Run(entry.line, func(t *testing.T) {
			assert := assert.New(t)

			enc, err := Translate(entry.line)
			assert.NoError(err)
			assert.Equal(entry.word, enc.Word)
			assert.Equal(entry.binary, enc.Binary)
		})
	}
}

func TestTranslate_GroupMismatch(t *testing.T) {
	table := []string{
		"add a0, a1, a9",
		"add a0, a9, a1",
		"xor a8, a1, a9",
		"not a0, a8",
		"com a15, a7",
		"lh a0, 1(a8)",
		"lh a8, 1(a0)",
		"sh a0, 1(a8)",
		"slt a0, a8",
		"soe a9, a1",
		"mvhl a8, a9",
		"mvhl a0, a1",
		"mvlh a0, a1",
		"mvlh a8, a9",
		"mvh a0, a9",
		"mvh a8, a1",
	}

	for _, line := range table {
		t.Run(line, func(t *testing.T) {
			assert := assert.New(t)

			enc, err := Translate(line)
			assert.ErrorIs(err, ErrGroupMismatch{})
			assert.Equal(isa.Encoded{}, enc)
		})
	}
}

func TestTranslate_GroupMismatchDetail(t *testing.T) {
	assert := assert.New(t)

	_, err := Translate("add a0, a1, a9")
	assert.Equal(ErrGroupMismatch{
		Opcode:  isa.OP_ADD,
		Operand: isa.RegisterRef{Group: isa.GROUP_B, Index: isa.REG_R1},
		Want:    isa.GROUP_A,
	}, err)
	assert.Equal("add: register a9 is in group B, expected group A", err.Error())

	_, err = Translate("mvhl a0, a1")
	assert.Equal(ErrGroupMismatch{
		Opcode:  isa.OP_MVHL,
		Operand: isa.RegisterRef{Group: isa.GROUP_A, Index: isa.REG_R1},
		Want:    isa.GROUP_B,
	}, err)
}

func TestTranslate_Errors(t *testing.T) {
	table := []struct {
		line string
		err  error
	}{
		{"foo a0, a1", isa.ErrUnsupportedOpcode("")},
		{"", isa.ErrUnsupportedOpcode("")},
		{"ADD a0, a1, a2", isa.ErrUnsupportedOpcode("")},
		{"add a0, a1, r2", isa.ErrUnknownRegister("")},
		{"add a0, a1, A2", isa.ErrUnknownRegister("")},
		{"li a16, 3", isa.ErrUnknownRegister("")},
		{"lh a0, 4(a99)", isa.ErrUnknownRegister("")},
		{"jalr x, 4", isa.ErrUnknownRegister("")},
		{"add a0, a1", ErrMalformedOperand{}},
		{"add a0, a1, a2, a3", ErrMalformedOperand{}},
		{"add", ErrMalformedOperand{}},
		{"not a0", ErrMalformedOperand{}},
		{"lh a0, 4", ErrMalformedOperand{}},
		{"lh a0, 4(a1", ErrMalformedOperand{}},
		{"lh a0, 4)a1(", ErrMalformedOperand{}},
		{"lh a0 4(a1)", ErrMalformedOperand{}},
		{"sh a0, a1", ErrMalformedOperand{}},
		{"li a0", ErrMalformedOperand{}},
		{"boz 1, 2", ErrMalformedOperand{}},
		{"jalr a0", ErrMalformedOperand{}},
		{"halt a0", ErrMalformedOperand{}},
	}

	for _, entry := range table {
		t.Run(entry.line, func(t *testing.T) {
			assert := assert.New(t)

			enc, err := Translate(entry.line)
			assert.ErrorIs(err, entry.err)
			assert.Equal(isa.Encoded{}, enc)
		})
	}
}

func TestTranslate_Unsupported(t *testing.T) {
	assert := assert.New(t)

	_, err := Translate("foo a0, a1")
	assert.Equal(isa.ErrUnsupportedOpcode("foo"), err)

	_, err = Translate("lh a0, 4(a1")
	assert.Equal(ErrMalformedOperand{Opcode: isa.OP_LH, Operand: "4(a1"}, err)
}

func TestTranslate_Concurrent(t *testing.T) {
	lines := []string{"add a0, a1, a2", "li a2, 600", "halt", "jalr a12, -1"}

	expected := make([]isa.Encoded, len(lines))
	for n, line := range lines {
		enc, err := Translate(line)
		assert.NoError(t, err)
		expected[n] = enc
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				for n, line := range lines {
					enc, err := Translate(line)
					assert.NoError(t, err)
					assert.Equal(t, expected[n], enc)
				}
			}
		}()
	}
	wg.Wait()
}

func TestSplitLine(t *testing.T) {
	assert := assert.New(t)

	op, text := splitLine("  lh   a0,  4(a1)  ")
	assert.Equal("lh", op)
	assert.Equal("a0,  4(a1)", text)

	op, text = splitLine("halt")
	assert.Equal("halt", op)
	assert.Equal("", text)
}

func TestImmediate(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(12, immediate("12"))
	assert.Equal(-3, immediate(" -3 "))
	assert.Equal(31, immediate("0x1f"))
	assert.Equal(5, immediate("0b101"))
	assert.Equal(0, immediate(""))
	assert.Equal(0, immediate("12abc"))
	assert.Equal(0, immediate("a0"))
}
