package isa

import (
	"github.com/harlos0517/merak16-asm/translate"
)

var f = translate.From

// ErrUnknownRegister is returned for a name outside a0..a15.
type ErrUnknownRegister string

func (err ErrUnknownRegister) Error() string {
	return f("unknown register '%v'", string(err))
}

func (err ErrUnknownRegister) Is(target error) (ok bool) {
	_, ok = target.(ErrUnknownRegister)
	return
}

// ErrUnsupportedOpcode is returned for an unknown mnemonic.
type ErrUnsupportedOpcode string

func (err ErrUnsupportedOpcode) Error() string {
	return f("unsupported opcode '%v'", string(err))
}

func (err ErrUnsupportedOpcode) Is(target error) (ok bool) {
	_, ok = target.(ErrUnsupportedOpcode)
	return
}
