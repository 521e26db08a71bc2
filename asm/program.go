package asm

import (
	"fmt"
	"io"
	"iter"

	"github.com/harlos0517/merak16-asm/isa"
)

// Line is one assembled source line.
type Line struct {
	LineNo int    // Source line number.
	Text   string // Source text, comments removed.
	isa.Encoded
}

// Program is the sequence of assembled lines of a source stream.
type Program struct {
	Lines []Line
}

// Words returns an iterator over the instruction address and word.
func (prog *Program) Words() iter.Seq2[int, uint16] {
	return func(yield func(ip int, word uint16) bool) {
		for ip, line := range prog.Lines {
			if !yield(ip, line.Word) {
				return
			}
		}
	}
}

// Binary returns the instruction words in order.
func (prog *Program) Binary() (words []uint16) {
	for _, word := range prog.Words() {
		words = append(words, word)
	}

	return
}

// WriteListing writes one line per instruction: address, word, fields and
// source text.
func (prog *Program) WriteListing(w io.Writer) (err error) {
	for ip, line := range prog.Lines {
		_, err = fmt.Fprintf(w, "%04x  %v  ; %v\n", ip, line.Encoded, line.Text)
		if err != nil {
			return
		}
	}

	return
}
