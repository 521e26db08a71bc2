package asm

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/harlos0517/merak16-asm/isa"
)

// Assembler feeds lines of MERAK16 source to Translate, one word per
// instruction line.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.
}

// parenEval does compile-time $(...) evaluations.
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, nil)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	return
}

// expand strips comments and evaluates $(...) expressions. An expression
// ends at the parenthesis balancing its opening one.
func (asm *Assembler) expand(text string) (line string, err error) {
	line = strings.TrimSpace(strings.SplitN(text, ";", 2)[0])

	var out strings.Builder
	for {
		start := strings.Index(line, "$(")
		if start < 0 {
			break
		}
		end := closeParen(line, start+1)
		if end < 0 {
			err = ErrParseExpression(line[start+2:])
			return
		}
		var value int64
		value, err = asm.parenEval(line[start+2 : end])
		if err != nil {
			return
		}
		out.WriteString(line[:start])
		fmt.Fprintf(&out, "%d", value)
		line = line[end+1:]
	}
	out.WriteString(line)
	line = out.String()

	return
}

// closeParen returns the index of the ')' balancing the '(' at open, or -1.
func closeParen(text string, open int) int {
	depth := 0
	for n := open; n < len(text); n++ {
		switch text[n] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return n
			}
		}
	}

	return -1
}

// Parse assembles an input stream into a Program. Assembly stops at the
// first line in error, and no Program is returned.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var text string
	var lineno int

	defer func() {
		if err != nil {
			prog = nil
			err = ErrSyntax{LineNo: lineno, Line: text, Err: err}
		}
	}()

	prog = &Program{}

	for scanner.Scan() {
		text = scanner.Text()
		lineno += 1

		var line string
		line, err = asm.expand(text)
		if err != nil {
			return
		}

		if len(line) == 0 {
			continue
		}

		var enc isa.Encoded
		enc, err = Translate(line)
		if err != nil {
			return
		}

		if asm.Verbose {
			log.Printf("%v: %v => %v\n", lineno, line, enc)
		}

		prog.Lines = append(prog.Lines, Line{LineNo: lineno, Text: line, Encoded: enc})
	}

	err = scanner.Err()

	return
}
