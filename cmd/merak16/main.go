package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/harlos0517/merak16-asm/asm"
	"github.com/harlos0517/merak16-asm/translate"
)

func main() {
	var compile string
	var output string
	var line string
	var lang string
	var raw bool
	var verbose bool

	flag.StringVar(&compile, "c", "-", "source file to assemble")
	flag.StringVar(&output, "o", "-", "output file")
	flag.StringVar(&line, "e", "", "assemble a single line and print it")
	flag.StringVar(&lang, "l", "", "message language (BCP 47)")
	flag.BoolVar(&raw, "raw", false, "write big-endian words instead of a listing")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(lang) != 0 {
		translate.SetLanguage(lang)
	}

	if len(line) != 0 {
		enc, err := asm.Translate(line)
		if err != nil {
			log.Fatalf("%v: %v", line, err)
		}
		fmt.Println(enc)
		return
	}

	inf := os.Stdin
	if compile != "-" {
		var err error
		inf, err = os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()
	}

	assembler := &asm.Assembler{Verbose: verbose}
	prog, err := assembler.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	ouf := os.Stdout
	if output != "-" {
		ouf, err = os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
	}

	if raw {
		err = binary.Write(ouf, binary.BigEndian, prog.Binary())
	} else {
		err = prog.WriteListing(ouf)
	}
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}
