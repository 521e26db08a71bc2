// Package asm assembles MERAK16 source text.
//
// Translate turns one source line into one instruction word. The
// Assembler feeds a stream of lines to Translate, after stripping
// comments and evaluating $(...) constant expressions.
package asm
