// Package output renders scan results for terminals and machines.
package output

import (
	"fmt"
	"io"
)

// ansiString marks color codes of our own making; everything else
// string-like gets sanitized before it reaches the terminal.
type ansiString string

// Printer writes terminal-safe output to an io.Writer, escaping any
// string-like arguments (string, []byte, error, fmt.Stringer).
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) Printer {
	return Printer{w: w}
}

func (p Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, escapeArgs(args)...)
}

func escapeArgs(args []any) []any {
	if len(args) == 0 {
		return nil
	}
	out := make([]any, len(args))
	for i, a := range args {
		switch v := a.(type) {
		case ansiString:
			out[i] = string(v)
		case string:
			out[i] = EscapeControl(v)
		case []byte:
			out[i] = EscapeControl(string(v))
		case error:
			out[i] = EscapeControl(v.Error())
		case fmt.Stringer:
			out[i] = EscapeControl(v.String())
		default:
			out[i] = a
		}
	}
	return out
}
