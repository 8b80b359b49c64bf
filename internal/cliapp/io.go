package cliapp

import (
	"fmt"
	"io"
)

// IO wraps the command's stdout/stderr so commands never hold a raw
// [io.Writer] directly, matching the surrounding codebase's convention of
// centralizing output through one small type per command invocation.
type IO struct {
	out    io.Writer
	errOut io.Writer
}

// NewIO returns an IO writing to out/errOut.
func NewIO(out, errOut io.Writer) *IO {
	return &IO{out: out, errOut: errOut}
}

// Println writes to stdout.
func (o *IO) Println(a ...any) {
	_, _ = fmt.Fprintln(o.out, a...)
}

// Printf writes formatted output to stdout.
func (o *IO) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(o.out, format, a...)
}

// ErrPrintln writes to stderr.
func (o *IO) ErrPrintln(a ...any) {
	_, _ = fmt.Fprintln(o.errOut, a...)
}
