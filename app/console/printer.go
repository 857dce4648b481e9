package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Printer writes user-facing status lines. Colors are dropped when NO_COLOR
// is set or the terminal is dumb.
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
}

func NewPrinter() *Printer {
	return NewPrinterTo(os.Stdout, os.Stderr, UseColors())
}

func NewPrinterTo(out, err io.Writer, useColors bool) *Printer {
	return &Printer{out: out, err: err, useColors: useColors}
}

func UseColors() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return !color.NoColor
}

func (p *Printer) Success(format string, args ...any) {
	p.print(p.out, color.FgGreen, "✓ ", format, args...)
}

func (p *Printer) Warning(format string, args ...any) {
	p.print(p.err, color.FgYellow, "! ", format, args...)
}

func (p *Printer) Error(format string, args ...any) {
	p.print(p.err, color.FgRed, "✗ ", format, args...)
}

// Raw writes text to stdout as is.
func (p *Printer) Raw(text string) {
	fmt.Fprint(p.out, text)
}

func (p *Printer) print(w io.Writer, attr color.Attribute, prefix, format string, args ...any) {
	if p.useColors {
		c := color.New(attr)
		c.EnableColor()
		c.Fprintf(w, prefix+format+"\n", args...)
		return
	}
	fmt.Fprintf(w, prefix+format+"\n", args...)
}
