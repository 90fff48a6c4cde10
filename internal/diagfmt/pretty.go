// Package diagfmt renders a diag.Bag for a terminal: one line per
// diagnostic plus the offending source line and a caret underline,
// colorized when the output stream is a TTY (spec §7 "deferred dump").
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"cinder/internal/diag"
	"cinder/internal/source"
)

// ColorMode selects when diagnostics are colorized, mirroring the
// teacher's root `--color auto|on|off` flag.
type ColorMode uint8

const (
	ColorAuto ColorMode = iota
	ColorOn
	ColorOff
)

// Printer writes diagnostics from a Bag to an io.Writer with source
// context.
type Printer struct {
	out   io.Writer
	fs    *source.FileSet
	color ColorMode

	errorColor *color.Color
	warnColor  *color.Color
	noteColor  *color.Color
	dimColor   *color.Color
}

// NewPrinter returns a Printer over fs's files, writing to out.
func NewPrinter(out io.Writer, fs *source.FileSet, mode ColorMode) *Printer {
	enabled := mode == ColorOn || (mode == ColorAuto && color.NoColor == false)
	p := &Printer{
		out:   out,
		fs:    fs,
		color: mode,

		errorColor: color.New(color.FgRed, color.Bold),
		warnColor:  color.New(color.FgYellow, color.Bold),
		noteColor:  color.New(color.FgCyan),
		dimColor:   color.New(color.FgHiBlack),
	}
	if !enabled {
		p.errorColor.DisableColor()
		p.warnColor.DisableColor()
		p.noteColor.DisableColor()
		p.dimColor.DisableColor()
	}
	return p
}

// Print renders every diagnostic in bag, sorted for deterministic output
// (spec §8 "round-trip property").
func (p *Printer) Print(bag *diag.Bag) {
	bag.Sort()
	for _, d := range bag.Items() {
		p.printOne(d)
	}
}

func (p *Printer) printOne(d diag.Diagnostic) {
	sevColor := p.noteColor
	switch d.Severity {
	case diag.SevError:
		sevColor = p.errorColor
	case diag.SevWarning:
		sevColor = p.warnColor
	}

	file := p.fs.Get(d.Primary.File)
	path := file.FormatPath("auto", p.fs.BaseDir())

	fmt.Fprintf(p.out, "%s: %s\n", sevColor.Sprint(d.Severity.String()), d.Message)
	fmt.Fprintf(p.out, "%s %s:%d\n", p.dimColor.Sprint("-->"), path, d.Line)

	line := file.GetLine(d.Line)
	if line == "" {
		return
	}
	start, end := p.fs.Resolve(d.Primary)
	fmt.Fprintf(p.out, "  %s\n", line)
	fmt.Fprintf(p.out, "  %s%s\n", strings.Repeat(" ", colWidth(line, start.Col)), sevColor.Sprint(caret(start, end)))
}

// colWidth measures the visual width of line up to (but excluding) the
// 1-based byte column col, using go-runewidth so wide runes line up the
// caret correctly. A tab counts as zero columns.
func colWidth(line string, col uint32) int {
	if col == 0 {
		return 0
	}
	limit := int(col) - 1
	if limit > len(line) {
		limit = len(line)
	}
	return runewidth.StringWidth(line[:limit])
}

func caret(start, end source.LineCol) string {
	n := int(end.Col) - int(start.Col)
	if n < 1 {
		n = 1
	}
	return strings.Repeat("^", n)
}
