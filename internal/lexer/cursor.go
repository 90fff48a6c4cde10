package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"cinder/internal/source"
)

// Cursor tracks a byte position within a single source file.
type Cursor struct {
	File *source.File
	Off  uint32
}

// NewCursor returns a cursor positioned at the start of f.
func NewCursor(f *source.File) Cursor {
	return Cursor{File: f, Off: 0}
}

func (c *Cursor) limit() uint32 {
	n, err := safecast.Conv[uint32](len(c.File.Content))
	if err != nil {
		panic(fmt.Errorf("lexer: file content too large: %w", err))
	}
	return n
}

// EOF reports whether the cursor has consumed the whole file.
func (c *Cursor) EOF() bool { return c.Off >= c.limit() }

// Peek returns the current byte without consuming it, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// Peek2 returns the current and next byte, or ok=false near EOF.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.limit() {
		return 0, 0, false
	}
	return c.File.Content[c.Off], c.File.Content[c.Off+1], true
}

// Bump consumes and returns the current byte, or 0 at EOF.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	return b
}

// Mark captures the current offset for later span construction.
type Mark uint32

// Mark returns a Mark at the cursor's current offset.
func (c *Cursor) Mark() Mark { return Mark(c.Off) }

// SpanFrom returns the span covering [m, current offset).
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File.ID, Start: uint32(m), End: c.Off}
}
