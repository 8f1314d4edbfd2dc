package calc

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/"

// cursor is a position-tracking view over the source text.
type cursor struct {
	src string
	// off is the byte offset of the next rune.
	off int
	// pos is the zero-based rune index of the next rune.
	pos int
}

func newCursor(src string) *cursor {
	return &cursor{src: src}
}

// peek returns the next rune without consuming it. The second result is false
// at the end of the input.
func (c *cursor) peek() (rune, bool) {
	if c.off >= len(c.src) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.src[c.off:])
	return r, true
}

// advance consumes the next rune. Panics at the end of the input.
func (c *cursor) advance() {
	if c.off >= len(c.src) {
		panic("calc: advance past end of input")
	}
	_, sz := utf8.DecodeRuneInString(c.src[c.off:])
	c.off += sz
	c.pos++
}

// at returns the position to report for an error at the next rune. An
// exhausted cursor reports position 0.
func (c *cursor) at() int {
	if c.off >= len(c.src) {
		return 0
	}
	return c.pos
}

// done reports whether the cursor has consumed all input.
func (c *cursor) done() bool {
	return c.off >= len(c.src)
}

// scanNum scans a number literal at the cursor. A minus sign is part of the
// literal only as its first rune; anywhere else it ends the literal like any
// other operator.
func scanNum(c *cursor, p *parsectx) (*Node, error) {
	start := c.at()
	var buf strings.Builder
	for {
		r, ok := c.peek()
		if !ok {
			break
		}
		if r == '-' && buf.Len() == 0 {
			buf.WriteRune(r)
			c.advance()
			continue
		}
		if strings.ContainsRune(Operators, r) || p.stops(r) {
			break
		}
		if r != '.' && (r < '0' || r > '9') {
			return nil, &ParseError{Col: c.at()}
		}
		buf.WriteRune(r)
		c.advance()
	}
	v, err := strconv.ParseFloat(buf.String(), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// Out of range literals are still literals; they parse to ±Inf or 0.
		return nil, &ParseError{Col: start}
	}
	return Num(v), nil
}
