// Package strcalc evaluates sums and differences of non-negative integers
// written as strings, like "1+2-3".
package strcalc

import (
	"fmt"
	"strconv"
)

// Calculator evaluates one source string.
type Calculator struct {
	src string
}

// New creates a calculator for src.
func New(src string) *Calculator {
	return &Calculator{src: src}
}

// Evaluate computes the value of the calculator's source from left to right.
func (c *Calculator) Evaluate() (int, error) {
	total, i, err := c.operand(0)
	if err != nil {
		return 0, err
	}
	for i < len(c.src) {
		op := c.src[i]
		if op != '+' && op != '-' {
			return 0, &SyntaxError{Col: i, Text: c.src[i : i+1]}
		}
		var v int
		v, i, err = c.operand(i + 1)
		if err != nil {
			return 0, err
		}
		if op == '+' {
			total += v
		} else {
			total -= v
		}
	}
	return total, nil
}

// operand scans an integer starting at byte i and returns its value and the
// index after it.
func (c *Calculator) operand(i int) (int, int, error) {
	j := i
	for j < len(c.src) && '0' <= c.src[j] && c.src[j] <= '9' {
		j++
	}
	if j == i {
		if j == len(c.src) {
			return 0, j, &SyntaxError{Col: j}
		}
		return 0, j, &SyntaxError{Col: j, Text: c.src[j : j+1]}
	}
	v, err := strconv.Atoi(c.src[i:j])
	if err != nil {
		return 0, j, fmt.Errorf("strcalc: operand at %d: %w", i, err)
	}
	return v, j, nil
}

// SyntaxError is an error for input that is not a valid sum.
type SyntaxError struct {
	// Col is the byte offset of the unexpected input.
	Col int
	// Text is the unexpected byte, or empty at the end of the input.
	Text string
}

func (err *SyntaxError) Error() string {
	if err.Text == "" {
		return strconv.Itoa(err.Col) + ": unexpected end of input"
	}
	return strconv.Itoa(err.Col) + ": unexpected " + strconv.Quote(err.Text)
}

func (err *SyntaxError) Pos() int {
	return err.Col
}
