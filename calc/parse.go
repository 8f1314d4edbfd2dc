package calc

import "strconv"

// Parse parses an expression into a syntax tree. The given options are applied
// in order. On failure, the result is nil and the error is a *ParseError
// holding the position at which parsing stopped.
func Parse(src string, opts ...ParseOption) (*Node, error) {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	c := newCursor(src)
	n, err := parseExpr(c, &p)
	if err != nil {
		return nil, err
	}
	if !c.done() {
		// Every rune is either consumed or rejected by the scanner unless it
		// is a stop rune.
		if r, _ := c.peek(); !p.stops(r) {
			panic("calc: parse ended early at " + strconv.Itoa(c.pos) + " on " + strconv.QuoteRune(r))
		}
	}
	return n, nil
}

// parseExpr parses a sequence of terms joined by + and -.
func parseExpr(c *cursor, p *parsectx) (*Node, error) {
	return fold(c, p, "+-", parseTerm)
}

// parseTerm parses a sequence of literals joined by * and /.
func parseTerm(c *cursor, p *parsectx) (*Node, error) {
	return fold(c, p, "*/", scanNum)
}

// fold parses operands with next, joined by any of ops, associating to the
// left. The first error from any operand ends the parse.
func fold(c *cursor, p *parsectx, ops string, next func(*cursor, *parsectx) (*Node, error)) (*Node, error) {
	n, err := next(c, p)
	if err != nil {
		return nil, err
	}
	for {
		op, ok := c.peek()
		if !ok || !containsOp(ops, op) {
			return n, nil
		}
		c.advance()
		rhs, err := next(c, p)
		if err != nil {
			return nil, err
		}
		n = &Node{Kind: opkind(op), Left: n, Right: rhs}
	}
}

func containsOp(ops string, r rune) bool {
	for _, op := range ops {
		if r == op {
			return true
		}
	}
	return false
}
