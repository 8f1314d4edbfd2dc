package calc

import (
	"strconv"
	"strings"
)

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type eofopt struct {
	stop string
}

// parsectx holds general data for parsing. It is also a ParseOption.
type parsectx struct {
	// stop is a string containing the runes that end an expression where an
	// operator could follow a literal.
	stop string
}

// stops reports whether r ends the expression.
func (p *parsectx) stops(r rune) bool {
	return p.stop != "" && strings.ContainsRune(p.stop, r)
}

// StopOn tells the parser to treat a list of runes as ending the expression.
// When the parser meets one of them after a literal, it returns the tree
// parsed so far and leaves the rest of the input unparsed. Digits, the decimal
// point, and operators cannot be stop runes.
//
// StopOn overrides the effect of any previous StopOn in the parsing options,
// including in presets. With no arguments, StopOn produces the default
// termination behavior, which is to parse to the end of the input.
func StopOn(chars ...rune) ParseOption {
	var b strings.Builder
	for _, r := range chars {
		switch {
		case '0' <= r && r <= '9', r == '.', strings.ContainsRune(Operators, r):
			panic("calc: cannot stop on " + strconv.QuoteRune(r))
		case strings.ContainsRune(b.String(), r):
			continue
		}
		b.WriteRune(r)
	}
	return &eofopt{stop: b.String()}
}

func (o *eofopt) parseOption(p parsectx) parsectx {
	p.stop = o.stop
	return p
}

// ParsingPreset creates a parsing preset that may be more efficient when using
// the same non-default parsing options for many calls to Parse. A preset
// panics when it would change any option from the default, but it is safe to
// apply other options after a preset.
func ParsingPreset(opts ...ParseOption) ParseOption {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	return &p
}

func (o *parsectx) parseOption(p parsectx) parsectx {
	if p.stop != "" {
		panic("calc: preset applied to non-default parse config")
	}
	p.stop = o.stop
	return p
}
