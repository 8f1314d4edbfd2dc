// Package calc parses arithmetic expressions into syntax trees.
//
// The grammar is deliberately small: signed decimal literals joined by the
// four operators + - * /, with * and / binding tighter than + and -, and all
// operators associating to the left. There are no brackets, no variables, and
// no whitespace. "5+4*2-27/3" parses as "(5 + (4 * 2)) - (27 / 3)".
//
//	expression = term { ("+" | "-") term }
//	term       = number { ("*" | "/") number }
//	number     = [ "-" ] digit { digit } [ "." digit { digit } ]
//
// Parsing never evaluates anything. A failed parse reports only the position
// at which it stopped.
package calc
