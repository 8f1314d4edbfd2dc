// Package bowling scores a game of ten-pin bowling.
package bowling

import (
	"errors"
	"fmt"
)

const (
	frames = 10
	pins   = 10
)

var (
	// ErrPins is the error for a roll knocking down fewer than zero or more
	// than ten pins.
	ErrPins = errors.New("bowling: pins must be between 0 and 10")
	// ErrFrame is the error for a roll knocking down more pins than are left
	// standing in the frame.
	ErrFrame = errors.New("bowling: too many pins in frame")
	// ErrGameOver is the error for a roll after the last frame is complete.
	ErrGameOver = errors.New("bowling: game is over")
)

// Game records the rolls of one game. The zero value is a new game.
type Game struct {
	rolls []int
	// frame is the zero-based index of the frame in progress.
	frame int
	// first is the index in rolls of the first roll of the frame in progress.
	first int
	// done is set once the last frame is complete.
	done bool
}

// New creates a new game.
func New() *Game {
	return &Game{rolls: make([]int, 0, 21)}
}

// Roll records a roll knocking down n pins.
func (g *Game) Roll(n int) error {
	if g.done {
		return ErrGameOver
	}
	if n < 0 || n > pins {
		return fmt.Errorf("%w: got %d", ErrPins, n)
	}
	thrown := g.rolls[g.first:]
	if g.frame < frames-1 {
		if len(thrown) == 1 && thrown[0]+n > pins {
			return fmt.Errorf("%w: %d after %d", ErrFrame, n, thrown[0])
		}
		g.rolls = append(g.rolls, n)
		if n == pins && len(thrown) == 0 || len(thrown) == 1 {
			g.frame++
			g.first = len(g.rolls)
		}
		return nil
	}
	// The last frame has fill balls after a strike or spare, and pins are
	// reset after each strike or spare within it.
	switch len(thrown) {
	case 1:
		if thrown[0] < pins && thrown[0]+n > pins {
			return fmt.Errorf("%w: %d after %d", ErrFrame, n, thrown[0])
		}
	case 2:
		if thrown[0] == pins && thrown[1] < pins && thrown[1]+n > pins {
			return fmt.Errorf("%w: %d after %d", ErrFrame, n, thrown[1])
		}
	}
	g.rolls = append(g.rolls, n)
	thrown = g.rolls[g.first:]
	switch {
	case len(thrown) == 3:
		g.done = true
	case len(thrown) == 2 && thrown[0]+thrown[1] < pins:
		g.done = true
	}
	return nil
}

// Score returns the score of the rolls so far. Bonuses for strikes and spares
// count only the rolls that have been made.
func (g *Game) Score() int {
	score := 0
	r := g.rolls
	i := 0
	for f := 0; f < frames && i < len(r); f++ {
		switch {
		case r[i] == pins:
			score += pins + at(r, i+1) + at(r, i+2)
			i++
		case r[i]+at(r, i+1) == pins:
			score += pins + at(r, i+2)
			i += 2
		default:
			score += r[i] + at(r, i+1)
			i += 2
		}
	}
	return score
}

// Done reports whether the game is complete.
func (g *Game) Done() bool {
	return g.done
}

func at(r []int, i int) int {
	if i < len(r) {
		return r[i]
	}
	return 0
}
