package calc_test

import (
	"errors"
	"fmt"

	"github.com/zephyrtronium/katas/calc"
)

func ExampleParse() {
	n, err := calc.Parse("5+4*2-27/3")
	if err != nil {
		panic(err)
	}
	fmt.Println(n)
	fmt.Printf("%c %c %c\n", n.Op(), n.Left.Op(), n.Right.Op())

	_, err = calc.Parse("5+abc")
	var pe *calc.ParseError
	fmt.Println(errors.As(err, &pe), pe.Pos(), err)

	// Output:
	// ([(5) + ([4] * [2])] - [(27) / (3)])
	// - + /
	// true 2 2: parse error
}

func ExampleStopOn() {
	n, err := calc.Parse("1.5*-2\nignored", calc.StopOn('\n'))
	fmt.Println(n, err)

	// Output:
	// ([1.5] * [-2]) <nil>
}
