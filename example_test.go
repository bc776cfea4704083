package tracecalc_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/zephyrtronium/tracecalc"
)

func Example() {
	ctx := tracecalc.NewContext(tracecalc.TraceWriter(os.Stdout))
	a, _ := tracecalc.Parse("(10 / 3 + 23) * (1 - 4)")
	fmt.Println(a)
	r, _ := ctx.Eval(a)
	fmt.Println("=", r)

	// Output:
	// (((10 / 3) + 23) * (1 - 4))
	// ((3 + 23) * (1 - 4))
	// (26 * (1 - 4))
	// (26 * -3)
	// -78
	// = -78
}

func ExampleTraceFunc() {
	n := 0
	count := tracecalc.TraceFunc(func(string) { n++ })
	r, _, _ := tracecalc.EvalString("1 + 2 * 3 - 4 / 2", count)
	fmt.Println(r, "in", n, "steps")

	// Output:
	// 5 in 4 steps
}

func ExampleInputError() {
	for _, src := range []string{"1 + x", "(1 + 2", "3 *", "4 / (2 - 2)"} {
		_, _, err := tracecalc.EvalString(src)
		var ierr tracecalc.InputError
		if errors.As(err, &ierr) {
			fmt.Printf("%s: %v\n", ierr.Location().Text, err)
		}
	}

	// Output:
	// x: 5: invalid character "x"
	// (: 1: open bracket ( with no close bracket
	// *: 3: missing operand after "*"
	// 4 / (2 - 2): 3: division by zero: 4 / 0 in "4 / (2 - 2)"
}
