package tracecalc_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/tracecalc"
)

func FuzzEval(f *testing.F) {
	f.Add("1 / 0")
	f.Add("(1 + 1) * (1 + 1)")
	f.Add("1×2")
	f.Fuzz(func(t *testing.T, s string) {
		_, _, err := tracecalc.EvalString(s)
		if err == nil {
			return
		}
		n := 0
		for _, cat := range []error{tracecalc.ErrLexical, tracecalc.ErrStructural, tracecalc.ErrArithmetic} {
			if errors.Is(err, cat) {
				n++
			}
		}
		if n != 1 {
			t.Fatalf("%q gave error %v in %d categories", s, err, n)
		}
	})
}
