package tracecalc_test

import (
	"testing"

	"github.com/zephyrtronium/tracecalc"
)

func FuzzParse(f *testing.F) {
	f.Add("1 + 2 * 3")
	f.Add("-(1 - -2)")
	f.Add("((1)")
	f.Add("1 2")
	f.Add("9223372036854775808")
	f.Fuzz(func(t *testing.T, s string) {
		a, err := tracecalc.Parse(s)
		if err != nil {
			ierr, ok := err.(tracecalc.InputError)
			if !ok {
				t.Fatalf("%q gave non-input error %#v", s, err)
			}
			loc := ierr.Location()
			if loc.Start < 0 || loc.End > len(s) || loc.Start > loc.End || s[loc.Start:loc.End] != loc.Text {
				t.Fatalf("%q gave error %v with bad span %v", s, err, loc)
			}
			return
		}
		if a.Empty() {
			return
		}
		b, err := tracecalc.Parse(a.String())
		if err != nil {
			t.Fatalf("%q renders as %q which fails to parse: %v", s, a, err)
		}
		if b.String() != a.String() {
			t.Fatalf("%q renders as %q which renders as %q", s, a, b)
		}
	})
}
