//go:build go1.18
// +build go1.18

package scicalc_test

import (
	"testing"

	"github.com/zephyrtronium/scicalc"
)

func FuzzParse(f *testing.F) {
	f.Add("2+3*4")
	f.Add("-2^3^2")
	f.Add("log10(100")
	f.Fuzz(func(t *testing.T, s string) {
		a, err := scicalc.ParseString(s)
		if err != nil {
			if _, ok := err.(scicalc.InputError); !ok {
				t.Errorf("%q gave non-input error %v", s, err)
			}
			return
		}
		if _, err := scicalc.ParseString(a.String()); err != nil {
			t.Errorf("%q formats to %q, which does not parse: %v", s, a, err)
		}
	})
}
