/*
Copyright © 2024 the HAZOP authors.
This file is part of HAZOP.

HAZOP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

HAZOP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with HAZOP.  If not, see <http://www.gnu.org/licenses/>.
*/
package hazop

import (
	"fmt"
	"math"
	"testing"
)

func TestSILFromPFD(t *testing.T) {
	var tests = []struct {
		pfd  float64
		want SIL
	}{
		{pfd: 0.2, want: SILNone},
		{pfd: 0.1, want: SILNone},
		{pfd: 0.0999, want: SIL1},
		{pfd: 0.09, want: SIL1},
		{pfd: 0.01, want: SIL1},
		{pfd: 0.0099, want: SIL2},
		{pfd: 0.005, want: SIL2},
		{pfd: 0.001, want: SIL2},
		{pfd: 0.0009, want: SIL3},
		{pfd: 0.0005, want: SIL3},
		{pfd: 0.0001, want: SIL3},
		{pfd: 0.00009, want: SIL4},
		{pfd: 0.00005, want: SIL4},
		{pfd: 0, want: SIL4},
	}
	for _, test := range tests {
		t.Run(fmt.Sprint(test.pfd), func(t *testing.T) {
			have := SILFromPFD(test.pfd)
			if have != test.want {
				t.Errorf("SILFromPFD(%g) = %v, want %v", test.pfd, have, test.want)
			}
		})
	}
}

func TestSILOrder(t *testing.T) {
	if !(SILNone < SIL1 && SIL1 < SIL2 && SIL2 < SIL3 && SIL3 < SIL4) {
		t.Error("levels are not ordered")
	}
}

func TestSILPFDRange(t *testing.T) {
	var tests = []struct {
		sil          SIL
		upper, lower float64
	}{
		{SILNone, 1, 0.1},
		{SIL1, 0.1, 0.01},
		{SIL2, 0.01, 0.001},
		{SIL3, 0.001, 0.0001},
		{SIL4, 0.0001, 0.00001},
		{SIL(7), 1, 0.1},
	}
	for _, test := range tests {
		u, l := test.sil.PFDRange()
		if u != test.upper || l != test.lower {
			t.Errorf("%v: have (%g, %g), want (%g, %g)", test.sil, u, l, test.upper, test.lower)
		}
	}
}

func TestParseSIL(t *testing.T) {
	var tests = []struct {
		in   interface{}
		want SIL
		ok   bool
	}{
		{in: 2, want: SIL2, ok: true},
		{in: 0, want: SILNone, ok: true},
		{in: int64(4), want: SIL4, ok: true},
		{in: 3.0, want: SIL3, ok: true},
		{in: "1", want: SIL1, ok: true},
		{in: "SIL3", want: SIL3, ok: true},
		{in: "sil_2", want: SIL2, ok: true},
		{in: "none", want: SILNone, ok: true},
		{in: SIL4, want: SIL4, ok: true},
		{in: 5, want: SILNone, ok: false},
		{in: -1, want: SILNone, ok: false},
		{in: "high", want: SILNone, ok: false},
		{in: nil, want: SILNone, ok: false},
		{in: 2.5, want: SILNone, ok: false},
		{in: 3.7, want: SILNone, ok: false},
		{in: float32(0.5), want: SILNone, ok: false},
		{in: "2.5", want: SILNone, ok: false},
		{in: "4.0", want: SIL4, ok: true},
		{in: math.NaN(), want: SILNone, ok: false},
		{in: 1e30, want: SILNone, ok: false},
	}
	for _, test := range tests {
		t.Run(fmt.Sprint(test.in), func(t *testing.T) {
			have, ok := ParseSIL(test.in)
			if have != test.want || ok != test.ok {
				t.Errorf("ParseSIL(%#v) = (%v, %v), want (%v, %v)", test.in, have, ok, test.want, test.ok)
			}
		})
	}
}

func TestSILString(t *testing.T) {
	if s := SIL2.String(); s != "SIL2" {
		t.Errorf("have %s, want SIL2", s)
	}
	if s := SILNone.String(); s != "NONE" {
		t.Errorf("have %s, want NONE", s)
	}
	if s := SIL(9).String(); s != "SIL(9)" {
		t.Errorf("have %s, want SIL(9)", s)
	}
}
