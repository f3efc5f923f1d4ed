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
package consequence

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/spatialmodel/hazop"
)

func TestRiskScore(t *testing.T) {
	for s := 1; s <= 5; s++ {
		for l := 1; l <= 5; l++ {
			if have := RiskScore(s, l); have != s*l {
				t.Errorf("RiskScore(%d, %d) = %d, want %d", s, l, have, s*l)
			}
		}
	}
	var tests = []struct {
		s, l, want int
	}{
		{s: 0, l: 4, want: 4},
		{s: 6, l: 4, want: 20},
		{s: -3, l: 9, want: 5},
		{s: 100, l: 100, want: 25},
	}
	for _, test := range tests {
		if have := RiskScore(test.s, test.l); have != test.want {
			t.Errorf("RiskScore(%d, %d) = %d, want %d", test.s, test.l, have, test.want)
		}
	}
}

func TestRiskCategory(t *testing.T) {
	var tests = []struct {
		score int
		want  Category
	}{
		{1, Low}, {4, Low}, {5, Medium}, {9, Medium},
		{10, High}, {16, High}, {17, VeryHigh}, {25, VeryHigh},
	}
	for _, test := range tests {
		t.Run(fmt.Sprint(test.score), func(t *testing.T) {
			if have := RiskCategory(test.score); have != test.want {
				t.Errorf("have %s, want %s", have, test.want)
			}
		})
	}
}

func TestAssess(t *testing.T) {
	var tests = []struct {
		s, l   int
		want   Category
		lopa   bool
		action string
	}{
		{s: 5, l: 5, want: VeryHigh, lopa: true, action: "Immediate action required to reduce risk"},
		{s: 4, l: 3, want: High, lopa: true, action: "Prompt action required to reduce risk"},
		{s: 3, l: 2, want: Medium, lopa: false, action: "Action should be planned to reduce risk"},
		{s: 1, l: 2, want: Low, lopa: false, action: "No immediate action required"},
	}
	for _, test := range tests {
		a := Assess(test.s, test.l)
		if a.Category != test.want || a.NeedsLOPA != test.lopa || a.RecommendedAction != test.action {
			t.Errorf("Assess(%d, %d) = %+v", test.s, test.l, a)
		}
		if a.Severity != test.s || a.Likelihood != test.l {
			t.Errorf("ratings not reported as given: %+v", a)
		}
	}
}

func TestEstimateReleaseRate(t *testing.T) {
	r, err := EstimateReleaseRate(10, 500, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if different(r, 0.00151502, 1.e-5) {
		t.Errorf("have %g, want 0.00151502", r)
	}
	if _, err := EstimateReleaseRate(10, 500, 0); err == nil {
		t.Error("zero density should be an error")
	}
}

func TestDispersionDistance(t *testing.T) {
	var tests = []struct {
		rate, wind float64
		class      StabilityClass
		want       float64
	}{
		{rate: 1, wind: 5, class: ClassD, want: 92.555079},
		{rate: 10, wind: 1, class: ClassF, want: 1194.32151},
		{rate: 1, wind: 1, class: "Z", want: 100},
		{rate: 1e-6, wind: 10, class: ClassA, want: MinDispersion},
		{rate: 1e6, wind: 1, class: ClassF, want: MaxDispersion},
		{rate: 0, wind: 5, class: ClassD, want: MinDispersion},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%g_%g_%s", test.rate, test.wind, test.class), func(t *testing.T) {
			d, err := DispersionDistance(test.rate, test.wind, test.class)
			if err != nil {
				t.Fatal(err)
			}
			if different(d, test.want, 1.e-6) {
				t.Errorf("have %g, want %g", d, test.want)
			}
		})
	}
	var invalid = []struct {
		rate, wind float64
	}{
		{rate: 1, wind: 0},
		{rate: 1, wind: math.NaN()},
		{rate: -1, wind: 5},
		{rate: -1e-9, wind: 5},
		{rate: math.NaN(), wind: 5},
	}
	for _, test := range invalid {
		d, err := DispersionDistance(test.rate, test.wind, ClassD)
		var de *hazop.DomainError
		if !errors.As(err, &de) {
			t.Errorf("rate %g, wind %g: have %v, want DomainError", test.rate, test.wind, err)
		}
		if d != 0 {
			t.Errorf("rate %g, wind %g: have distance %g, want 0", test.rate, test.wind, d)
		}
	}
}

func TestStabilityFactor(t *testing.T) {
	want := map[StabilityClass]float64{ClassA: 0.5, ClassB: 0.7, ClassC: 1, ClassD: 1.5, ClassE: 2, ClassF: 3, "": 1}
	for c, f := range want {
		if c.Factor() != f {
			t.Errorf("%q: have %g, want %g", c, c.Factor(), f)
		}
	}
}

func TestToxicImpact(t *testing.T) {
	tox, err := ToxicImpact(1, 100, 17, 2)
	if err != nil {
		t.Fatal(err)
	}
	if different(tox.Radius, 4240.0402, 1.e-7) {
		t.Errorf("radius: have %g, want 4240.0402", tox.Radius)
	}
	if different(tox.Casualties, 56479.368, 1.e-7) {
		t.Errorf("casualties: have %g, want 56479.368", tox.Casualties)
	}
	if tox.Duration != 10 {
		t.Errorf("duration: have %g, want 10", tox.Duration)
	}

	tox, err = ToxicImpact(100, 1, 17, 1)
	if err != nil {
		t.Fatal(err)
	}
	if tox.Radius != 5000 {
		t.Errorf("radius should be limited to 5000 m but is %g", tox.Radius)
	}
	tox, err = ToxicImpact(0, 1, 17, 1)
	if err != nil {
		t.Fatal(err)
	}
	if tox.Radius != 10 {
		t.Errorf("radius should be at least 10 m but is %g", tox.Radius)
	}

	if _, err := ToxicImpact(1, 100, 17, 0); err == nil {
		t.Error("zero wind speed should be an error")
	}
	if _, err := ToxicImpact(1, 0, 17, 2); err == nil {
		t.Error("zero threshold should be an error")
	}
}

func TestFireSize(t *testing.T) {
	f := FireSize(1, 50000)
	if f.HeatRelease != 50000 {
		t.Errorf("heat release: have %g", f.HeatRelease)
	}
	if different(f.FlameHeight, 17.80967, 1.e-6) {
		t.Errorf("flame height: have %g, want 17.80967", f.FlameHeight)
	}
	if different(f.RadiationDistance, 22.36068, 1.e-6) {
		t.Errorf("radiation distance: have %g, want 22.36068", f.RadiationDistance)
	}
	if different(f.AffectedArea, math.Pi*50000/100, 1.e-10) {
		t.Errorf("area: have %g", f.AffectedArea)
	}
	small := FireSize(0.001, 1000)
	if different(small.AffectedArea, math.Pi*100, 1.e-10) {
		t.Errorf("small fire area should use a 10 m radius: %g", small.AffectedArea)
	}
}

func TestTNTEquivalent(t *testing.T) {
	e := TNTEquivalent(10000, 0.1)
	if e.TNTMass != 1000 {
		t.Errorf("TNT mass: have %g, want 1000", e.TNTMass)
	}
	for _, d := range []struct {
		have, want float64
	}{
		{e.WindowBreakage, 500},
		{e.StructuralDamage, 180},
		{e.SevereDamage, 90},
	} {
		if different(d.have, d.want, 1.e-10) {
			t.Errorf("have %g, want %g", d.have, d.want)
		}
	}
}

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}
