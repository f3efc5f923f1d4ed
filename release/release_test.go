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
package release

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/ctessum/unit"
	"github.com/spatialmodel/hazop"
)

func TestDischargeCoefficient(t *testing.T) {
	var tests = []struct {
		re   float64
		p    Profile
		want float64
	}{
		{re: 5000, p: Sharp, want: 0.61},
		{re: 5000, p: Rounded, want: 0.98},
		{re: 5000, p: PipeEntrance, want: 0.82},
		{re: 5, p: Sharp, want: 0.5},
		{re: 10, p: Sharp, want: 0.5},
		{re: 100, p: Sharp, want: 0.555},
		{re: 1000, p: Sharp, want: 0.61},
		{re: 5000, p: "", want: 0.61},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%s_%g", test.p, test.re), func(t *testing.T) {
			cd := DischargeCoefficient(test.re, test.p)
			if different(cd, test.want, 1.e-10) {
				t.Errorf("have %g, want %g", cd, test.want)
			}
		})
	}
	if cd := DischargeCoefficient(500, Sharp); cd <= 0.5 || cd >= 0.61 {
		t.Errorf("transitional coefficient %g should be between 0.5 and 0.61", cd)
	}
}

func TestReynolds(t *testing.T) {
	re, err := Reynolds(1, 0.01, 1000, 0.001)
	if err != nil {
		t.Fatal(err)
	}
	if different(re, 10000, 1.e-10) {
		t.Errorf("have %g, want 10000", re)
	}
	if _, err := Reynolds(1, 0.01, 1000, 0); err == nil {
		t.Error("zero viscosity should be an error")
	}
}

func TestLiquid(t *testing.T) {
	r, err := Liquid{HoleDiameter: 10, PressureDrop: 500, Density: 1000, Cd: 0.61}.Rate()
	if err != nil {
		t.Fatal(err)
	}
	wantV := 0.61 * math.Sqrt(2*500000.0/1000)
	wantA := math.Pi * 0.01 * 0.01 / 4
	if different(r.Velocity, wantV, 1.e-10) {
		t.Errorf("velocity: have %g, want %g", r.Velocity, wantV)
	}
	if different(r.MassFlow, 1.515, 1.e-3) {
		t.Errorf("mass flow: have %g, want 1.515", r.MassFlow)
	}
	if different(r.MassFlow, wantA*wantV*1000, 1.e-10) {
		t.Errorf("mass flow: have %g, want %g", r.MassFlow, wantA*wantV*1000)
	}
	if different(r.VolumeFlow, r.MassFlow/1000, 1.e-10) {
		t.Errorf("volume flow: have %g", r.VolumeFlow)
	}

	t.Run("default Cd", func(t *testing.T) {
		r2, err := Liquid{HoleDiameter: 10, PressureDrop: 500, Density: 1000}.Rate()
		if err != nil {
			t.Fatal(err)
		}
		if r2 != r {
			t.Errorf("have %+v, want %+v", r2, r)
		}
	})

	t.Run("head", func(t *testing.T) {
		// 10 m of water adds 98.1 kPa.
		r2, err := Liquid{HoleDiameter: 10, Density: 1000, Head: 10}.Rate()
		if err != nil {
			t.Fatal(err)
		}
		r3, err := Liquid{HoleDiameter: 10, PressureDrop: 98.1, Density: 1000}.Rate()
		if err != nil {
			t.Fatal(err)
		}
		if different(r2.MassFlow, r3.MassFlow, 1.e-10) {
			t.Errorf("have %g, want %g", r2.MassFlow, r3.MassFlow)
		}
	})

	t.Run("profile", func(t *testing.T) {
		r2, err := Liquid{HoleDiameter: 10, PressureDrop: 500, Density: 1000,
			Profile: Rounded, Viscosity: 0.001}.Rate()
		if err != nil {
			t.Fatal(err)
		}
		if r2.Cd != 0.98 {
			t.Errorf("Cd: have %g, want 0.98", r2.Cd)
		}
	})

	t.Run("zero density", func(t *testing.T) {
		_, err := Liquid{HoleDiameter: 10, PressureDrop: 500}.Rate()
		var de *hazop.DomainError
		if !errors.As(err, &de) {
			t.Errorf("have %v, want DomainError", err)
		}
	})
}

func TestCriticalPressureRatio(t *testing.T) {
	if r := CriticalPressureRatio(1.4); different(r, 0.5283, 1.e-4) {
		t.Errorf("have %g, want 0.5283", r)
	}
}

func TestGas(t *testing.T) {
	var tests = []struct {
		downstream float64
		choked     bool
		massFlow   float64
	}{
		{downstream: 100, choked: true, massFlow: 0.10991},
		{downstream: 500, choked: true, massFlow: 0.10991},
		{downstream: 528, choked: true, massFlow: 0.10991},
		{downstream: 529, choked: false},
		{downstream: 800, choked: false, massFlow: 0.089996},
		{downstream: 1000, choked: false, massFlow: 0},
	}
	for _, test := range tests {
		t.Run(fmt.Sprint(test.downstream), func(t *testing.T) {
			r, err := Gas{
				HoleDiameter:       10,
				UpstreamPressure:   1000,
				DownstreamPressure: test.downstream,
				Temperature:        300,
				MolecularWeight:    28,
			}.Rate()
			if err != nil {
				t.Fatal(err)
			}
			if r.Choked != test.choked {
				t.Errorf("choked: have %v, want %v", r.Choked, test.choked)
			}
			if r.Choked != (r.PressureRatio <= r.CriticalRatio) {
				t.Errorf("choked flag %v inconsistent with ratios %g and %g", r.Choked, r.PressureRatio, r.CriticalRatio)
			}
			if r.Cd != DefaultCd {
				t.Errorf("Cd: have %g", r.Cd)
			}
			if test.massFlow != 0 && different(r.MassFlow, test.massFlow, 1.e-4) {
				t.Errorf("mass flow: have %g, want %g", r.MassFlow, test.massFlow)
			}
			if different(r.GasDensity, 11.2254, 1.e-4) {
				t.Errorf("density: have %g, want 11.2254", r.GasDensity)
			}
		})
	}
}

func TestGasDomain(t *testing.T) {
	for _, g := range []Gas{
		{HoleDiameter: 10, UpstreamPressure: 0, Temperature: 300, MolecularWeight: 28},
		{HoleDiameter: 10, UpstreamPressure: 1000, Temperature: 0, MolecularWeight: 28},
		{HoleDiameter: 10, UpstreamPressure: 1000, Temperature: 300, MolecularWeight: 0},
		{HoleDiameter: 10, UpstreamPressure: 1000, Temperature: 300, MolecularWeight: 28, K: 1},
	} {
		if _, err := g.Rate(); err == nil {
			t.Errorf("%+v should be an error", g)
		}
	}
}

func TestGasReversedPressure(t *testing.T) {
	var tests = []struct {
		upstream, downstream float64
	}{
		{upstream: 100, downstream: 200},
		{upstream: 100, downstream: 100.001},
		{upstream: 100, downstream: -1},
	}
	for _, test := range tests {
		t.Run(fmt.Sprint(test.downstream), func(t *testing.T) {
			r, err := Gas{
				HoleDiameter:       10,
				UpstreamPressure:   test.upstream,
				DownstreamPressure: test.downstream,
				Temperature:        288.15,
				MolecularWeight:    28.96,
			}.Rate()
			var de *hazop.DomainError
			if !errors.As(err, &de) {
				t.Fatalf("have %v, want DomainError", err)
			}
			if r.MassFlow != 0 || math.IsNaN(r.MassFlow) {
				t.Errorf("mass flow: have %g, want 0", r.MassFlow)
			}
		})
	}
}

func TestTwoPhase(t *testing.T) {
	tp := TwoPhase{
		HoleDiameter:       10,
		UpstreamPressure:   1000,
		DownstreamPressure: 100,
		LiquidDensity:      1000,
		VaporDensity:       10,
	}
	t.Run("pure liquid", func(t *testing.T) {
		tp := tp
		tp.LiquidFraction = 1
		r, err := tp.Rate()
		if err != nil {
			t.Fatal(err)
		}
		if r.MixtureDensity != 1000 {
			t.Errorf("have %g, want 1000", r.MixtureDensity)
		}
		if r.VaporMassFlow != 0 || r.VaporVolumeFlow != 0 {
			t.Errorf("vapour flow should be zero: %+v", r)
		}
	})
	t.Run("pure vapour", func(t *testing.T) {
		tp := tp
		tp.LiquidFraction = 0
		r, err := tp.Rate()
		if err != nil {
			t.Fatal(err)
		}
		if r.MixtureDensity != 10 {
			t.Errorf("have %g, want 10", r.MixtureDensity)
		}
		if r.LiquidMassFlow != 0 {
			t.Errorf("liquid flow should be zero: %+v", r)
		}
	})
	t.Run("mixture", func(t *testing.T) {
		tp := tp
		tp.LiquidFraction = 0.5
		r, err := tp.Rate()
		if err != nil {
			t.Fatal(err)
		}
		if different(r.MixtureDensity, 19.80198, 1.e-6) {
			t.Errorf("have %g, want 19.80198", r.MixtureDensity)
		}
		if different(r.LiquidMassFlow, r.VaporMassFlow, 1.e-10) {
			t.Errorf("split: %g vs %g", r.LiquidMassFlow, r.VaporMassFlow)
		}
		if different(r.LiquidMassFlow+r.VaporMassFlow, r.MassFlow, 1.e-10) {
			t.Errorf("split does not add up")
		}
		if different(r.VolumeFlow, r.LiquidVolumeFlow+r.VaporVolumeFlow, 1.e-10) {
			t.Errorf("total volume flow")
		}
	})
	t.Run("pure liquid ignores vapour density", func(t *testing.T) {
		tp := tp
		tp.LiquidFraction = 1
		tp.VaporDensity = 0
		if _, err := tp.Rate(); err != nil {
			t.Error(err)
		}
	})
}

func TestPipeLaminar(t *testing.T) {
	r, err := Pipe{Diameter: 10, Length: 10, PressureDrop: 10, Density: 1000, Viscosity: 0.1}.Rate()
	if err != nil {
		t.Fatal(err)
	}
	if r.Reynolds >= 2300 {
		t.Fatalf("Reynolds number %g should be laminar", r.Reynolds)
	}
	if r.FrictionFactor != 64/r.Reynolds {
		t.Errorf("friction factor %g should equal 64/Re = %g", r.FrictionFactor, 64/r.Reynolds)
	}
	// The velocity satisfies the pressure balance.
	v2 := 2 * 10000.0 / (1000 * (1 + 4*r.FrictionFactor*10/0.01))
	if different(r.Velocity*r.Velocity, v2, 1.e-8) {
		t.Errorf("velocity² %g does not satisfy the balance %g", r.Velocity*r.Velocity, v2)
	}
}

func TestPipeTurbulent(t *testing.T) {
	r, err := Pipe{Diameter: 50, Length: 10, PressureDrop: 100, Density: 1000, Viscosity: 0.001}.Rate()
	if err != nil {
		t.Fatal(err)
	}
	if different(r.FrictionFactor, 0.0207265, 1.e-5) {
		t.Errorf("friction factor: have %g, want 0.0207265", r.FrictionFactor)
	}
	if different(r.Velocity, 3.3728, 1.e-4) {
		t.Errorf("velocity: have %g, want 3.3728", r.Velocity)
	}
	if different(r.Reynolds, 1000*r.Velocity*0.05/0.001, 1.e-10) {
		t.Errorf("Reynolds number %g is not at the final velocity", r.Reynolds)
	}
}

func TestPipeFixedFriction(t *testing.T) {
	r, err := Pipe{Diameter: 50, Length: 10, PressureDrop: 100, Density: 1000, Viscosity: 0.001,
		FrictionFactor: 0.02}.Rate()
	if err != nil {
		t.Fatal(err)
	}
	if r.FrictionFactor != 0.02 {
		t.Errorf("friction factor: have %g, want 0.02", r.FrictionFactor)
	}
	if different(r.MassFlow, 6.73473, 1.e-5) {
		t.Errorf("mass flow: have %g, want 6.73473", r.MassFlow)
	}
}

func TestPipeDomain(t *testing.T) {
	for _, p := range []Pipe{
		{Diameter: 0, Length: 10, PressureDrop: 100, Density: 1000, Viscosity: 0.001},
		{Diameter: 50, Length: 10, PressureDrop: 100, Density: 0, Viscosity: 0.001},
		{Diameter: 50, Length: 10, PressureDrop: 100, Density: 1000, Viscosity: 0},
	} {
		_, err := p.Rate()
		var de *hazop.DomainError
		if !errors.As(err, &de) {
			t.Errorf("%+v: have %v, want DomainError", p, err)
		}
	}
}

func TestFlange(t *testing.T) {
	var tests = []struct {
		class LeakClass
		area  float64
		cd    float64
	}{
		{class: SmallLeak, area: 1e-7 * math.Pi * 0.1, cd: 0.5},
		{class: MediumLeak, area: 1e-6 * math.Pi * 0.1, cd: 0.6},
		{class: LargeLeak, area: 1e-5 * math.Pi * 0.1, cd: 0.65},
		{class: "catastrophic", area: 1e-7 * math.Pi * 0.1, cd: 0.6},
	}
	for _, test := range tests {
		t.Run(string(test.class), func(t *testing.T) {
			r, err := Flange{Pressure: 1000, Size: 100, Density: 1000, Class: test.class}.Rate()
			if err != nil {
				t.Fatal(err)
			}
			if different(r.LeakArea, test.area, 1.e-10) {
				t.Errorf("area: have %g, want %g", r.LeakArea, test.area)
			}
			if r.Cd != test.cd {
				t.Errorf("Cd: have %g, want %g", r.Cd, test.cd)
			}
			want := test.area * test.cd * math.Sqrt(2*1e6/1000) * 1000
			if different(r.MassFlow, want, 1.e-10) {
				t.Errorf("mass flow: have %g, want %g", r.MassFlow, want)
			}
		})
	}
}

func TestDurationQuantity(t *testing.T) {
	if d := Duration(1000, 10); d != 100 {
		t.Errorf("duration: have %g, want 100", d)
	}
	if d := Duration(1000, 0); !math.IsInf(d, 1) {
		t.Errorf("duration: have %g, want +Inf", d)
	}
	if q := Quantity(10, 100); q != 1000 {
		t.Errorf("quantity: have %g, want 1000", q)
	}
}

func TestExposure(t *testing.T) {
	d, err := Exposure(unit.New(1000, unit.Kilogram), unit.New(10, KilogramPerSecond))
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Check(unit.Second); err != nil {
		t.Error(err)
	}
	if d.Value() != 100 {
		t.Errorf("have %g, want 100", d.Value())
	}

	d, err = Exposure(unit.New(1000, unit.Kilogram), unit.New(0, KilogramPerSecond))
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(d.Value(), 1) {
		t.Errorf("have %g, want +Inf", d.Value())
	}

	if _, err := Exposure(unit.New(1000, unit.Meter3), unit.New(10, KilogramPerSecond)); err == nil {
		t.Error("volume inventory should be an error")
	}

	q, err := Released(unit.New(10, KilogramPerSecond), unit.New(100, unit.Second))
	if err != nil {
		t.Fatal(err)
	}
	if err := q.Check(unit.Kilogram); err != nil {
		t.Error(err)
	}
	if q.Value() != 1000 {
		t.Errorf("have %g, want 1000", q.Value())
	}
	if _, err := Released(unit.New(10, unit.Meter3PerSecond), unit.New(100, unit.Second)); err == nil {
		t.Error("volume flow should be an error")
	}
}

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}
