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
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// laminarLimit is the Reynolds number below which pipe flow is laminar.
	laminarLimit = 2300

	// maxFrictionIterations bounds the turbulent friction factor solve.
	maxFrictionIterations = 10

	// reynoldsTolerance is the relative change in Reynolds number between
	// iterations at which the friction factor solve stops.
	reynoldsTolerance = 0.01

	// initialFriction is the friction factor used for the first
	// velocity estimate.
	initialFriction = 0.3
)

// Pipe describes fluid driven out through a pipe segment.
type Pipe struct {
	Diameter     float64 // mm, inside diameter
	Length       float64 // m
	PressureDrop float64 // kPa
	Density      float64 // kg/m³
	Viscosity    float64 // Pa s

	// FrictionFactor is the Darcy friction factor. Zero selects an
	// iterative solve from Roughness and the Reynolds number.
	FrictionFactor float64

	// Roughness is the absolute pipe roughness [mm]. Zero or less selects
	// DefaultRoughness.
	Roughness float64
}

// PipeRate is the result of a pipe release calculation.
type PipeRate struct {
	MassFlow       float64 // kg/s
	VolumeFlow     float64 // m³/s
	Velocity       float64 // m/s
	Area           float64 // m²
	FrictionFactor float64
	Reynolds       float64
}

// Rate calculates the release rate from the pressure balance
// ΔP = ρ v²/2 (1 + 4 f L / D).
//
// When FrictionFactor is zero it is solved for. The flow regime is set by
// the Reynolds number of a first estimate made with f = 0.3. In laminar
// flow f = 64/Re, and the balance is solved exactly for the velocity. In
// turbulent flow f is taken from the Haaland approximation of the
// Colebrook equation, re-evaluated at the updated Reynolds number for up
// to 10 rounds or until the Reynolds number changes by less than 1%.
func (p Pipe) Rate() (PipeRate, error) {
	switch {
	case p.Diameter <= 0:
		return PipeRate{}, domainError("pipe", "non-positive diameter")
	case p.Density <= 0:
		return PipeRate{}, domainError("pipe", "non-positive density")
	case p.Viscosity <= 0:
		return PipeRate{}, domainError("pipe", "non-positive viscosity")
	case p.PressureDrop < 0:
		return PipeRate{}, domainError("pipe", "negative pressure drop")
	}
	d := p.Diameter / 1000
	dp := p.PressureDrop * 1000
	r := PipeRate{Area: circleArea(p.Diameter)}

	velocity := func(f float64) float64 {
		return math.Sqrt(2 * dp / (p.Density * (1 + 4*f*p.Length/d)))
	}
	reynolds := func(v float64) float64 {
		return p.Density * v * d / p.Viscosity
	}

	switch f := p.FrictionFactor; {
	case f != 0:
		r.FrictionFactor = f
		r.Velocity = velocity(f)
		r.Reynolds = reynolds(r.Velocity)

	case reynolds(velocity(initialFriction)) < laminarLimit:
		// With f = 64 μ/(ρ v D) the balance is quadratic in v:
		// v² + (256 μ L/(ρ D²)) v - 2 ΔP/ρ = 0.
		b := 256 * p.Viscosity * p.Length / (p.Density * d * d)
		c := 2 * dp / p.Density
		r.Velocity = (-b + math.Sqrt(b*b+4*c)) / 2
		r.Reynolds = reynolds(r.Velocity)
		if r.Reynolds > 0 {
			r.FrictionFactor = 64 / r.Reynolds
		}

	default:
		eps := p.Roughness
		if eps <= 0 {
			eps = DefaultRoughness
		}
		rough := math.Pow(eps/p.Diameter/3.7, 1.11)
		re := reynolds(velocity(initialFriction))
		for i := 0; i < maxFrictionIterations; i++ {
			f = math.Pow(-1.8*math.Log10(rough+6.9/re), -2)
			next := reynolds(velocity(f))
			converged := scalar.EqualWithinRel(next, re, reynoldsTolerance)
			re = next
			if converged {
				break
			}
		}
		r.FrictionFactor = f
		r.Velocity = velocity(f)
		r.Reynolds = reynolds(r.Velocity)
	}

	r.MassFlow = r.Area * r.Velocity * p.Density
	r.VolumeFlow = r.MassFlow / p.Density
	return r, nil
}
