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
// Package release estimates the rate at which fluid escapes from a loss of
// containment: liquid, gas and two-phase discharge through an orifice,
// flow out of a pipe segment, and flange leaks.
//
// Inputs use process units (hole diameters in mm, pressures in kPa,
// densities in kg/m³, temperatures in K) and results use SI units
// (kg/s, m³/s, m/s, m²).
package release

import (
	"math"

	"github.com/spatialmodel/hazop"
)

// Physical constants.
const (
	// G is the acceleration of gravity [m/s²].
	G = 9.81
	// R is the universal gas constant [J/(mol K)].
	R = 8.31446
)

const (
	// DefaultCd is the discharge coefficient used when none is given.
	DefaultCd = 0.61
	// DefaultK is the ratio of specific heats used when none is given.
	DefaultK = 1.4
	// DefaultRoughness is the absolute pipe roughness [mm] of commercial steel.
	DefaultRoughness = 0.045

	stdTemperature = 288.15 // K
	stdPressure    = 101325 // Pa
)

// Profile is the shape of the opening through which fluid is released.
type Profile string

// Orifice profiles.
const (
	Sharp        Profile = "sharp"
	Rounded      Profile = "rounded"
	PipeEntrance Profile = "pipe"
)

// DischargeCoefficient estimates the discharge coefficient of an opening
// with the given profile at Reynolds number re. Sharp-edged orifices
// (and unrecognized profiles) move from 0.5 in creeping flow to 0.61 in
// turbulent flow, interpolating on log10(re) between Re = 10 and 1000.
func DischargeCoefficient(re float64, p Profile) float64 {
	switch p {
	case Rounded:
		return 0.98
	case PipeEntrance:
		return 0.82
	}
	switch {
	case re < 10:
		return 0.5
	case re < 1000:
		return 0.5 + 0.11*(math.Log10(re)-1)/2
	default:
		return 0.61
	}
}

// Reynolds returns the Reynolds number for flow at velocity [m/s] through
// a passage of the given diameter [m], for a fluid with the given density
// [kg/m³] and dynamic viscosity [Pa s].
func Reynolds(velocity, diameter, density, viscosity float64) (float64, error) {
	if viscosity == 0 {
		return 0, domainError("Reynolds", "zero viscosity")
	}
	return density * velocity * diameter / viscosity, nil
}

// circleArea returns the area [m²] of a circle with a diameter in mm.
func circleArea(diameterMM float64) float64 {
	d := diameterMM / 1000
	return math.Pi * d * d / 4
}

func cdOrDefault(cd float64) float64 {
	if cd == 0 {
		return DefaultCd
	}
	return cd
}

func domainError(op, reason string) error {
	return &hazop.DomainError{Op: "release: " + op, Reason: reason}
}
