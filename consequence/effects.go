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

import "math"

const (
	// molarVolume is the volume of a mole of ideal gas at 25 °C and
	// 1 atm [L/mol].
	molarVolume = 24.45

	// populationDensity is the assumed suburban population [people/km²].
	populationDensity = 1000

	// toxicDuration is the assumed release duration [min].
	toxicDuration = 10
)

// Toxic is the estimated impact of a toxic release.
type Toxic struct {
	Radius       float64 // m
	AffectedArea float64 // m²

	// Casualties is the number of people inside AffectedArea.
	Casualties float64

	Duration float64 // min
}

// ToxicImpact estimates the radius inside which the concentration exceeds
// a threshold [ppm] for a release rate [kg/s] of a substance with the given
// molecular weight [g/mol], at wind speed [m/s]. The radius,
// 50 √(rate / (wind threshold)), is limited to [10, 5000] m.
func ToxicImpact(rate, thresholdPPM, molecularWeight, windSpeed float64) (Toxic, error) {
	threshold := thresholdPPM / 1e6 * molecularWeight / molarVolume // kg/m³
	if windSpeed <= 0 {
		return Toxic{}, domainError("toxic", "non-positive wind speed")
	}
	if threshold <= 0 {
		return Toxic{}, domainError("toxic", "non-positive threshold concentration")
	}
	r := 50 * math.Sqrt(rate/(windSpeed*threshold))
	r = math.Max(10, math.Min(5000, r))
	area := math.Pi * r * r
	return Toxic{
		Radius:       r,
		AffectedArea: area,
		Casualties:   area / 1e6 * populationDensity,
		Duration:     toxicDuration,
	}, nil
}

// Fire is the estimated size of a fire.
type Fire struct {
	HeatRelease float64 // kW
	FlameHeight float64 // m

	// RadiationDistance is the distance to 5 kW/m² [m].
	RadiationDistance float64

	// AffectedArea is the area of a circle of radius RadiationDistance,
	// but at least 10 m [m²].
	AffectedArea float64
}

// FireSize estimates a fire fed at rate [kg/s] with a fuel of the given
// heat of combustion [kJ/kg].
func FireSize(rate, heatOfCombustion float64) Fire {
	q := rate * heatOfCombustion
	f := Fire{
		HeatRelease:       q,
		FlameHeight:       0.235 * math.Pow(q, 0.4),
		RadiationDistance: 0.1 * math.Sqrt(q),
	}
	r := math.Max(f.RadiationDistance, 10)
	f.AffectedArea = math.Pi * r * r
	return f
}

// Explosion gives the distances [m] to three overpressure levels.
type Explosion struct {
	TNTMass float64 // kg

	// WindowBreakage is the distance to 0.02 bar.
	WindowBreakage float64
	// StructuralDamage is the distance to 0.1 bar.
	StructuralDamage float64
	// SevereDamage is the distance to 0.3 bar.
	SevereDamage float64
}

// TNTEquivalent estimates overpressure distances for the explosion of
// mass [kg] of material with the given TNT equivalence factor, using
// cube-root scaling of the TNT-equivalent mass.
func TNTEquivalent(mass, factor float64) Explosion {
	w := mass * factor
	s := math.Cbrt(w)
	return Explosion{
		TNTMass:          w,
		WindowBreakage:   50 * s,
		StructuralDamage: 18 * s,
		SevereDamage:     9 * s,
	}
}
