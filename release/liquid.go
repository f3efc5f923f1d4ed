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

import "math"

// Liquid describes an incompressible liquid released through a hole.
type Liquid struct {
	// HoleDiameter is the diameter of the hole [mm].
	HoleDiameter float64

	// PressureDrop is the pressure difference across the hole [kPa].
	PressureDrop float64

	// Density is the liquid density [kg/m³].
	Density float64

	// Head is the height of liquid above the hole [m]. Its hydrostatic
	// pressure is added to PressureDrop.
	Head float64

	// Cd is the discharge coefficient. When it is zero, it is estimated
	// from the Reynolds number if Profile and Viscosity are set, and
	// DefaultCd is used otherwise.
	Cd float64

	// Profile is the shape of the hole, used to estimate Cd.
	Profile Profile

	// Viscosity is the dynamic viscosity [Pa s], used to estimate Cd.
	Viscosity float64
}

// LiquidRate is the result of a liquid release calculation.
type LiquidRate struct {
	MassFlow   float64 // kg/s
	VolumeFlow float64 // m³/s
	Velocity   float64 // m/s
	Area       float64 // m²
	Cd         float64
}

// maxCdIterations bounds the search for a discharge coefficient that is
// consistent with the Reynolds number it produces.
const maxCdIterations = 10

// Rate calculates the release rate using Bernoulli's equation,
// v = Cd √(2 (ΔP + ρ g h) / ρ).
func (l Liquid) Rate() (LiquidRate, error) {
	if l.Density <= 0 {
		return LiquidRate{}, domainError("liquid", "non-positive density")
	}
	p := l.PressureDrop*1000 + l.Density*G*l.Head
	if p < 0 {
		return LiquidRate{}, domainError("liquid", "negative driving pressure")
	}
	ideal := math.Sqrt(2 * p / l.Density)

	cd := l.Cd
	switch {
	case cd != 0:
	case l.Profile != "" && l.Viscosity > 0:
		cd = DefaultCd
		for i := 0; i < maxCdIterations; i++ {
			re, err := Reynolds(cd*ideal, l.HoleDiameter/1000, l.Density, l.Viscosity)
			if err != nil {
				return LiquidRate{}, err
			}
			next := DischargeCoefficient(re, l.Profile)
			if next == cd {
				break
			}
			cd = next
		}
	default:
		cd = DefaultCd
	}

	r := LiquidRate{
		Area:     circleArea(l.HoleDiameter),
		Velocity: cd * ideal,
		Cd:       cd,
	}
	r.MassFlow = r.Area * r.Velocity * l.Density
	r.VolumeFlow = r.MassFlow / l.Density
	return r, nil
}
