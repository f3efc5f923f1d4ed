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

// Gas describes an ideal gas released through a hole.
type Gas struct {
	HoleDiameter       float64 // mm
	UpstreamPressure   float64 // kPa, absolute
	DownstreamPressure float64 // kPa, absolute
	Temperature        float64 // K
	MolecularWeight    float64 // g/mol

	// K is the ratio of specific heats Cp/Cv. Zero selects DefaultK.
	K float64

	// Cd is the discharge coefficient. Zero selects DefaultCd.
	Cd float64
}

// GasRate is the result of a gas release calculation.
type GasRate struct {
	MassFlow float64 // kg/s

	// StdVolumeFlow is the volumetric flow at 15 °C and 1 atm [m³/s].
	StdVolumeFlow float64

	// Choked is true when the flow is sonic at the hole, which happens
	// when PressureRatio <= CriticalRatio.
	Choked bool

	Area       float64 // m²
	Cd         float64
	GasDensity float64 // kg/m³ at upstream conditions

	// PressureRatio is downstream over upstream pressure.
	PressureRatio float64

	// CriticalRatio is (2/(k+1))^(k/(k-1)).
	CriticalRatio float64
}

// CriticalPressureRatio returns the downstream to upstream pressure ratio
// at or below which flow of a gas with specific heat ratio k is choked.
func CriticalPressureRatio(k float64) float64 {
	return math.Pow(2/(k+1), k/(k-1))
}

// Rate calculates the release rate, using the isentropic choked flow
// equation when the flow is sonic and the subsonic compressible flow
// equation otherwise. Flow toward the upstream side is a
// *hazop.DomainError.
func (g Gas) Rate() (GasRate, error) {
	k := g.K
	if k == 0 {
		k = DefaultK
	}
	switch {
	case k == 1:
		return GasRate{}, domainError("gas", "specific heat ratio of 1")
	case g.UpstreamPressure <= 0:
		return GasRate{}, domainError("gas", "non-positive upstream pressure")
	case g.DownstreamPressure < 0:
		return GasRate{}, domainError("gas", "negative downstream pressure")
	case g.DownstreamPressure > g.UpstreamPressure:
		return GasRate{}, domainError("gas", "downstream pressure exceeds upstream pressure")
	case g.Temperature <= 0:
		return GasRate{}, domainError("gas", "non-positive temperature")
	case g.MolecularWeight <= 0:
		return GasRate{}, domainError("gas", "non-positive molecular weight")
	}
	cd := cdOrDefault(g.Cd)
	pu := g.UpstreamPressure * 1000
	pd := g.DownstreamPressure * 1000
	mw := g.MolecularWeight / 1000 // kg/mol

	r := GasRate{
		Area:          circleArea(g.HoleDiameter),
		Cd:            cd,
		PressureRatio: pd / pu,
		CriticalRatio: CriticalPressureRatio(k),
		GasDensity:    pu * mw / (R * g.Temperature),
	}
	r.Choked = r.PressureRatio <= r.CriticalRatio

	if r.Choked {
		flux := math.Sqrt(k * math.Pow(2/(k+1), (k+1)/(k-1)))
		r.MassFlow = cd * r.Area * pu * flux * math.Sqrt(mw/(R*g.Temperature))
	} else {
		pr := r.PressureRatio
		flux := math.Sqrt(2*k/(k-1)) * math.Sqrt(math.Pow(pr, 2/k)*(1-math.Pow(pr, (k-1)/k)))
		r.MassFlow = cd * r.Area * flux * pu * math.Sqrt(r.GasDensity/pu)
	}

	stdDensity := stdPressure * mw / (R * stdTemperature)
	r.StdVolumeFlow = r.MassFlow / stdDensity
	return r, nil
}
