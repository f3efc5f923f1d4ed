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

// TwoPhase describes a flashing liquid/vapour mixture released through a
// hole, treated with the homogeneous equilibrium model.
type TwoPhase struct {
	HoleDiameter       float64 // mm
	UpstreamPressure   float64 // kPa
	DownstreamPressure float64 // kPa

	// LiquidFraction is the liquid mass fraction, 0 for pure vapour and
	// 1 for pure liquid.
	LiquidFraction float64

	LiquidDensity float64 // kg/m³
	VaporDensity  float64 // kg/m³

	// Cd is the discharge coefficient. Zero selects DefaultCd.
	Cd float64
}

// TwoPhaseRate is the result of a two-phase release calculation.
type TwoPhaseRate struct {
	MassFlow       float64 // kg/s
	LiquidMassFlow float64 // kg/s
	VaporMassFlow  float64 // kg/s

	LiquidVolumeFlow float64 // m³/s
	VaporVolumeFlow  float64 // m³/s
	VolumeFlow       float64 // m³/s, both phases

	MixtureDensity float64 // kg/m³
	Velocity       float64 // m/s
	Area           float64 // m²
	Cd             float64
}

// MixtureDensity returns the homogeneous density of a mixture with
// liquid mass fraction x: 1/ρ = x/ρl + (1-x)/ρv. A fraction of 1 or more
// returns liquidDensity and a fraction of 0 or less returns vaporDensity.
func MixtureDensity(x, liquidDensity, vaporDensity float64) float64 {
	switch {
	case x >= 1:
		return liquidDensity
	case x <= 0:
		return vaporDensity
	}
	return 1 / (x/liquidDensity + (1-x)/vaporDensity)
}

// Rate calculates the release rate, v = Cd √(2 (Pu - Pd) / ρmix), and
// splits the mass flow between the phases by mass fraction.
func (t TwoPhase) Rate() (TwoPhaseRate, error) {
	x := math.Max(0, math.Min(1, t.LiquidFraction))
	if x > 0 && t.LiquidDensity <= 0 {
		return TwoPhaseRate{}, domainError("two-phase", "non-positive liquid density")
	}
	if x < 1 && t.VaporDensity <= 0 {
		return TwoPhaseRate{}, domainError("two-phase", "non-positive vapour density")
	}
	dp := (t.UpstreamPressure - t.DownstreamPressure) * 1000
	if dp < 0 {
		return TwoPhaseRate{}, domainError("two-phase", "downstream pressure exceeds upstream pressure")
	}
	cd := cdOrDefault(t.Cd)
	rho := MixtureDensity(x, t.LiquidDensity, t.VaporDensity)

	r := TwoPhaseRate{
		Area:           circleArea(t.HoleDiameter),
		Cd:             cd,
		MixtureDensity: rho,
		Velocity:       cd * math.Sqrt(2*dp/rho),
	}
	r.MassFlow = r.Area * r.Velocity * rho
	r.LiquidMassFlow = r.MassFlow * x
	r.VaporMassFlow = r.MassFlow * (1 - x)
	if r.LiquidMassFlow > 0 {
		r.LiquidVolumeFlow = r.LiquidMassFlow / t.LiquidDensity
	}
	if r.VaporMassFlow > 0 {
		r.VaporVolumeFlow = r.VaporMassFlow / t.VaporDensity
	}
	r.VolumeFlow = r.LiquidVolumeFlow + r.VaporVolumeFlow
	return r, nil
}
