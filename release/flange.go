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

// LeakClass is the severity of a flange leak.
type LeakClass string

// Flange leak classes.
const (
	SmallLeak  LeakClass = "small"
	MediumLeak LeakClass = "medium"
	LargeLeak  LeakClass = "large"
)

// leakArea is the leak area per metre of flange circumference [m²/m].
var leakArea = map[LeakClass]float64{
	SmallLeak:  1e-7,
	MediumLeak: 1e-6,
	LargeLeak:  1e-5,
}

var leakCd = map[LeakClass]float64{
	SmallLeak:  0.5,
	MediumLeak: 0.6,
	LargeLeak:  0.65,
}

// Flange describes a leak from a flanged joint.
type Flange struct {
	Pressure float64 // kPa
	Size     float64 // mm, flange diameter
	Density  float64 // kg/m³

	// Class is the leak severity. An unrecognized class is treated as a
	// small leak with a discharge coefficient of 0.6.
	Class LeakClass
}

// FlangeRate is the result of a flange leak calculation.
type FlangeRate struct {
	MassFlow   float64 // kg/s
	VolumeFlow float64 // m³/s
	LeakArea   float64 // m²
	Velocity   float64 // m/s
	Cd         float64
}

// Rate calculates the leak rate. The leak area is proportional to the
// flange circumference.
func (f Flange) Rate() (FlangeRate, error) {
	if f.Density <= 0 {
		return FlangeRate{}, domainError("flange", "non-positive density")
	}
	if f.Pressure < 0 {
		return FlangeRate{}, domainError("flange", "negative pressure")
	}
	perMetre, ok := leakArea[f.Class]
	if !ok {
		perMetre = leakArea[SmallLeak]
	}
	cd, ok := leakCd[f.Class]
	if !ok {
		cd = 0.6
	}
	r := FlangeRate{
		LeakArea: perMetre * math.Pi * f.Size / 1000,
		Cd:       cd,
		Velocity: cd * math.Sqrt(2*f.Pressure*1000/f.Density),
	}
	r.MassFlow = r.LeakArea * r.Velocity * f.Density
	r.VolumeFlow = r.MassFlow / f.Density
	return r, nil
}
