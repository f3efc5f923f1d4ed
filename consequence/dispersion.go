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

// StabilityClass is a Pasquill-Gifford atmospheric stability class, from
// A (very unstable) to F (very stable).
type StabilityClass string

// Stability classes.
const (
	ClassA StabilityClass = "A"
	ClassB StabilityClass = "B"
	ClassC StabilityClass = "C"
	ClassD StabilityClass = "D"
	ClassE StabilityClass = "E"
	ClassF StabilityClass = "F"
)

var stabilityFactor = map[StabilityClass]float64{
	ClassA: 0.5,
	ClassB: 0.7,
	ClassC: 1.0,
	ClassD: 1.5,
	ClassE: 2.0,
	ClassF: 3.0,
}

// Factor returns the dispersion multiplier for c. Unknown classes
// return 1.
func (c StabilityClass) Factor() float64 {
	if f, ok := stabilityFactor[c]; ok {
		return f
	}
	return 1
}

// Dispersion limits [m].
const (
	MinDispersion = 10
	MaxDispersion = 10000
)

// DispersionDistance estimates the downwind distance [m] to a hazardous
// concentration for a release rate [kg/s] and wind speed [m/s]:
// 100 rate^0.6 factor / wind^0.3, limited to [10, 10000] m. A negative
// or NaN rate is a *hazop.DomainError; a zero rate gives the minimum.
func DispersionDistance(rate, windSpeed float64, class StabilityClass) (float64, error) {
	if !(windSpeed > 0) {
		return 0, domainError("dispersion", "non-positive wind speed")
	}
	if !(rate >= 0) {
		return 0, domainError("dispersion", "negative release rate")
	}
	d := math.Pow(rate, 0.6) * class.Factor() / math.Pow(windSpeed, 0.3)
	return math.Max(MinDispersion, math.Min(MaxDispersion, d*100)), nil
}
