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
	"fmt"
	"math"

	"github.com/ctessum/unit"
)

// KilogramPerSecond is the dimension of a mass flow rate.
var KilogramPerSecond = unit.Dimensions{unit.MassDim: 1, unit.TimeDim: -1}

// Duration returns how long [s] an inventory [kg] lasts at a mass flow
// rate [kg/s]. It is +Inf when the flow is zero or negative.
func Duration(inventory, massFlow float64) float64 {
	if massFlow <= 0 {
		return math.Inf(1)
	}
	return inventory / massFlow
}

// Quantity returns the mass [kg] released at massFlow [kg/s] over
// duration [s].
func Quantity(massFlow, duration float64) float64 {
	return massFlow * duration
}

// Exposure is the dimensioned form of Duration. inventory must be a mass
// and massFlow a mass flow rate; the result is a time.
func Exposure(inventory, massFlow *unit.Unit) (*unit.Unit, error) {
	if err := inventory.Check(unit.Kilogram); err != nil {
		return nil, fmt.Errorf("release: inventory: %v", err)
	}
	if err := massFlow.Check(KilogramPerSecond); err != nil {
		return nil, fmt.Errorf("release: mass flow: %v", err)
	}
	if massFlow.Value() <= 0 {
		return unit.New(math.Inf(1), unit.Second), nil
	}
	return unit.Div(inventory, massFlow), nil
}

// Released is the dimensioned form of Quantity. massFlow must be a mass
// flow rate and duration a time; the result is a mass.
func Released(massFlow, duration *unit.Unit) (*unit.Unit, error) {
	if err := massFlow.Check(KilogramPerSecond); err != nil {
		return nil, fmt.Errorf("release: mass flow: %v", err)
	}
	if err := duration.Check(unit.Second); err != nil {
		return nil, fmt.Errorf("release: duration: %v", err)
	}
	return unit.Mul(massFlow, duration), nil
}
