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
package lopa_test

import (
	"fmt"

	"github.com/spatialmodel/hazop/lopa"
)

func ExampleScenario() {
	s := lopa.NewScenario()
	s.InitiatingFrequency = 0.1 // per year
	s.TargetFrequency = 1e-6
	s.IPLs = []*lopa.IPL{
		lopa.New("High pressure alarm", lopa.Alarm, lopa.Prevention, lopa.RecommendedPFD(lopa.Alarm)),
	}
	s.Modifiers["Occupancy"] = 0.1

	fmt.Printf("mitigated frequency: %g/yr, meets target: %v\n", s.MitigatedFrequency(), s.MeetsTarget())
	req := s.RequiredSIL()
	fmt.Printf("new function needs %v (PFD %g)\n", req.SIL, req.PFD)
	// Output:
	// mitigated frequency: 0.001/yr, meets target: false
	// new function needs SIL2 (PFD 0.001)
}
