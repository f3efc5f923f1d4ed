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
package lopa

import (
	"math"

	"github.com/spatialmodel/hazop"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// MitigatedFrequency returns the frequency [1/yr] of the consequence once
// the initiating frequency is reduced by the PFD of every enabled IPL and
// by every conditional modifier. The result is rounded to 10 decimal
// places.
func MitigatedFrequency(initiating float64, ipls []*IPL, modifiers []float64) float64 {
	return scalar.Round(unmitigated(initiating, ipls, modifiers), 10)
}

func unmitigated(initiating float64, ipls []*IPL, modifiers []float64) float64 {
	f := make([]float64, 0, 1+len(ipls)+len(modifiers))
	f = append(f, initiating)
	for _, ipl := range ipls {
		if ipl.Enabled {
			f = append(f, ipl.pfd)
		}
	}
	f = append(f, modifiers...)
	return floats.Prod(f)
}

// RiskReductionFactor returns initiating/mitigated rounded to one decimal
// place, or +Inf when mitigated is zero or less.
func RiskReductionFactor(initiating, mitigated float64) float64 {
	if mitigated <= 0 {
		return math.Inf(1)
	}
	return scalar.Round(initiating/mitigated, 1)
}

// SILRequirement is the performance a new safety instrumented function
// must achieve to bring a scenario to its target frequency.
type SILRequirement struct {
	SIL hazop.SIL

	// PFD is the required probability of failure on demand, snapped to
	// a round decade where it is close to one.
	PFD float64

	// Achievable is false when the target or the frequency before the
	// new function is zero or less, so that only perfect protection
	// would do.
	Achievable bool
}

// RequiredSIL back-calculates the safety integrity level a new safety
// instrumented function needs so that the scenario reaches target. The
// existing IPLs, which should not include the new function, and the
// modifiers are applied to the initiating frequency first, and the
// required PFD is target over that intermediate frequency.
//
// A required PFD within ±50% of 0.1, 0.01, 0.001 or 0.0001 is snapped to
// that decade, and one below 0.00005 becomes 0.00001. The snapped value
// is classified as SIL1 when it is 0.01 or more (including values of 0.1
// and above, where no function may be needed), SIL2 from 0.001, SIL3
// from 0.0001 and SIL4 below that. These bands are not the ones used by
// hazop.SILFromPFD.
func RequiredSIL(initiating, target float64, existing []*IPL, modifiers []float64) SILRequirement {
	intermediate := unmitigated(initiating, existing, modifiers)
	req := SILRequirement{Achievable: intermediate > 0 && target > 0}
	if req.Achievable {
		req.PFD = target / intermediate
	}
	req.PFD = snapPFD(req.PFD)
	req.SIL = classifyRequired(req.PFD)
	return req
}

func snapPFD(p float64) float64 {
	switch {
	case p >= 0.05 && p <= 0.15:
		return 0.1
	case p >= 0.005 && p <= 0.015:
		return 0.01
	case p >= 0.0005 && p <= 0.0015:
		return 0.001
	case p >= 0.00005 && p <= 0.00015:
		return 0.0001
	case p < 0.00005:
		return 0.00001
	}
	return p
}

func classifyRequired(p float64) hazop.SIL {
	switch {
	case p >= 0.01:
		return hazop.SIL1
	case p >= 0.001:
		return hazop.SIL2
	case p >= 0.0001:
		return hazop.SIL3
	default:
		return hazop.SIL4
	}
}
