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

import "sort"

// Scenario is a LOPA worksheet for one hazard scenario. Its derived
// values are recalculated on every call.
type Scenario struct {
	ID string

	// HazardID identifies the hazard scenario being analysed.
	HazardID string

	Description string
	NodeID      string

	ConsequenceDescription string
	ConsequenceCategory    string
	ConsequenceSeverity    int

	InitiatingEvent     string
	InitiatingFrequency float64 // 1/yr
	InitiatingBasis     string

	IPLs []*IPL

	// Modifiers are conditional probabilities, such as the probability
	// of ignition or of occupancy, keyed by name.
	Modifiers map[string]float64

	// TargetFrequency is the tolerable frequency of the consequence [1/yr].
	TargetFrequency float64

	Notes string
}

// NewScenario returns a scenario with a consequence severity of 1 and a
// target frequency of 1e-5 per year.
func NewScenario() *Scenario {
	return &Scenario{
		ConsequenceSeverity: 1,
		TargetFrequency:     1e-5,
		Modifiers:           make(map[string]float64),
	}
}

// modifiers returns the modifier values ordered by name.
func (s *Scenario) modifiers() []float64 {
	names := make([]string, 0, len(s.Modifiers))
	for n := range s.Modifiers {
		names = append(names, n)
	}
	sort.Strings(names)
	v := make([]float64, len(names))
	for i, n := range names {
		v[i] = s.Modifiers[n]
	}
	return v
}

// MitigatedFrequency returns the frequency of the consequence with all
// enabled IPLs and modifiers applied.
func (s *Scenario) MitigatedFrequency() float64 {
	return MitigatedFrequency(s.InitiatingFrequency, s.IPLs, s.modifiers())
}

// RiskReductionFactor returns the reduction in frequency achieved by the
// IPLs and modifiers.
func (s *Scenario) RiskReductionFactor() float64 {
	return RiskReductionFactor(s.InitiatingFrequency, s.MitigatedFrequency())
}

// MeetsTarget reports whether the mitigated frequency is at or below the
// target.
func (s *Scenario) MeetsTarget() bool {
	return s.MitigatedFrequency() <= s.TargetFrequency
}

// RequiredSIL returns the level a new safety instrumented function needs
// to bring the scenario to its target, crediting the scenario's IPLs
// other than safety instrumented systems.
func (s *Scenario) RequiredSIL() SILRequirement {
	var existing []*IPL
	for _, ipl := range s.IPLs {
		if ipl.Type != SIS {
			existing = append(existing, ipl)
		}
	}
	return RequiredSIL(s.InitiatingFrequency, s.TargetFrequency, existing, s.modifiers())
}
