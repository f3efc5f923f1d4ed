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
// Package consequence contains screening estimators for the consequences of
// a release: a severity-likelihood risk matrix, plume dispersion distance,
// toxic impact radius, fire size and TNT-equivalent explosion distances.
//
// The correlations are deliberately simple. Their constants and exponents
// are fixed so that results are reproducible across studies.
package consequence

import (
	"github.com/spatialmodel/hazop"
	"github.com/spatialmodel/hazop/release"
)

// Category is a band of the 5x5 risk matrix.
type Category string

// Risk categories.
const (
	Low      Category = "Low"
	Medium   Category = "Medium"
	High     Category = "High"
	VeryHigh Category = "Very High"
)

// RiskScore returns severity × likelihood after clamping both ratings
// into [1, 5], so the score is in [1, 25].
func RiskScore(severity, likelihood int) int {
	return clamp(severity) * clamp(likelihood)
}

func clamp(rating int) int {
	if rating < 1 {
		return 1
	}
	if rating > 5 {
		return 5
	}
	return rating
}

// RiskCategory returns the matrix band that score falls in.
func RiskCategory(score int) Category {
	switch {
	case score <= 4:
		return Low
	case score <= 9:
		return Medium
	case score <= 16:
		return High
	default:
		return VeryHigh
	}
}

// Assessment is the result of rating a scenario on the risk matrix.
type Assessment struct {
	Severity   int
	Likelihood int
	Score      int
	Category   Category

	// NeedsLOPA is true for High and Very High risks, which should be
	// taken forward to a layer of protection analysis.
	NeedsLOPA bool

	RecommendedAction string
}

var actions = map[Category]string{
	VeryHigh: "Immediate action required to reduce risk",
	High:     "Prompt action required to reduce risk",
	Medium:   "Action should be planned to reduce risk",
	Low:      "No immediate action required",
}

// Assess rates a scenario. Severity and Likelihood are reported as given;
// Score uses the clamped ratings.
func Assess(severity, likelihood int) Assessment {
	score := RiskScore(severity, likelihood)
	c := RiskCategory(score)
	return Assessment{
		Severity:          severity,
		Likelihood:        likelihood,
		Score:             score,
		Category:          c,
		NeedsLOPA:         c == High || c == VeryHigh,
		RecommendedAction: actions[c],
	}
}

// EstimateReleaseRate is the screening release rate used with the
// estimators in this package: Cd A √(2 ΔP / ρ) with Cd = 0.61, for a hole
// diameter in mm, a pressure difference in kPa and a density in kg/m³.
func EstimateReleaseRate(holeDiameter, pressure, density float64) (float64, error) {
	r, err := release.Liquid{
		HoleDiameter: holeDiameter,
		PressureDrop: pressure,
		Density:      density,
		Cd:           release.DefaultCd,
	}.Rate()
	if err != nil {
		return 0, err
	}
	return r.VolumeFlow, nil
}

func domainError(op, reason string) error {
	return &hazop.DomainError{Op: "consequence: " + op, Reason: reason}
}
