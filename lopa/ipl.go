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
// Package lopa implements layer of protection analysis: independent
// protection layers (IPLs), the mitigated frequency of a hazard scenario
// once those layers are credited, and the safety integrity level a new
// safety instrumented function would need to meet a target frequency.
package lopa

import (
	"math"
	"strings"

	"github.com/spatialmodel/hazop"
)

// Type is the kind of safeguard an IPL is. Its value is the display name.
type Type string

// IPL types.
const (
	BPCS              Type = "Basic Process Control System"
	Alarm             Type = "Operator Response to Alarm"
	SIS               Type = "Safety Instrumented System"
	Mechanical        Type = "Mechanical Protection Device"
	Physical          Type = "Physical Protection"
	Procedural        Type = "Procedural Protection"
	Human             Type = "Human Intervention"
	Dike              Type = "Dike/Bund/Containment"
	Relief            Type = "Relief Device"
	EmergencyResponse Type = "Emergency Response"
	Other             Type = "Other"
)

// Types lists every IPL type.
var Types = []Type{BPCS, Alarm, SIS, Mechanical, Physical, Procedural,
	Human, Dike, Relief, EmergencyResponse, Other}

var typeCodes = map[string]Type{
	"BPCS":               BPCS,
	"ALARM":              Alarm,
	"SIS":                SIS,
	"MECHANICAL":         Mechanical,
	"PHYSICAL":           Physical,
	"PROCEDURAL":         Procedural,
	"HUMAN":              Human,
	"DIKE":               Dike,
	"RELIEF":             Relief,
	"EMERGENCY_RESPONSE": EmergencyResponse,
	"OTHER":              Other,
}

// ParseType returns the type with display name s. The short codes
// (BPCS, ALARM, SIS, ..., EMERGENCY_RESPONSE, OTHER) are also accepted.
// Unrecognized input returns Other and false.
func ParseType(s string) (Type, bool) {
	for _, t := range Types {
		if string(t) == s {
			return t, true
		}
	}
	if t, ok := typeCodes[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return t, true
	}
	return Other, false
}

// Category says whether an IPL prevents the initiating event from
// progressing or mitigates its consequences.
type Category string

// IPL categories.
const (
	Prevention Category = "Prevention"
	Mitigation Category = "Mitigation"
)

// ParseCategory returns the category named s, ignoring case.
// Unrecognized input returns Prevention and false.
func ParseCategory(s string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prevention":
		return Prevention, true
	case "mitigation":
		return Mitigation, true
	}
	return Prevention, false
}

// IPL is an independent protection layer.
type IPL struct {
	ID          string
	Name        string
	Description string
	Type        Type
	Category    Category

	// Enabled IPLs are credited in frequency calculations.
	Enabled bool

	// AuditInterval is the time between audits [months].
	AuditInterval int

	LifecycleStatus string
	ValidationDate  string
	Notes           string
	ScenarioID      string

	pfd float64
	sil *hazop.SIL
}

// New returns an enabled IPL with a 12 month audit interval and an
// "Active" lifecycle status. pfd is clamped into [0, 1].
func New(name string, t Type, c Category, pfd float64) *IPL {
	ipl := &IPL{
		Name:            name,
		Type:            t,
		Category:        c,
		Enabled:         true,
		AuditInterval:   12,
		LifecycleStatus: "Active",
	}
	ipl.SetPFD(pfd)
	return ipl
}

// PFD returns the probability of failure on demand.
func (ipl *IPL) PFD() float64 { return ipl.pfd }

// SetPFD sets the probability of failure on demand, clamping it into
// [0, 1]. NaN is treated as 1, no protection.
func (ipl *IPL) SetPFD(pfd float64) {
	switch {
	case math.IsNaN(pfd) || pfd > 1:
		ipl.pfd = 1
	case pfd < 0:
		ipl.pfd = 0
	default:
		ipl.pfd = pfd
	}
}

// SIL returns the safety integrity level of the IPL, if it has one.
func (ipl *IPL) SIL() (hazop.SIL, bool) {
	if ipl.sil == nil {
		return hazop.SILNone, false
	}
	return *ipl.sil, true
}

// SetSIL assigns a safety integrity level. An invalid level removes it.
func (ipl *IPL) SetSIL(s hazop.SIL) {
	if !s.Valid() {
		ipl.sil = nil
		return
	}
	ipl.sil = &s
}

// ClearSIL removes the safety integrity level.
func (ipl *IPL) ClearSIL() { ipl.sil = nil }

// RiskReductionFactor returns 1/PFD, or +Inf for a PFD of zero.
func (ipl *IPL) RiskReductionFactor() float64 {
	if ipl.pfd <= 0 {
		return math.Inf(1)
	}
	return 1 / ipl.pfd
}

var recommendedPFD = map[Type]float64{
	BPCS:              0.1,
	Alarm:             0.1,
	SIS:               0.01,
	Mechanical:        0.01,
	Physical:          0.01,
	Procedural:        0.1,
	Human:             0.1,
	Dike:              0.01,
	Relief:            0.01,
	EmergencyResponse: 0.1,
	Other:             0.1,
}

// RecommendedPFD returns the generic PFD credited to an IPL of type t.
// Unknown types return 0.1.
func RecommendedPFD(t Type) float64 {
	if p, ok := recommendedPFD[t]; ok {
		return p
	}
	return 0.1
}

// PFDFromSIL returns the band of PFD values, as (upper, lower), that an
// IPL with safety integrity level s is credited with. SILNone and
// invalid levels give no credit, (1, 1).
func PFDFromSIL(s hazop.SIL) (upper, lower float64) {
	if s == hazop.SILNone || !s.Valid() {
		return 1, 1
	}
	return s.PFDRange()
}
