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
package sif

import (
	"errors"
	"fmt"
	"math"

	"github.com/spatialmodel/hazop"
	"gonum.org/v1/gonum/floats"
)

// SIF is a safety instrumented function.
type SIF struct {
	ID          string
	Name        string
	Description string
	ScenarioID  string

	RequiredSIL hazop.SIL

	// ProcessSafetyTime is the time available to bring the process to
	// a safe state [s].
	ProcessSafetyTime float64

	// ResponseTime is the time the function takes to act [s].
	ResponseTime float64

	SafetyFunction     string
	SafeState          string
	VerificationStatus string
	Notes              string

	Subsystems []*Subsystem

	// Model selects the subsystem PFD formulas.
	Model Model
}

// New returns a SIF with status "Not Verified" and no subsystems.
func New(name string, required hazop.SIL) *SIF {
	return &SIF{
		Name:               name,
		RequiredSIL:        required,
		VerificationStatus: "Not Verified",
	}
}

// OverallPFD returns the sum of the PFDs of the subsystems that are not
// bypassed, at most 1. A SIF with no such subsystems provides no
// protection and returns 1.
func (f *SIF) OverallPFD() float64 {
	var pfds []float64
	for _, s := range f.Subsystems {
		if !s.Bypassed {
			pfds = append(pfds, f.Model.PFD(s))
		}
	}
	if len(pfds) == 0 {
		return 1
	}
	return math.Min(1, floats.Sum(pfds))
}

// AchievedSIL returns the level the function achieves.
func (f *SIF) AchievedSIL() hazop.SIL {
	return hazop.SILFromPFD(f.OverallPFD())
}

// Verification is the outcome of checking a SIF against its required
// level.
type Verification struct {
	MeetsRequirements bool
	RequiredSIL       hazop.SIL
	AchievedSIL       hazop.SIL
	OverallPFD        float64
	Recommendations   []string
}

// Validate checks every subsystem, including ones changed after they
// were built, and returns hazop.ValidationErrors whose fields are
// prefixed "subsystems[i].".
func (f *SIF) Validate() error {
	var errs hazop.ValidationErrors
	for i, s := range f.Subsystems {
		err := s.Validate()
		if err == nil {
			continue
		}
		var ve hazop.ValidationErrors
		if !errors.As(err, &ve) {
			return err
		}
		errs = append(errs, prefixed(i, ve)...)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func prefixed(i int, ve hazop.ValidationErrors) hazop.ValidationErrors {
	out := make(hazop.ValidationErrors, len(ve))
	for j, v := range ve {
		c := *v
		c.Field = fmt.Sprintf("subsystems[%d].%s", i, v.Field)
		out[j] = &c
	}
	return out
}

// Verify checks whether the achieved level is at least the required
// level, and recommends a change when it is not. A SIF that fails
// Validate is not verified.
func (f *SIF) Verify() (Verification, error) {
	if err := f.Validate(); err != nil {
		return Verification{}, fmt.Errorf("sif: verifying %s: %w", f.Name, err)
	}
	pfd := f.OverallPFD()
	v := Verification{
		RequiredSIL: f.RequiredSIL,
		AchievedSIL: hazop.SILFromPFD(pfd),
		OverallPFD:  pfd,
	}
	v.MeetsRequirements = v.AchievedSIL >= v.RequiredSIL
	if !v.MeetsRequirements {
		v.Recommendations = append(v.Recommendations, fmt.Sprintf(
			"Current design achieves %v, but %v is required.", v.AchievedSIL, v.RequiredSIL))
	}
	return v, nil
}
