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
// Package sif verifies safety instrumented functions (SIFs). A SIF is a
// chain of subsystems (sensors, logic solver, final elements), each made
// of redundant components under a voting architecture. The package
// computes the average probability of failure on demand of the chain and
// checks the safety integrity level it achieves against the one required.
package sif

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spatialmodel/hazop"
)

// Architecture is a MooN voting architecture: M of N redundant
// components must work for the subsystem to work.
type Architecture string

// Voting architectures.
const (
	OneOoOne   Architecture = "1oo1"
	OneOoTwo   Architecture = "1oo2"
	TwoOoTwo   Architecture = "2oo2"
	TwoOoThree Architecture = "2oo3"
	TwoOoFour  Architecture = "2oo4"
)

// Architectures lists the supported architectures.
var Architectures = []Architecture{OneOoOne, OneOoTwo, TwoOoTwo, TwoOoThree, TwoOoFour}

// ParseArchitecture returns the architecture named s, ignoring case.
// Unrecognized input returns OneOoOne and false.
func ParseArchitecture(s string) (Architecture, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, a := range Architectures {
		if string(a) == s {
			return a, true
		}
	}
	return OneOoOne, false
}

// Role is the part a subsystem plays in the function.
type Role string

// Subsystem roles.
const (
	Sensor       Role = "Sensor"
	Logic        Role = "Logic"
	FinalElement Role = "Final Element"
)

// ParseRole returns the role named s, ignoring case. Unrecognized input
// returns Sensor and false.
func ParseRole(s string) (Role, bool) {
	for _, r := range []Role{Sensor, Logic, FinalElement} {
		if strings.EqualFold(string(r), strings.TrimSpace(s)) {
			return r, true
		}
	}
	return Sensor, false
}

// Subsystem is a group of redundant components with one role.
type Subsystem struct {
	Name         string       `json:"name" validate:"required"`
	Architecture Architecture `json:"architecture" validate:"oneof=1oo1 1oo2 2oo2 2oo3 2oo4"`

	// PFDPerComponent is the average probability of failure on demand of
	// one component.
	PFDPerComponent float64 `json:"pfd_per_component" validate:"gt=0,lt=1"`

	// Beta is the fraction of failures with a common cause.
	Beta float64 `json:"beta" validate:"gt=0,lt=1"`

	// TestInterval is the proof test interval [months].
	TestInterval int `json:"test_interval_months" validate:"gte=1"`

	// DC is the diagnostic coverage.
	DC float64 `json:"dc" validate:"gte=0,lte=1"`

	// MTTR is the mean time to repair [h].
	MTTR float64 `json:"mttr_hours" validate:"gte=0"`

	Role Role `json:"subsystem_type" validate:"oneof=Sensor Logic 'Final Element'"`

	// Bypassed subsystems are left out of the SIF's overall PFD.
	Bypassed bool `json:"bypassed"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Defaults used when a subsystem record leaves the value out.
const (
	DefaultBeta         = 0.1
	DefaultTestInterval = 12
	DefaultMTTR         = 24
)

// NewSubsystem returns a subsystem built from all of its parameters, or
// nil with hazop.ValidationErrors listing every value that breaks a rule.
func NewSubsystem(name string, a Architecture, pfdPerComponent, beta float64,
	testInterval int, dc, mttr float64, role Role) (*Subsystem, error) {
	s := &Subsystem{
		Name:            name,
		Architecture:    a,
		PFDPerComponent: pfdPerComponent,
		Beta:            beta,
		TestInterval:    testInterval,
		DC:              dc,
		MTTR:            mttr,
		Role:            role,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate returns hazop.ValidationErrors with one entry per broken rule:
// a non-empty name, a known architecture and role, PFDPerComponent and
// Beta strictly inside (0, 1), TestInterval of at least 1, DC in [0, 1]
// and a non-negative MTTR.
func (s *Subsystem) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("sif: validating subsystem: %v", err)
	}
	errs := make(hazop.ValidationErrors, len(fieldErrs))
	for i, fe := range fieldErrs {
		errs[i] = &hazop.ValidationError{Field: fe.Field(), Value: fe.Value(), Reason: reason(fe)}
	}
	return errs
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "gt":
		return "must be greater than " + fe.Param()
	case "lt":
		return "must be less than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	}
	return "failed " + fe.Tag()
}

// Model selects the formulas used for subsystem PFD.
type Model int

const (
	// ModelLegacy uses pfd_per_component for 1oo1, the independent plus
	// common cause expression for 2oo4, and fixed representative values
	// for the other architectures: 0.0001 for 1oo2, 0.02 for 2oo2 and
	// 0.0003 for 2oo3. It is the default.
	ModelLegacy Model = iota

	// ModelSimplified derives 1oo2, 2oo2 and 2oo3 from the component PFD
	// p and the common cause factor β with the simplified IEC 61508
	// equations: 4((1-β)p)²/3 + βp, 2p and 4((1-β)p)² + βp.
	ModelSimplified
)

func (m Model) String() string {
	switch m {
	case ModelLegacy:
		return "legacy"
	case ModelSimplified:
		return "simplified"
	}
	return fmt.Sprintf("Model(%d)", int(m))
}

// ParseModel returns the model named s. Unrecognized input returns
// ModelLegacy and false.
func ParseModel(s string) (Model, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "legacy", "":
		return ModelLegacy, true
	case "simplified":
		return ModelSimplified, true
	}
	return ModelLegacy, false
}

// PFD returns the average probability of failure on demand of s under
// model m, clamped into [0, 1].
func (m Model) PFD(s *Subsystem) float64 {
	p, beta := s.PFDPerComponent, s.Beta
	var pfd float64
	switch s.Architecture {
	case TwoOoFour:
		pfd = 6*p*p - 8*p*p*p + 3*p*p*p*p + beta*p
	case OneOoTwo:
		if m == ModelSimplified {
			q := (1 - beta) * p
			pfd = 4*q*q/3 + beta*p
		} else {
			pfd = 0.0001
		}
	case TwoOoTwo:
		if m == ModelSimplified {
			pfd = 2 * p
		} else {
			pfd = 0.02
		}
	case TwoOoThree:
		if m == ModelSimplified {
			q := (1 - beta) * p
			pfd = 4*q*q + beta*p
		} else {
			pfd = 0.0003
		}
	default:
		pfd = p
	}
	return math.Max(0, math.Min(1, pfd))
}

// PFD returns the average probability of failure on demand of s under
// ModelLegacy.
func (s *Subsystem) PFD() float64 { return ModelLegacy.PFD(s) }

// RiskReductionFactor returns 1/PFD, or +Inf when the PFD is zero.
func (s *Subsystem) RiskReductionFactor() float64 {
	pfd := s.PFD()
	if pfd <= 0 {
		return math.Inf(1)
	}
	return 1 / pfd
}
