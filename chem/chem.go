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
// Package chem holds the physical and safety properties of process
// chemicals and evaluates their temperature-dependent property curves.
package chem

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spatialmodel/hazop"
)

// Chemical is a process chemical. Optional properties are nil when
// unknown. Temperatures are in °C.
type Chemical struct {
	Name            string  `json:"name" validate:"required"`
	CASNumber       string  `json:"cas_number"`
	MolecularWeight float64 `json:"molecular_weight" validate:"gte=0"` // g/mol

	BoilingPoint     *float64 `json:"boiling_point"`
	MeltingPoint     *float64 `json:"melting_point"`
	FlashPoint       *float64 `json:"flash_point"`
	AutoIgnitionTemp *float64 `json:"auto_ignition_temp"`

	// Flammability limits [% by volume in air].
	LowerFlammabilityLimit *float64 `json:"lower_flammability_limit" validate:"omitempty,gte=0,lte=100"`
	UpperFlammabilityLimit *float64 `json:"upper_flammability_limit" validate:"omitempty,gte=0,lte=100"`

	// Emergency response planning guidelines.
	ERPG2 *float64 `json:"erpg_2" validate:"omitempty,gte=0"`
	ERPG3 *float64 `json:"erpg_3" validate:"omitempty,gte=0"`

	// NFPA 704 ratings.
	NFPAHealth       int    `json:"nfpa_health" validate:"gte=0,lte=4"`
	NFPAFlammability int    `json:"nfpa_flammability" validate:"gte=0,lte=4"`
	NFPAReactivity   int    `json:"nfpa_reactivity" validate:"gte=0,lte=4"`
	NFPASpecial      string `json:"nfpa_special"`

	// Antoine coefficients: log10(P [bar]) = A - B/(T [K] + C).
	VPA *float64 `json:"vp_a"`
	VPB *float64 `json:"vp_b"`
	VPC *float64 `json:"vp_c"`

	// Heat capacity coefficients: Cp = A + B T [K].
	CpA *float64 `json:"cp_a"`
	CpB *float64 `json:"cp_b"`

	// Heat of vaporization coefficients: Hv [kJ/mol] = A + B T + C T², T in K.
	HvA *float64 `json:"hv_a"`
	HvB *float64 `json:"hv_b"`
	HvC *float64 `json:"hv_c"`
}

// Float returns a pointer to v, for setting optional properties.
func Float(v float64) *float64 { return &v }

func kelvin(c float64) float64 { return c + 273.15 }

// VaporPressure returns the vapour pressure [bar] at temperature [°C]
// from the Antoine equation. ok is false when a coefficient is missing
// or the equation is singular at that temperature.
func (c *Chemical) VaporPressure(temperature float64) (p float64, ok bool) {
	if c.VPA == nil || c.VPB == nil || c.VPC == nil {
		return 0, false
	}
	d := kelvin(temperature) + *c.VPC
	if d == 0 {
		return 0, false
	}
	p = math.Pow(10, *c.VPA-*c.VPB/d)
	if math.IsInf(p, 0) || math.IsNaN(p) {
		return 0, false
	}
	return p, true
}

// HeatOfVaporization returns the heat of vaporization [kJ/mol] at
// temperature [°C]. ok is false when a coefficient is missing.
func (c *Chemical) HeatOfVaporization(temperature float64) (hv float64, ok bool) {
	if c.HvA == nil || c.HvB == nil || c.HvC == nil {
		return 0, false
	}
	t := kelvin(temperature)
	return *c.HvA + *c.HvB*t + *c.HvC*t*t, true
}

// HeatCapacity returns the heat capacity at temperature [°C], in the
// units of the fitted coefficients. ok is false when a coefficient is
// missing.
func (c *Chemical) HeatCapacity(temperature float64) (cp float64, ok bool) {
	if c.CpA == nil || c.CpB == nil {
		return 0, false
	}
	return *c.CpA + *c.CpB*kelvin(temperature), true
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	})
}

// Validate checks that c has a name, that its NFPA ratings are 0-4, and
// that its molecular weight, flammability limits and ERPG values are in
// range. Failures are returned as hazop.ValidationErrors.
func (c *Chemical) Validate() error {
	var errs hazop.ValidationErrors
	if err := validate.Struct(c); err != nil {
		fieldErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return fmt.Errorf("chem: validating %s: %v", c.Name, err)
		}
		for _, fe := range fieldErrs {
			errs = append(errs, &hazop.ValidationError{
				Field:  fe.Field(),
				Value:  fe.Value(),
				Reason: fmt.Sprintf("fails %s=%s", fe.Tag(), fe.Param()),
			})
		}
	}
	if l, u := c.LowerFlammabilityLimit, c.UpperFlammabilityLimit; l != nil && u != nil && *l > *u {
		errs = append(errs, &hazop.ValidationError{
			Field:  "lower_flammability_limit",
			Value:  *l,
			Reason: "exceeds the upper flammability limit",
		})
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
