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
package chem

import (
	"context"
	"errors"
	"fmt"

	"github.com/spatialmodel/hazop"
)

// optional lists the keys of the optional numeric properties.
func (c *Chemical) optional() map[string]**float64 {
	return map[string]**float64{
		"boiling_point":            &c.BoilingPoint,
		"melting_point":            &c.MeltingPoint,
		"flash_point":              &c.FlashPoint,
		"auto_ignition_temp":       &c.AutoIgnitionTemp,
		"lower_flammability_limit": &c.LowerFlammabilityLimit,
		"upper_flammability_limit": &c.UpperFlammabilityLimit,
		"erpg_2":                   &c.ERPG2,
		"erpg_3":                   &c.ERPG3,
		"vp_a":                     &c.VPA,
		"vp_b":                     &c.VPB,
		"vp_c":                     &c.VPC,
		"cp_a":                     &c.CpA,
		"cp_b":                     &c.CpB,
		"hv_a":                     &c.HvA,
		"hv_b":                     &c.HvB,
		"hv_c":                     &c.HvC,
	}
}

// Record returns the key-value form of c. Unknown properties are nil.
func (c *Chemical) Record() hazop.Record {
	r := hazop.Record{
		"name":              c.Name,
		"cas_number":        c.CASNumber,
		"molecular_weight":  c.MolecularWeight,
		"nfpa_health":       c.NFPAHealth,
		"nfpa_flammability": c.NFPAFlammability,
		"nfpa_reactivity":   c.NFPAReactivity,
		"nfpa_special":      c.NFPASpecial,
	}
	for k, p := range c.optional() {
		r[k] = hazop.OptFloat(*p)
	}
	return r
}

// FromRecord builds a Chemical from its key-value form. Unconvertible
// fields are left unknown (or zero) and listed in the returned
// hazop.ConversionErrors; the Chemical is usable either way.
func FromRecord(r hazop.Record) (*Chemical, error) {
	d := hazop.NewDecoder(r)
	c := &Chemical{
		Name:             d.String("name", ""),
		CASNumber:        d.String("cas_number", ""),
		MolecularWeight:  d.Float("molecular_weight", 0),
		NFPAHealth:       d.Int("nfpa_health", 0),
		NFPAFlammability: d.Int("nfpa_flammability", 0),
		NFPAReactivity:   d.Int("nfpa_reactivity", 0),
		NFPASpecial:      d.String("nfpa_special", ""),
	}
	for k, p := range c.optional() {
		*p = d.OptFloat(k)
	}
	return c, d.Err()
}

var errNoName = errors.New("chem: chemical has no name")

// Save writes c to st under its name.
func Save(ctx context.Context, st hazop.Store, c *Chemical) error {
	if c.Name == "" {
		return errNoName
	}
	if err := st.Put(ctx, hazop.KindChemical, c.Name, c.Record()); err != nil {
		return fmt.Errorf("chem: saving %s: %w", c.Name, err)
	}
	return nil
}

// Load reads the chemical with the given name from st.
func Load(ctx context.Context, st hazop.Store, name string) (*Chemical, error) {
	r, err := st.Get(ctx, hazop.KindChemical, name)
	if err != nil {
		return nil, fmt.Errorf("chem: loading %s: %w", name, err)
	}
	return FromRecord(r)
}
