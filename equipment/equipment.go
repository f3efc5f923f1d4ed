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
// Package equipment describes the process equipment a hazard study is
// carried out on. Each item carries a small set of common design data and
// an open attribute bag whose default keys depend on the equipment kind.
package equipment

import (
	"github.com/google/uuid"
	"github.com/spatialmodel/hazop"
)

// Kind discriminates equipment types.
type Kind string

// Equipment kinds. Generic applies to anything else.
const (
	Vessel        Kind = "Vessel"
	HeatExchanger Kind = "Heat Exchanger"
	Pump          Kind = "Pump"
	Pipe          Kind = "Pipe"
	Generic       Kind = "Equipment"
)

// Kinds lists the specific kinds, in display order.
var Kinds = []Kind{Vessel, HeatExchanger, Pump, Pipe}

// ParseKind returns the kind named by s. Unrecognized names give
// Generic and ok == false.
func ParseKind(s string) (k Kind, ok bool) {
	switch Kind(s) {
	case Vessel, HeatExchanger, Pump, Pipe, Generic:
		return Kind(s), true
	}
	return Generic, false
}

// Equipment is a single item of process equipment. Tag uniqueness is
// left to the storage layer.
type Equipment struct {
	ID      string
	Tag     string
	Name    string
	Kind    Kind
	Service string

	Volume   *float64 // L
	Material string

	MAWP              *float64 // bar
	DesignTemperature *float64 // °C

	PlantArea string
	Elevation *float64 // m

	// Attributes holds kind-specific data, for example a vessel's
	// orientation or a pump's design head.
	Attributes hazop.Record
}

// DefaultMaterial is the construction material assumed when none is given.
const DefaultMaterial = "Carbon Steel"

// New returns equipment of kind k with a fresh identifier and the
// default attributes for its kind.
func New(tag, name string, k Kind) *Equipment {
	e := &Equipment{
		ID:         uuid.NewString(),
		Tag:        tag,
		Name:       name,
		Kind:       k,
		Material:   DefaultMaterial,
		Attributes: make(hazop.Record),
	}
	e.FillDefaults()
	return e
}

// defaults holds the attribute keys each kind starts with. A nil value
// marks a quantity that is not yet known.
var defaults = map[Kind]hazop.Record{
	Vessel: {
		"diameter":    nil, // mm
		"height":      nil, // mm
		"orientation": "Vertical",
		"heads":       "2:1 Elliptical",
	},
	HeatExchanger: {
		"heat_transfer_area":                nil, // m²
		"shell_side_fluid":                  "",
		"tube_side_fluid":                   "",
		"overall_heat_transfer_coefficient": nil, // kW/(m² K)
	},
	Pump: {
		"design_flow": nil, // m³/h
		"design_head": nil, // m
		"motor_power": nil, // kW
	},
	Pipe: {
		"diameter":       nil, // mm
		"length":         nil, // m
		"schedule":       "",
		"from_equipment": "",
		"to_equipment":   "",
	},
}

// FillDefaults adds the default attributes for e's kind. Keys that are
// already present are left alone.
func (e *Equipment) FillDefaults() {
	if e.Attributes == nil {
		e.Attributes = make(hazop.Record)
	}
	for k, v := range defaults[e.Kind] {
		if _, ok := e.Attributes[k]; !ok {
			e.Attributes[k] = v
		}
	}
}

// Attribute returns the attribute stored under key as a float64. ok is
// false when it is absent, unknown, or not numeric.
func (e *Equipment) Attribute(key string) (v float64, ok bool) {
	d := hazop.NewDecoder(e.Attributes)
	f := d.OptFloat(key)
	if f == nil {
		return 0, false
	}
	return *f, true
}
