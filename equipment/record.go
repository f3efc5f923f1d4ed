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
package equipment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spatialmodel/hazop"
)

// Record returns the key-value form of e. The attribute bag is stored
// as a nested record.
func (e *Equipment) Record() hazop.Record {
	return hazop.Record{
		"id":                             e.ID,
		"tag":                            e.Tag,
		"name":                           e.Name,
		"equipment_type":                 string(e.Kind),
		"service":                        e.Service,
		"volume":                         hazop.OptFloat(e.Volume),
		"material":                       e.Material,
		"max_allowable_working_pressure": hazop.OptFloat(e.MAWP),
		"design_temperature":             hazop.OptFloat(e.DesignTemperature),
		"plant_area":                     e.PlantArea,
		"elevation":                      hazop.OptFloat(e.Elevation),
		"attributes":                     e.Attributes.Clone(),
	}
}

// FromRecord builds Equipment from its key-value form and fills in any
// missing default attributes for its kind. The attribute bag is copied,
// so r is never changed. A record without an
// identifier is given a new one. Unconvertible fields take their
// defaults and are listed in the returned hazop.ConversionErrors.
func FromRecord(r hazop.Record) (*Equipment, error) {
	d := hazop.NewDecoder(r)
	e := &Equipment{
		ID:                d.String("id", ""),
		Tag:               d.String("tag", ""),
		Name:              d.String("name", ""),
		Service:           d.String("service", ""),
		Volume:            d.OptFloat("volume"),
		Material:          d.String("material", DefaultMaterial),
		MAWP:              d.OptFloat("max_allowable_working_pressure"),
		DesignTemperature: d.OptFloat("design_temperature"),
		PlantArea:         d.String("plant_area", ""),
		Elevation:         d.OptFloat("elevation"),
		Attributes:        d.Record("attributes"),
	}
	kind := d.String("equipment_type", string(Generic))
	var ok bool
	if e.Kind, ok = ParseKind(kind); !ok {
		d.Fail("equipment_type", kind, Generic, fmt.Errorf("unknown equipment type %q", kind))
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.FillDefaults()
	return e, d.Err()
}

// Save writes e to st under its identifier, assigning one if needed.
func Save(ctx context.Context, st hazop.Store, e *Equipment) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if err := st.Put(ctx, hazop.KindEquipment, e.ID, e.Record()); err != nil {
		return fmt.Errorf("equipment: saving %s: %w", e.Tag, err)
	}
	return nil
}

// Load reads the equipment with the given identifier from st.
func Load(ctx context.Context, st hazop.Store, id string) (*Equipment, error) {
	r, err := st.Get(ctx, hazop.KindEquipment, id)
	if err != nil {
		return nil, fmt.Errorf("equipment: loading %s: %w", id, err)
	}
	return FromRecord(r)
}
