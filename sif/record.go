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
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spatialmodel/hazop"
)

// Record returns the key-value form of s.
func (s *Subsystem) Record() hazop.Record {
	return hazop.Record{
		"name":                 s.Name,
		"architecture":         string(s.Architecture),
		"pfd_per_component":    s.PFDPerComponent,
		"beta":                 s.Beta,
		"test_interval_months": s.TestInterval,
		"dc":                   s.DC,
		"mttr_hours":           s.MTTR,
		"subsystem_type":       string(s.Role),
		"bypassed":             s.Bypassed,
	}
}

// SubsystemFromRecord builds and validates a subsystem from its key-value
// form. Missing optional fields take DefaultBeta, DefaultTestInterval,
// DefaultMTTR, no diagnostic coverage and the Sensor role. Unlike
// the other record readers, a field that cannot be converted is a
// validation failure, and the result is nil with hazop.ValidationErrors.
func SubsystemFromRecord(r hazop.Record) (*Subsystem, error) {
	d := hazop.NewDecoder(r)
	s := &Subsystem{
		Name:            d.String("name", ""),
		Architecture:    Architecture(d.String("architecture", "")),
		PFDPerComponent: d.Float("pfd_per_component", 0),
		Beta:            d.Float("beta", DefaultBeta),
		TestInterval:    d.Int("test_interval_months", DefaultTestInterval),
		DC:              d.Float("dc", 0),
		MTTR:            d.Float("mttr_hours", DefaultMTTR),
		Role:            Role(d.String("subsystem_type", string(Sensor))),
		Bypassed:        d.Bool("bypassed", false),
	}
	var errs hazop.ValidationErrors
	var ce hazop.ConversionErrors
	if errors.As(d.Err(), &ce) {
		for _, c := range ce {
			errs = append(errs, &hazop.ValidationError{Field: c.Field, Value: c.Value, Reason: "cannot be converted"})
		}
	}
	var ve hazop.ValidationErrors
	if err := s.Validate(); err != nil {
		if !errors.As(err, &ve) {
			return nil, err
		}
	}
	for _, v := range ve {
		if !errs.Has(v.Field) {
			errs = append(errs, v)
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return s, nil
}

// Record returns the key-value form of f.
func (f *SIF) Record() hazop.Record {
	subs := make([]hazop.Record, len(f.Subsystems))
	for i, s := range f.Subsystems {
		subs[i] = s.Record()
	}
	return hazop.Record{
		"id":                  f.ID,
		"name":                f.Name,
		"description":         f.Description,
		"scenario_id":         f.ScenarioID,
		"required_sil":        int(f.RequiredSIL),
		"process_safety_time": f.ProcessSafetyTime,
		"sif_response_time":   f.ResponseTime,
		"safety_function":     f.SafetyFunction,
		"safe_state":          f.SafeState,
		"verification_status": f.VerificationStatus,
		"notes":               f.Notes,
		"pfd_model":           f.Model.String(),
		"subsystems":          subs,
	}
}

// FromRecord builds a SIF from its key-value form. An invalid subsystem
// makes the whole record invalid: the result is nil with
// hazop.ValidationErrors whose fields are prefixed "subsystems[i].".
// Otherwise unconvertible SIF fields take their defaults (SIL1 for
// required_sil) and are listed in hazop.ConversionErrors alongside a
// usable SIF.
func FromRecord(r hazop.Record) (*SIF, error) {
	d := hazop.NewDecoder(r)
	f := New(d.String("name", ""), hazop.SIL1)
	f.ID = d.String("id", "")
	f.Description = d.String("description", "")
	f.ScenarioID = d.String("scenario_id", "")
	if v, ok := d.Lookup("required_sil"); ok {
		if s, ok := hazop.ParseSIL(v); ok {
			f.RequiredSIL = s
		} else {
			d.Fail("required_sil", v, hazop.SIL1, errors.New("not a safety integrity level (0-4)"))
		}
	}
	f.ProcessSafetyTime = d.Float("process_safety_time", 0)
	f.ResponseTime = d.Float("sif_response_time", 0)
	f.SafetyFunction = d.String("safety_function", "")
	f.SafeState = d.String("safe_state", "")
	f.VerificationStatus = d.String("verification_status", "Not Verified")
	f.Notes = d.String("notes", "")
	if v, ok := d.Lookup("pfd_model"); ok {
		m, ok := ParseModel(fmt.Sprint(v))
		if !ok {
			d.Fail("pfd_model", v, m, errors.New("unknown PFD model"))
		}
		f.Model = m
	}

	var invalid hazop.ValidationErrors
	for i, sr := range d.Records("subsystems") {
		s, err := SubsystemFromRecord(sr)
		if err != nil {
			var ve hazop.ValidationErrors
			if !errors.As(err, &ve) {
				return nil, err
			}
			invalid = append(invalid, prefixed(i, ve)...)
			continue
		}
		f.Subsystems = append(f.Subsystems, s)
	}
	if len(invalid) > 0 {
		return nil, invalid
	}
	return f, d.Err()
}

// Save writes f to st, first assigning a new identifier if f.ID is empty.
func Save(ctx context.Context, st hazop.Store, f *SIF) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if err := st.Put(ctx, hazop.KindSIF, f.ID, f.Record()); err != nil {
		return fmt.Errorf("sif: saving %s: %w", f.ID, err)
	}
	return nil
}

// Load reads the SIF with the given identifier from st, with the error
// semantics of FromRecord.
func Load(ctx context.Context, st hazop.Store, id string) (*SIF, error) {
	r, err := st.Get(ctx, hazop.KindSIF, id)
	if err != nil {
		return nil, fmt.Errorf("sif: loading %s: %w", id, err)
	}
	return FromRecord(r)
}
