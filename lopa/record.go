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

import (
	"errors"
	"fmt"

	"github.com/spatialmodel/hazop"
)

var errNotSIL = errors.New("not a safety integrity level (0-4)")

// Record returns the key-value form of ipl. rrF is derived and is
// ignored by IPLFromRecord.
func (ipl *IPL) Record() hazop.Record {
	var sil interface{}
	if s, ok := ipl.SIL(); ok {
		sil = int(s)
	}
	return hazop.Record{
		"id":                     ipl.ID,
		"name":                   ipl.Name,
		"description":            ipl.Description,
		"ipl_type":               string(ipl.Type),
		"category":               string(ipl.Category),
		"pfd":                    ipl.pfd,
		"rrF":                    ipl.RiskReductionFactor(),
		"is_enabled":             ipl.Enabled,
		"sil":                    sil,
		"audit_frequency_months": ipl.AuditInterval,
		"lifecycle_status":       ipl.LifecycleStatus,
		"validation_date":        ipl.ValidationDate,
		"notes":                  ipl.Notes,
		"scenario_id":            ipl.ScenarioID,
	}
}

// IPLFromRecord builds an IPL from its key-value form. Missing fields take
// the defaults of New with an Other type, a Prevention category and a PFD
// of 1. Fields that cannot be converted also take their defaults and are
// listed in the returned hazop.ConversionErrors; the IPL is usable either
// way.
func IPLFromRecord(r hazop.Record) (*IPL, error) {
	d := hazop.NewDecoder(r)
	ipl := decodeIPL(d)
	return ipl, d.Err()
}

func decodeIPL(d *hazop.Decoder) *IPL {
	ipl := New(d.String("name", ""), Other, Prevention, d.Float("pfd", 1))
	ipl.ID = d.String("id", "")
	ipl.Description = d.String("description", "")
	if v, ok := d.Lookup("ipl_type"); ok {
		t, ok := ParseType(fmt.Sprint(v))
		if !ok {
			d.Fail("ipl_type", v, t, errors.New("unknown IPL type"))
		}
		ipl.Type = t
	}
	if v, ok := d.Lookup("category"); ok {
		c, ok := ParseCategory(fmt.Sprint(v))
		if !ok {
			d.Fail("category", v, c, errors.New("unknown IPL category"))
		}
		ipl.Category = c
	}
	ipl.Enabled = d.Bool("is_enabled", true)
	if v, ok := d.Lookup("sil"); ok {
		if s, ok := hazop.ParseSIL(v); ok {
			ipl.SetSIL(s)
		} else {
			d.Fail("sil", v, nil, errNotSIL)
		}
	}
	ipl.AuditInterval = d.Int("audit_frequency_months", 12)
	ipl.LifecycleStatus = d.String("lifecycle_status", "Active")
	ipl.ValidationDate = d.String("validation_date", "")
	ipl.Notes = d.String("notes", "")
	ipl.ScenarioID = d.String("scenario_id", "")
	return ipl
}

// Record returns the key-value form of s, including its IPLs and its
// derived mitigated_frequency, risk_reduction_factor and meets_target.
func (s *Scenario) Record() hazop.Record {
	ipls := make([]hazop.Record, len(s.IPLs))
	for i, ipl := range s.IPLs {
		ipls[i] = ipl.Record()
	}
	mods := make(map[string]interface{}, len(s.Modifiers))
	for k, v := range s.Modifiers {
		mods[k] = v
	}
	return hazop.Record{
		"id":                         s.ID,
		"scenario_id":                s.HazardID,
		"description":                s.Description,
		"node_id":                    s.NodeID,
		"consequence_description":    s.ConsequenceDescription,
		"consequence_category":       s.ConsequenceCategory,
		"consequence_severity":       s.ConsequenceSeverity,
		"initiating_event":           s.InitiatingEvent,
		"initiating_event_frequency": s.InitiatingFrequency,
		"initiating_event_basis":     s.InitiatingBasis,
		"ipls":                       ipls,
		"conditional_modifiers":      hazop.Record(mods),
		"target_mitigated_frequency": s.TargetFrequency,
		"mitigated_frequency":        s.MitigatedFrequency(),
		"risk_reduction_factor":      s.RiskReductionFactor(),
		"meets_target":               s.MeetsTarget(),
		"notes":                      s.Notes,
	}
}

// ScenarioFromRecord builds a Scenario, and its IPLs, from its key-value
// form. Defaulting follows IPLFromRecord; failures inside the IPL at
// index i are reported with an "ipls[i]." prefix.
func ScenarioFromRecord(r hazop.Record) (*Scenario, error) {
	d := hazop.NewDecoder(r)
	s := NewScenario()
	s.ID = d.String("id", "")
	s.HazardID = d.String("scenario_id", "")
	s.Description = d.String("description", "")
	s.NodeID = d.String("node_id", "")
	s.ConsequenceDescription = d.String("consequence_description", "")
	s.ConsequenceCategory = d.String("consequence_category", "")
	s.ConsequenceSeverity = d.Int("consequence_severity", 1)
	s.InitiatingEvent = d.String("initiating_event", "")
	s.InitiatingFrequency = d.Float("initiating_event_frequency", 0)
	s.InitiatingBasis = d.String("initiating_event_basis", "")
	for i, ir := range d.Records("ipls") {
		ipl, err := IPLFromRecord(ir)
		d.Merge(fmt.Sprintf("ipls[%d]", i), err)
		s.IPLs = append(s.IPLs, ipl)
	}
	if m := d.FloatMap("conditional_modifiers"); m != nil {
		s.Modifiers = m
	}
	s.TargetFrequency = d.Float("target_mitigated_frequency", 1e-5)
	s.Notes = d.String("notes", "")
	return s, d.Err()
}
