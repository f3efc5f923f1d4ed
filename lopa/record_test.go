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
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/kr/pretty"
	"github.com/spatialmodel/hazop"
	"github.com/spatialmodel/hazop/internal/storetest"
)

func TestIPLRecord(t *testing.T) {
	ipl := New("PSV-101", Relief, Mitigation, 0.01)
	ipl.SetSIL(hazop.SIL2)
	r := ipl.Record()
	if r["ipl_type"] != "Relief Device" || r["category"] != "Mitigation" {
		t.Errorf("enums should be stored by display name: %v, %v", r["ipl_type"], r["category"])
	}
	if r["sil"] != 2 {
		t.Errorf("sil: have %#v, want 2", r["sil"])
	}
	if r["rrF"] != 100.0 {
		t.Errorf("rrF: have %#v, want 100", r["rrF"])
	}
	ipl.ClearSIL()
	if r := ipl.Record(); r["sil"] != nil {
		t.Errorf("sil: have %#v, want nil", r["sil"])
	}
}

func TestIPLFromRecordDefaults(t *testing.T) {
	ipl, err := IPLFromRecord(hazop.Record{})
	if err != nil {
		t.Fatal(err)
	}
	if ipl.PFD() != 1 || ipl.Type != Other || ipl.Category != Prevention || !ipl.Enabled ||
		ipl.AuditInterval != 12 || ipl.LifecycleStatus != "Active" {
		t.Errorf("defaults not applied: %+v", ipl)
	}
}

func TestIPLFromRecordConversion(t *testing.T) {
	ipl, err := IPLFromRecord(hazop.Record{
		"name":                   "alarm",
		"pfd":                    "very low",
		"ipl_type":               "Laser Fence",
		"sil":                    9,
		"audit_frequency_months": "quarterly",
		"is_enabled":             "false",
	})
	var ce hazop.ConversionErrors
	if !errors.As(err, &ce) {
		t.Fatalf("have %v, want ConversionErrors", err)
	}
	want := []string{"pfd", "ipl_type", "sil", "audit_frequency_months"}
	if !reflect.DeepEqual(ce.Fields(), want) {
		t.Errorf("defaulted fields: have %v, want %v", ce.Fields(), want)
	}
	if ipl.Name != "alarm" || ipl.PFD() != 1 || ipl.Type != Other || ipl.AuditInterval != 12 || ipl.Enabled {
		t.Errorf("have %+v", ipl)
	}
	if _, ok := ipl.SIL(); ok {
		t.Error("invalid SIL should be dropped")
	}
}

func TestIPLFromRecordClamp(t *testing.T) {
	for pfd, want := range map[interface{}]float64{1.5: 1, -0.2: 0, "0.1": 0.1, 0: 0} {
		ipl, err := IPLFromRecord(hazop.Record{"pfd": pfd})
		if err != nil {
			t.Fatal(err)
		}
		if ipl.PFD() != want {
			t.Errorf("pfd %v: have %g, want %g", pfd, ipl.PFD(), want)
		}
	}
}

func TestScenarioRecordRoundTrip(t *testing.T) {
	s := exampleScenario()
	r := s.Record()
	if r["mitigated_frequency"] != 1e-5 || r["meets_target"] != true {
		t.Errorf("derived values: %v, %v", r["mitigated_frequency"], r["meets_target"])
	}
	s2, err := ScenarioFromRecord(r)
	if err != nil {
		t.Fatal(err)
	}
	if diff := pretty.Diff(r, s2.Record()); len(diff) != 0 {
		t.Error(diff)
	}
}

func TestScenarioFromRecordNested(t *testing.T) {
	s, err := ScenarioFromRecord(hazop.Record{
		"initiating_event_frequency": "0.1",
		"ipls": []interface{}{
			map[string]interface{}{"name": "a", "pfd": 0.1},
			map[string]interface{}{"name": "b", "pfd": "n/a"},
		},
		"conditional_modifiers": map[string]interface{}{"Occupancy": 0.5},
	})
	var ce hazop.ConversionErrors
	if !errors.As(err, &ce) {
		t.Fatalf("have %v, want ConversionErrors", err)
	}
	if want := []string{"ipls[1].pfd"}; !reflect.DeepEqual(ce.Fields(), want) {
		t.Errorf("defaulted fields: have %v, want %v", ce.Fields(), want)
	}
	if len(s.IPLs) != 2 {
		t.Fatalf("have %d IPLs, want 2", len(s.IPLs))
	}
	if f := s.MitigatedFrequency(); f != 0.005 {
		t.Errorf("mitigated frequency: have %g, want 0.005", f)
	}
	if s.TargetFrequency != 1e-5 || s.ConsequenceSeverity != 1 {
		t.Errorf("defaults: %+v", s)
	}
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	st := storetest.New()

	s := exampleScenario()
	s.ID = ""
	if err := SaveScenario(ctx, st, s); err != nil {
		t.Fatal(err)
	}
	if s.ID == "" {
		t.Fatal("no identifier assigned")
	}
	s2, err := LoadScenario(ctx, st, s.ID)
	if err != nil {
		t.Fatal(err)
	}
	if diff := pretty.Diff(s.Record(), s2.Record()); len(diff) != 0 {
		t.Error(diff)
	}

	ipl := s.IPLs[1]
	ipl.ID = "IPL-7"
	if err := SaveIPL(ctx, st, ipl); err != nil {
		t.Fatal(err)
	}
	ipl2, err := LoadIPL(ctx, st, "IPL-7")
	if err != nil {
		t.Fatal(err)
	}
	if diff := pretty.Diff(ipl.Record(), ipl2.Record()); len(diff) != 0 {
		t.Error(diff)
	}

	_, err = LoadIPL(ctx, st, "missing")
	if !errors.Is(err, hazop.ErrNotFound) {
		t.Errorf("have %v, want ErrNotFound", err)
	}
}
