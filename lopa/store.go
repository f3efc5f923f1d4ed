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
	"fmt"

	"github.com/google/uuid"
	"github.com/spatialmodel/hazop"
)

// SaveIPL writes ipl to st, first assigning a new identifier if ipl.ID
// is empty.
func SaveIPL(ctx context.Context, st hazop.Store, ipl *IPL) error {
	if ipl.ID == "" {
		ipl.ID = uuid.NewString()
	}
	if err := st.Put(ctx, hazop.KindIPL, ipl.ID, ipl.Record()); err != nil {
		return fmt.Errorf("lopa: saving IPL %s: %w", ipl.ID, err)
	}
	return nil
}

// LoadIPL reads the IPL with the given identifier from st. A
// hazop.ConversionErrors error is returned together with a usable IPL.
func LoadIPL(ctx context.Context, st hazop.Store, id string) (*IPL, error) {
	r, err := st.Get(ctx, hazop.KindIPL, id)
	if err != nil {
		return nil, fmt.Errorf("lopa: loading IPL %s: %w", id, err)
	}
	return IPLFromRecord(r)
}

// SaveScenario writes s, with its IPLs embedded, to st, first assigning
// a new identifier if s.ID is empty.
func SaveScenario(ctx context.Context, st hazop.Store, s *Scenario) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if err := st.Put(ctx, hazop.KindScenario, s.ID, s.Record()); err != nil {
		return fmt.Errorf("lopa: saving scenario %s: %w", s.ID, err)
	}
	return nil
}

// LoadScenario reads the scenario with the given identifier from st. A
// hazop.ConversionErrors error is returned together with a usable
// scenario.
func LoadScenario(ctx context.Context, st hazop.Store, id string) (*Scenario, error) {
	r, err := st.Get(ctx, hazop.KindScenario, id)
	if err != nil {
		return nil, fmt.Errorf("lopa: loading scenario %s: %w", id, err)
	}
	return ScenarioFromRecord(r)
}
