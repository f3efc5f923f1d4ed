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

package hazop

import "context"

// Kind names a class of persisted record.
type Kind string

// Record kinds handled by the subpackages.
const (
	KindScenario  Kind = "lopa_scenario"
	KindIPL       Kind = "ipl"
	KindSIF       Kind = "sif"
	KindChemical  Kind = "chemical"
	KindEquipment Kind = "equipment"
)

// Store is implemented by the persistence layer that durably saves
// and loads records. Identifiers are opaque to this module. Locking
// and transactions are the Store's concern.
type Store interface {
	// Put saves r under (kind, id), replacing any existing record.
	Put(ctx context.Context, kind Kind, id string, r Record) error

	// Get returns the record saved under (kind, id), or an error
	// wrapping ErrNotFound.
	Get(ctx context.Context, kind Kind, id string) (Record, error)
}
