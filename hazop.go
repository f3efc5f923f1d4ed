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

// Package hazop holds the types shared by the quantitative risk-reduction
// packages of the HAZOP toolkit: safety integrity levels, the error
// taxonomy, the key-value records used to hand entities to a persistence
// layer, and the interface that persistence layer implements.
//
// The calculations themselves live in the subpackages:
// release (discharge rates), consequence (dispersion, fire, explosion and
// risk scoring), lopa (independent protection layers and layer of protection
// analysis), sif (safety instrumented function verification), chem
// (chemical properties) and equipment (equipment records).
//
// Everything in these packages is a pure function or an immutable value;
// nothing keeps global state, so calls may be made concurrently.
package hazop

// Version gives the version number.
const Version = "0.3.0"
