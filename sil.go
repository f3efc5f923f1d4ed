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

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// SIL is a safety integrity level. Levels are totally ordered, so
// a >= b means that a is at least as reliable as b.
type SIL int

// Safety integrity levels.
const (
	SILNone SIL = iota
	SIL1
	SIL2
	SIL3
	SIL4
)

var silNames = [...]string{"NONE", "SIL1", "SIL2", "SIL3", "SIL4"}

func (s SIL) String() string {
	if s.Valid() {
		return silNames[s]
	}
	return fmt.Sprintf("SIL(%d)", int(s))
}

// Valid reports whether s is one of the five defined levels.
func (s SIL) Valid() bool { return s >= SILNone && s <= SIL4 }

// SILFromPFD classifies an average probability of failure on demand
// into the level a safety instrumented function achieves. Decade
// boundaries belong to the less reliable level: 0.1 is SILNone and
// 0.01 is SIL1.
func SILFromPFD(pfd float64) SIL {
	switch {
	case pfd < 0.0001:
		return SIL4
	case pfd < 0.001:
		return SIL3
	case pfd < 0.01:
		return SIL2
	case pfd < 0.1:
		return SIL1
	default:
		return SILNone
	}
}

// PFDRange returns the band of PFD values associated with s as
// (upper, lower). An invalid level returns the SILNone band.
func (s SIL) PFDRange() (upper, lower float64) {
	switch s {
	case SIL1:
		return 0.1, 0.01
	case SIL2:
		return 0.01, 0.001
	case SIL3:
		return 0.001, 0.0001
	case SIL4:
		return 0.0001, 0.00001
	default:
		return 1.0, 0.1
	}
}

// ParseSIL converts an external representation of a level (an integer
// 0-4, a numeric string, or a name such as "SIL2" or "NONE") into a SIL.
// ok is false when v does not name a defined level; a fractional level
// such as 2.5 is never rounded to a neighbour.
func ParseSIL(v interface{}) (s SIL, ok bool) {
	if v == nil {
		return SILNone, false
	}
	if str, isStr := v.(string); isStr {
		name := strings.ToUpper(strings.TrimSpace(str))
		name = strings.Replace(name, "_", "", -1)
		for i, n := range silNames {
			if name == n {
				return SIL(i), true
			}
		}
	}
	if sil, isSIL := v.(SIL); isSIL {
		return sil, sil.Valid()
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || f != math.Trunc(f) || f < float64(SILNone) || f > float64(SIL4) {
		return SILNone, false
	}
	return SIL(f), true
}
