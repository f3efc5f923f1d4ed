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

// Command hazop is a command-line interface to the HAZOP release,
// consequence, LOPA and SIF calculations.
package main

import (
	"fmt"
	"os"

	"github.com/spatialmodel/hazop/hazoputil"
)

func main() {
	if err := hazoputil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
