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
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by a Store when no record exists for the
// requested identifier.
var ErrNotFound = errors.New("hazop: record not found")

// ValidationError describes a single rule broken by the input to a
// constructor.
type ValidationError struct {
	// Field is the record name of the offending field.
	Field string
	// Value is the rejected input.
	Value interface{}
	// Reason says which rule was broken.
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// ValidationErrors holds every rule broken by a constructor's input.
// It is never returned empty.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unwrap allows errors.Is and errors.As to reach the individual
// failures.
func (e ValidationErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, v := range e {
		errs[i] = v
	}
	return errs
}

// Has reports whether any of the failures concern field.
func (e ValidationErrors) Has(field string) bool {
	for _, v := range e {
		if v.Field == field {
			return true
		}
	}
	return false
}

// DomainError is returned when the inputs to a calculation would
// require dividing by zero.
type DomainError struct {
	// Op is the calculation that was attempted.
	Op string
	// Reason names the degenerate input.
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// ConversionError records a field in a persisted record that could
// not be converted and was replaced by its default.
type ConversionError struct {
	Field   string
	Value   interface{}
	Default interface{}
	Err     error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("field %s: cannot use %#v, using default %v: %v", e.Field, e.Value, e.Default, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// ConversionErrors lists the fields of a record that fell back to
// defaults. The entity decoded alongside it is complete and usable.
type ConversionErrors []*ConversionError

func (e ConversionErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return "hazop: record conversion: " + strings.Join(msgs, "; ")
}

// Unwrap allows errors.As to reach the individual conversions.
func (e ConversionErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, v := range e {
		errs[i] = v
	}
	return errs
}

// Fields returns the names of the defaulted fields.
func (e ConversionErrors) Fields() []string {
	f := make([]string, len(e))
	for i, v := range e {
		f[i] = v.Field
	}
	return f
}
