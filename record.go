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

	"github.com/spf13/cast"
)

// Record is the plain key-value form in which entities are handed to
// and received from a persistence layer. Nested attribute bags are
// stored as nested Records.
type Record map[string]interface{}

// Clone returns a shallow copy of r, or nil if r is nil.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	c := make(Record, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

// Decoder reads typed fields out of a Record. Hydration is permissive:
// a field that is missing or nil silently takes its default, and a
// field that cannot be converted takes its default and is reported by
// Err.
type Decoder struct {
	r    Record
	errs ConversionErrors
}

// NewDecoder returns a decoder for r. A nil r decodes every field to
// its default.
func NewDecoder(r Record) *Decoder {
	return &Decoder{r: r}
}

// Err returns a ConversionErrors value listing every defaulted field,
// or nil if all present fields converted cleanly.
func (d *Decoder) Err() error {
	if len(d.errs) == 0 {
		return nil
	}
	return d.errs
}

// Fail records that the value of key could not be used and def was
// substituted.
func (d *Decoder) Fail(key string, value, def interface{}, err error) {
	d.errs = append(d.errs, &ConversionError{Field: key, Value: value, Default: def, Err: err})
}

// Merge adds the conversion failures in err, which was returned while
// decoding the nested record at prefix, to d. Other errors are recorded
// against prefix itself.
func (d *Decoder) Merge(prefix string, err error) {
	if err == nil {
		return
	}
	ce, ok := err.(ConversionErrors)
	if !ok {
		d.Fail(prefix, nil, nil, err)
		return
	}
	for _, e := range ce {
		c := *e
		c.Field = prefix + "." + e.Field
		d.errs = append(d.errs, &c)
	}
}

// Lookup returns the raw value of key and whether it is present and
// not nil.
func (d *Decoder) Lookup(key string) (interface{}, bool) {
	v, ok := d.r[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Float returns key as a float64.
func (d *Decoder) Float(key string, def float64) float64 {
	v, ok := d.Lookup(key)
	if !ok {
		return def
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		d.Fail(key, v, def, err)
		return def
	}
	return f
}

// OptFloat returns key as a float64, or nil if it is absent or cannot
// be converted.
func (d *Decoder) OptFloat(key string) *float64 {
	v, ok := d.Lookup(key)
	if !ok {
		return nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		d.Fail(key, v, nil, err)
		return nil
	}
	return &f
}

// Int returns key as an int.
func (d *Decoder) Int(key string, def int) int {
	v, ok := d.Lookup(key)
	if !ok {
		return def
	}
	i, err := cast.ToIntE(v)
	if err != nil {
		d.Fail(key, v, def, err)
		return def
	}
	return i
}

// String returns key as a string. Numbers are formatted.
func (d *Decoder) String(key, def string) string {
	v, ok := d.Lookup(key)
	if !ok {
		return def
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		d.Fail(key, v, def, err)
		return def
	}
	return s
}

// Bool returns key as a bool.
func (d *Decoder) Bool(key string, def bool) bool {
	v, ok := d.Lookup(key)
	if !ok {
		return def
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		d.Fail(key, v, def, err)
		return def
	}
	return b
}

// Record returns a copy of the nested record stored at key, or nil.
// Changing the copy leaves the decoded record untouched.
func (d *Decoder) Record(key string) Record {
	v, ok := d.Lookup(key)
	if !ok {
		return nil
	}
	r, err := toRecord(v)
	if err != nil {
		d.Fail(key, v, nil, err)
		return nil
	}
	return r.Clone()
}

// FloatMap returns the nested record at key with every value converted
// to float64. Entries that cannot be converted are dropped and
// reported.
func (d *Decoder) FloatMap(key string) map[string]float64 {
	r := d.Record(key)
	if r == nil {
		return nil
	}
	m := make(map[string]float64, len(r))
	for k, v := range r {
		f, err := cast.ToFloat64E(v)
		if err != nil {
			d.Fail(key+"."+k, v, nil, err)
			continue
		}
		m[k] = f
	}
	return m
}

// Records returns the list of nested records stored at key.
func (d *Decoder) Records(key string) []Record {
	v, ok := d.Lookup(key)
	if !ok {
		return nil
	}
	var items []interface{}
	switch s := v.(type) {
	case []Record:
		return s
	case []map[string]interface{}:
		out := make([]Record, len(s))
		for i, m := range s {
			out[i] = Record(m)
		}
		return out
	default:
		var err error
		items, err = cast.ToSliceE(v)
		if err != nil {
			d.Fail(key, v, nil, err)
			return nil
		}
	}
	out := make([]Record, 0, len(items))
	for i, item := range items {
		r, err := toRecord(item)
		if err != nil {
			d.Fail(fmt.Sprintf("%s[%d]", key, i), item, nil, err)
			continue
		}
		out = append(out, r)
	}
	return out
}

func toRecord(v interface{}) (Record, error) {
	if r, ok := v.(Record); ok {
		return r, nil
	}
	m, err := cast.ToStringMapE(v)
	if err != nil {
		return nil, err
	}
	return Record(m), nil
}

// OptFloat returns nil for a nil pointer and the pointed-to value
// otherwise, for use when building Records.
func OptFloat(f *float64) interface{} {
	if f == nil {
		return nil
	}
	return *f
}
